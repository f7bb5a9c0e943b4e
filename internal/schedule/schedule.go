// Package schedule models a week of NHL games as per-team weekday sets and
// derives the streamer favorability of each weekday.
package schedule

import (
	"sort"
	"time"
)

// Weekday is a three-letter day abbreviation ("Mon".."Sun").
type Weekday string

const (
	Mon Weekday = "Mon"
	Tue Weekday = "Tue"
	Wed Weekday = "Wed"
	Thu Weekday = "Thu"
	Fri Weekday = "Fri"
	Sat Weekday = "Sat"
	Sun Weekday = "Sun"
)

// Weekdays lists the week in display order.
var Weekdays = [7]Weekday{Mon, Tue, Wed, Thu, Fri, Sat, Sun}

// WeekdayOf abbreviates a date's day of week.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Format("Mon"))
}

// ParseWeekday validates an abbreviation.
func ParseWeekday(s string) (Weekday, bool) {
	for _, d := range Weekdays {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

func (d Weekday) index() int {
	for i, w := range Weekdays {
		if w == d {
			return i
		}
	}
	return len(Weekdays)
}

// TeamSchedule maps team abbreviation to the set of weekdays it plays on.
// An empty schedule means the schedule was unavailable.
type TeamSchedule map[string]map[Weekday]struct{}

// Add records a game day for a team. Repeated days collapse.
func (ts TeamSchedule) Add(team string, day Weekday) {
	days, ok := ts[team]
	if !ok {
		days = make(map[Weekday]struct{}, len(Weekdays))
		ts[team] = days
	}
	days[day] = struct{}{}
}

// Plays reports whether a team has a game on day.
func (ts TeamSchedule) Plays(team string, day Weekday) bool {
	_, ok := ts[team][day]
	return ok
}

// Days returns a team's game days in week order.
func (ts TeamSchedule) Days(team string) []Weekday {
	days := make([]Weekday, 0, len(ts[team]))
	for d := range ts[team] {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].index() < days[j].index() })
	return days
}

// Games counts distinct game days for a team.
func (ts TeamSchedule) Games(team string) int {
	return len(ts[team])
}

// TeamsOn counts distinct teams playing on day.
func (ts TeamSchedule) TeamsOn(day Weekday) int {
	n := 0
	for _, days := range ts {
		if _, ok := days[day]; ok {
			n++
		}
	}
	return n
}

// Teams returns the scheduled team abbreviations, sorted.
func (ts TeamSchedule) Teams() []string {
	teams := make([]string, 0, len(ts))
	for t := range ts {
		teams = append(teams, t)
	}
	sort.Strings(teams)
	return teams
}

// Empty is true when nothing was scheduled or the fetch failed.
func (ts TeamSchedule) Empty() bool {
	return len(ts) == 0
}

// DayCount is one bar of the games-per-day chart.
type DayCount struct {
	Day   Weekday `json:"day"`
	Teams int     `json:"teams"`
}

// DayCounts returns distinct-team counts for every weekday, Mon first.
func (ts TeamSchedule) DayCounts() []DayCount {
	counts := make([]DayCount, 0, len(Weekdays))
	for _, d := range Weekdays {
		counts = append(counts, DayCount{Day: d, Teams: ts.TeamsOn(d)})
	}
	return counts
}
