package schedule

import (
	"fmt"
)

// A night with more than BusyNightTeams teams playing is busy; any other
// night with games is an off-night.
const (
	BusyNightTeams = 16

	BusyNightWeight = 0.1
	OffNightWeight  = 1.0
	NoGamesWeight   = 0.0
)

// DayClass labels a weekday by game volume.
type DayClass string

const (
	ClassBusy    DayClass = "busy_night"
	ClassOff     DayClass = "gold_mine"
	ClassNoGames DayClass = "no_games"
)

// Classify buckets a distinct-team count into a weight and label.
func Classify(teams int) (float64, DayClass) {
	switch {
	case teams > BusyNightTeams:
		return BusyNightWeight, ClassBusy
	case teams == 0:
		return NoGamesWeight, ClassNoGames
	default:
		return OffNightWeight, ClassOff
	}
}

// WeekdayWeights holds a favorability weight in [0, 1] for each of the seven days.
type WeekdayWeights map[Weekday]float64

// StaticWeights is the fallback table used when the schedule is unavailable.
func StaticWeights() WeekdayWeights {
	return WeekdayWeights{
		Mon: 1.0,
		Tue: 0.1,
		Wed: 0.8,
		Thu: 0.1,
		Fri: 0.8,
		Sat: 0.0,
		Sun: 0.9,
	}
}

// Validate checks that all seven days are present and in range.
func (w WeekdayWeights) Validate() error {
	if len(w) != len(Weekdays) {
		return fmt.Errorf("weekday weights: want %d days, got %d", len(Weekdays), len(w))
	}
	for _, d := range Weekdays {
		v, ok := w[d]
		if !ok {
			return fmt.Errorf("weekday weights: missing %s", d)
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("weekday weights: %s=%v out of range", d, v)
		}
	}
	return nil
}

// Sum adds the seven weights.
func (w WeekdayWeights) Sum() float64 {
	total := 0.0
	for _, d := range Weekdays {
		total += w[d]
	}
	return total
}

// Mean is the average favorability across the week.
func (w WeekdayWeights) Mean() float64 {
	return w.Sum() / float64(len(Weekdays))
}

// ComputeWeights classifies each weekday by how many distinct teams play.
// Days with no games get the zero weight.
func ComputeWeights(ts TeamSchedule) (WeekdayWeights, error) {
	w := make(WeekdayWeights, len(Weekdays))
	for _, d := range Weekdays {
		w[d], _ = Classify(ts.TeamsOn(d))
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// Weights is the table in effect for a refresh and where it came from.
type Weights struct {
	Table    WeekdayWeights
	Fallback bool
}

// WeightsFor computes weights from the schedule, using the static table when
// the schedule is unavailable or the computed table is invalid.
func WeightsFor(ts TeamSchedule) Weights {
	if ts.Empty() {
		return Weights{Table: StaticWeights(), Fallback: true}
	}
	w, err := ComputeWeights(ts)
	if err != nil {
		return Weights{Table: StaticWeights(), Fallback: true}
	}
	return Weights{Table: w}
}

// DayWeight is one row of the weights table in week order.
type DayWeight struct {
	Day    Weekday  `json:"day"`
	Teams  int      `json:"teams"`
	Weight float64  `json:"weight"`
	Class  DayClass `json:"class,omitempty"`
}

// Rows lays the table out Mon..Sun. Class is only set for computed tables.
func (w Weights) Rows(ts TeamSchedule) []DayWeight {
	rows := make([]DayWeight, 0, len(Weekdays))
	for _, d := range Weekdays {
		row := DayWeight{Day: d, Teams: ts.TeamsOn(d), Weight: w.Table[d]}
		if !w.Fallback {
			_, row.Class = Classify(row.Teams)
		}
		rows = append(rows, row)
	}
	return rows
}
