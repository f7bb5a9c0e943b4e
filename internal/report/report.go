// Package report renders a dashboard as terminal tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/fortuna/warroom/internal/schedule"
	"github.com/fortuna/warroom/internal/service"
)

var (
	accent  = lipgloss.Color("#8BC34A")
	muted   = lipgloss.Color("#6c7a89")
	warning = lipgloss.Color("#FFC107")
	danger  = lipgloss.Color("#e53935")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true).MarginTop(1)
	captionStyle = lipgloss.NewStyle().Foreground(muted).Italic(true)
	warnStyle    = lipgloss.NewStyle().Foreground(warning).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(danger).Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// Render writes every view of d to w.
func Render(w io.Writer, d *service.Dashboard) error {
	sections := []string{
		titleStyle.Render(fmt.Sprintf("%s · %s", d.LeagueName, d.TeamName)),
		captionStyle.Render(fmt.Sprintf("Week of %s | schedule %s | weights %s", d.WeekStart, d.Sources.Schedule, d.Sources.Weights)),
	}
	if d.Sources.Note != "" {
		sections = append(sections, warnStyle.Render(d.Sources.Note))
	}
	for _, msg := range d.Warnings {
		sections = append(sections, warnStyle.Render(msg))
	}

	sections = append(sections,
		section("Roster Performance", d.Caption, rosterTable(d)),
		section("Skater Stream Targets", "", skaterTable(d.SkaterTargets)),
		section("Goalie Stream Targets", "", goalieView(d.GoalieTargets)),
		section("Games Per Day", "", dayCountChart(d.WeeklySchedule.DayCounts)),
		section("Roster Schedule", "", playerWeekTable(d.WeeklySchedule.Players)),
		section("Schedule Matrix", "", matrixTable(d.ScheduleMatrix)),
		section("Weekday Weights", fmt.Sprintf("Mean favorability %.3f", d.MeanWeight), weightsTable(d.Weights)),
	)

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, sections...))
	return err
}

// RenderError writes the single banner shown when a refresh fails.
func RenderError(w io.Writer, err error) error {
	_, werr := fmt.Fprintln(w, errorStyle.Render(service.Banner(err)))
	return werr
}

func section(title, caption, body string) string {
	parts := []string{sectionStyle.Render(title)}
	if caption != "" {
		parts = append(parts, captionStyle.Render(caption))
	}
	parts = append(parts, body)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(muted)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func rosterTable(d *service.Dashboard) string {
	t := newTable("Player", "Pos", "Team", "Avg Pts", "Total Pts", "Stream", "GP", "% Own", "Inj")
	for _, r := range d.Roster {
		t.Row(r.Player, string(r.Position), r.Team, num(r.AvgPoints), num(r.TotalPoints), num(r.StreamScore),
			strconv.Itoa(r.GamesPlayed), r.Ownership, r.Injury)
	}
	return t.String()
}

func skaterTable(targets []service.StreamTarget) string {
	if len(targets) == 0 {
		return captionStyle.Render("No free-agent skaters above the threshold.")
	}
	return targetTable(targets)
}

func goalieView(g service.GoalieTargets) string {
	if g.Suppressed {
		return warnStyle.Render(g.Message)
	}
	if len(g.Targets) == 0 {
		return captionStyle.Render("No free-agent goalies with positive points.")
	}
	return targetTable(g.Targets)
}

func targetTable(targets []service.StreamTarget) string {
	t := newTable("Player", "Team", "Pos", "Avg Pts", "Stream", "Games")
	for _, s := range targets {
		t.Row(s.Player, s.Team, string(s.Position), num(s.AvgPoints), num(s.StreamScore), strconv.Itoa(s.GamesThisWk))
	}
	return t.String()
}

func dayCountChart(counts []schedule.DayCount) string {
	bar := lipgloss.NewStyle().Foreground(accent)
	lines := make([]string, 0, len(counts))
	for _, c := range counts {
		lines = append(lines, fmt.Sprintf("%s %2d %s", c.Day, c.Teams, bar.Render(strings.Repeat("█", c.Teams))))
	}
	return strings.Join(lines, "\n")
}

func playerWeekTable(players []service.PlayerWeek) string {
	t := newTable("Player", "Team", "Games", "Days")
	for _, p := range players {
		days := make([]string, len(p.Days))
		for i, d := range p.Days {
			days[i] = string(d)
		}
		t.Row(p.Player, p.Team, strconv.Itoa(p.Games), strings.Join(days, " "))
	}
	return t.String()
}

func matrixTable(rows []service.MatrixRow) string {
	headers := []string{"Player", "Team", "Pos", "Status"}
	for _, d := range schedule.Weekdays {
		headers = append(headers, string(d))
	}
	headers = append(headers, "Games")

	t := newTable(headers...)
	for _, r := range rows {
		cells := []string{r.Player, r.Team, string(r.Position), string(r.Status)}
		for _, d := range r.Days {
			mark := ""
			if d.Plays {
				mark = "X"
			}
			cells = append(cells, mark)
		}
		cells = append(cells, strconv.Itoa(r.GamesScheduled))
		t.Row(cells...)
	}
	return t.String()
}

func weightsTable(rows []schedule.DayWeight) string {
	t := newTable("Day", "Teams", "Weight", "Class")
	for _, r := range rows {
		t.Row(string(r.Day), strconv.Itoa(r.Teams), strconv.FormatFloat(r.Weight, 'f', 1, 64), string(r.Class))
	}
	return t.String()
}
