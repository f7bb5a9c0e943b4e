package service

import (
	"fmt"
	"sort"

	"github.com/fortuna/warroom/internal/league"
	"github.com/fortuna/warroom/internal/schedule"
)

// Streaming policy. These are fixed, not user inputs.
const (
	SkaterAvgThreshold = 1.5
	GoalieAvgThreshold = 0.0
	SkaterTargetLimit  = 15
)

// GoalieLimitMessage replaces the goalie view when the roster is full of goalies.
const GoalieLimitMessage = "Max goalies reached. Drop one first."

// RosterRow is one line of the roster performance view.
type RosterRow struct {
	Player      string          `json:"player"`
	Position    league.Position `json:"pos"`
	Team        string          `json:"team"`
	AvgPoints   float64         `json:"avg_pts"`
	TotalPoints float64         `json:"total_pts"`
	StreamScore float64         `json:"stream_score"`
	GamesPlayed int             `json:"gp"`
	Ownership   string          `json:"pct_own"`
	Injury      string          `json:"injury,omitempty"`
}

// StreamTarget is one free agent in a streaming view.
type StreamTarget struct {
	Player      string          `json:"player"`
	Team        string          `json:"team"`
	Position    league.Position `json:"pos"`
	AvgPoints   float64         `json:"avg_pts"`
	StreamScore float64         `json:"stream_score"`
	GamesThisWk int             `json:"games_this_week"`
}

// GoalieTargets is either a ranked list or a blocking message.
type GoalieTargets struct {
	Suppressed bool           `json:"suppressed"`
	Message    string         `json:"message,omitempty"`
	Targets    []StreamTarget `json:"targets"`
}

// PlayerWeek is one rostered player's games this week.
type PlayerWeek struct {
	Player string             `json:"player"`
	Team   string             `json:"team"`
	Days   []schedule.Weekday `json:"days"`
	Games  int                `json:"games"`
}

// WeeklySummary backs the games-per-day chart and the roster schedule list.
type WeeklySummary struct {
	DayCounts []schedule.DayCount `json:"day_counts"`
	Players   []PlayerWeek        `json:"players"`
}

// DayPlay is one cell of the schedule matrix.
type DayPlay struct {
	Day   schedule.Weekday `json:"day"`
	Plays bool             `json:"plays"`
}

// MatrixRow is one player's weekday grid. Days is always Mon..Sun.
type MatrixRow struct {
	Player         string              `json:"player"`
	Team           string              `json:"team"`
	Position       league.Position     `json:"pos"`
	Status         league.RosterStatus `json:"status"`
	Days           []DayPlay           `json:"days"`
	GamesScheduled int                 `json:"games_scheduled"`
}

// Plays reports the cell for day.
func (r MatrixRow) Plays(day schedule.Weekday) bool {
	for _, d := range r.Days {
		if d.Day == day {
			return d.Plays
		}
	}
	return false
}

// BuildRosterView lists every rostered player, weakest average first. With
// groupByPosition, forwards come before defense before goalies.
func BuildRosterView(roster []league.Player, a *AnalyticsService, groupByPosition bool) []RosterRow {
	type keyed struct {
		row   RosterRow
		group int
	}
	rows := make([]keyed, 0, len(roster))
	for _, p := range roster {
		rows = append(rows, keyed{
			row: RosterRow{
				Player:      p.Name,
				Position:    p.Position,
				Team:        p.ProTeam,
				AvgPoints:   a.AvgPoints(p),
				TotalPoints: a.TotalPoints(p),
				StreamScore: a.StreamScore(p),
				GamesPlayed: int(a.GamesPlayed(p)),
				Ownership:   p.Ownership(),
				Injury:      p.InjuryStatus,
			},
			group: p.Position.Group(),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if groupByPosition && rows[i].group != rows[j].group {
			return rows[i].group < rows[j].group
		}
		if rows[i].row.AvgPoints != rows[j].row.AvgPoints {
			return rows[i].row.AvgPoints < rows[j].row.AvgPoints
		}
		return rows[i].row.Player < rows[j].row.Player
	})

	out := make([]RosterRow, len(rows))
	for i, r := range rows {
		out[i] = r.row
	}
	return out
}

// BuildSkaterTargets ranks free-agent skaters averaging more than 1.5 points.
func BuildSkaterTargets(freeAgents []league.Player, a *AnalyticsService, ts schedule.TeamSchedule) []StreamTarget {
	targets := make([]StreamTarget, 0)
	for _, p := range freeAgents {
		if p.Position.IsGoalie() {
			continue
		}
		avg := a.AvgPoints(p)
		if avg <= SkaterAvgThreshold {
			continue
		}
		targets = append(targets, streamTarget(p, avg, a, ts))
	}
	sortByStreamScore(targets)
	if len(targets) > SkaterTargetLimit {
		targets = targets[:SkaterTargetLimit]
	}
	return targets
}

// BuildGoalieTargets ranks free-agent goalies with a positive average, unless
// the roster already carries the maximum number of goalies.
func BuildGoalieTargets(freeAgents []league.Player, a *AnalyticsService, ts schedule.TeamSchedule, rosterGoalies int, limits league.RosterLimits) GoalieTargets {
	if rosterGoalies >= limits.MaxGoalies {
		return GoalieTargets{Suppressed: true, Message: GoalieLimitMessage, Targets: []StreamTarget{}}
	}

	targets := make([]StreamTarget, 0)
	for _, p := range freeAgents {
		if !p.Position.IsGoalie() {
			continue
		}
		avg := a.AvgPoints(p)
		if avg <= GoalieAvgThreshold {
			continue
		}
		targets = append(targets, streamTarget(p, avg, a, ts))
	}
	sortByStreamScore(targets)
	return GoalieTargets{Targets: targets}
}

// BuildWeeklySummary counts teams per day and lists each rostered player's
// games, most games first, then by name.
func BuildWeeklySummary(roster []league.Player, ts schedule.TeamSchedule) WeeklySummary {
	players := make([]PlayerWeek, 0, len(roster))
	for _, p := range roster {
		players = append(players, PlayerWeek{
			Player: p.Name,
			Team:   p.ProTeam,
			Days:   ts.Days(p.ProTeam),
			Games:  ts.Games(p.ProTeam),
		})
	}
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].Games != players[j].Games {
			return players[i].Games > players[j].Games
		}
		return players[i].Player < players[j].Player
	})
	return WeeklySummary{DayCounts: ts.DayCounts(), Players: players}
}

// BuildScheduleMatrix grids roster and free agents against the week.
func BuildScheduleMatrix(roster, freeAgents []league.Player, ts schedule.TeamSchedule) []MatrixRow {
	rows := make([]MatrixRow, 0, len(roster)+len(freeAgents))
	for _, group := range [][]league.Player{roster, freeAgents} {
		for _, p := range group {
			row := MatrixRow{
				Player:   p.Name,
				Team:     p.ProTeam,
				Position: p.Position,
				Status:   p.Status,
				Days:     make([]DayPlay, 0, len(schedule.Weekdays)),
			}
			for _, d := range schedule.Weekdays {
				plays := ts.Plays(p.ProTeam, d)
				row.Days = append(row.Days, DayPlay{Day: d, Plays: plays})
				if plays {
					row.GamesScheduled++
				}
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// RosterCaption summarizes roster size against the goalie cap.
func RosterCaption(snap *league.Snapshot, limits league.RosterLimits) string {
	return fmt.Sprintf("Roster: %d Players | Goalies: %d/%d", len(snap.Roster), snap.GoalieCount(), limits.MaxGoalies)
}

func streamTarget(p league.Player, avg float64, a *AnalyticsService, ts schedule.TeamSchedule) StreamTarget {
	return StreamTarget{
		Player:      p.Name,
		Team:        p.ProTeam,
		Position:    p.Position,
		AvgPoints:   avg,
		StreamScore: a.StreamScore(p),
		GamesThisWk: ts.Games(p.ProTeam),
	}
}

func sortByStreamScore(targets []StreamTarget) {
	sort.SliceStable(targets, func(i, j int) bool {
		if targets[i].StreamScore != targets[j].StreamScore {
			return targets[i].StreamScore > targets[j].StreamScore
		}
		return targets[i].Player < targets[j].Player
	})
}
