package league

import (
	"fmt"
	"strings"
)

// StatGamesPlayed is the only category code read as games played.
const StatGamesPlayed = "GP"

// OwnershipUnavailable is rendered when the provider omits percent owned.
const OwnershipUnavailable = "N/A"

// Position is a player's fantasy position code.
type Position string

const (
	PositionCenter    Position = "C"
	PositionLeftWing  Position = "LW"
	PositionRightWing Position = "RW"
	PositionForward   Position = "F"
	PositionDefense   Position = "D"
	PositionGoalie    Position = "G"
)

// IsGoalie reports whether the goalie scoring rules apply.
func (p Position) IsGoalie() bool {
	return p == PositionGoalie
}

// IsForward is true for C, LW, RW and the collapsed F bucket.
func (p Position) IsForward() bool {
	switch p {
	case PositionCenter, PositionLeftWing, PositionRightWing, PositionForward:
		return true
	}
	return false
}

// Group orders positions forwards, defense, goalies.
func (p Position) Group() int {
	switch {
	case p.IsForward():
		return 0
	case p == PositionDefense:
		return 1
	case p.IsGoalie():
		return 2
	}
	return 3
}

// Collapse folds forward subtypes into F.
func (p Position) Collapse() Position {
	if p.IsForward() {
		return PositionForward
	}
	return p
}

// RosterStatus tells whether a player is on the configured team.
type RosterStatus string

const (
	StatusRostered  RosterStatus = "rostered"
	StatusFreeAgent RosterStatus = "free_agent"
)

// StatLine is one reporting window's statistics, keyed by category code.
type StatLine map[string]float64

// Get returns the value for a category, zero when absent.
func (s StatLine) Get(code string) float64 {
	return s[code]
}

// GamesPlayed returns the GP category.
func (s StatLine) GamesPlayed() float64 {
	return s[StatGamesPlayed]
}

// Player is a rostered player or free agent as supplied by the league provider.
type Player struct {
	ID           int                 `json:"id"`
	Name         string              `json:"name"`
	Position     Position            `json:"position"`
	ProTeam      string              `json:"pro_team"`
	Status       RosterStatus        `json:"status"`
	PercentOwned *float64            `json:"percent_owned,omitempty"`
	InjuryStatus string              `json:"injury_status,omitempty"`
	Stats        map[string]StatLine `json:"stats,omitempty"`
}

// Ownership formats percent owned, or "N/A" when the provider omitted it.
func (p Player) Ownership() string {
	if p.PercentOwned == nil {
		return OwnershipUnavailable
	}
	return fmt.Sprintf("%.1f", *p.PercentOwned)
}

// Windows is an ordered list of reporting-window labels, most preferred first.
type Windows []string

// WindowLabel builds labels such as "Total 2026" or "Last 15 2026".
func WindowLabel(kind string, season int) string {
	return fmt.Sprintf("%s %d", kind, season)
}

// SeasonWindows prefers the season-to-date totals and falls back to the
// previous season.
func SeasonWindows(season int) Windows {
	return Windows{
		WindowLabel("Total", season),
		WindowLabel("Total", season-1),
	}
}

// Select returns the first non-empty bucket in preference order, or an
// empty line when the player has none of them.
func (w Windows) Select(p Player) StatLine {
	for _, label := range w {
		if line, ok := p.Stats[label]; ok && len(line) > 0 {
			return line
		}
	}
	return StatLine{}
}

func (w Windows) String() string {
	return strings.Join(w, " > ")
}

// RosterLimits are the league's structural slot maximums. Advisory only.
type RosterLimits struct {
	Forwards   int `json:"forwards"`
	Defense    int `json:"defense"`
	Goalies    int `json:"goalies"`
	Bench      int `json:"bench"`
	IR         int `json:"ir"`
	MaxGoalies int `json:"max_goalies"`
}

// DefaultRosterLimits returns the league's slot configuration.
func DefaultRosterLimits() RosterLimits {
	return RosterLimits{
		Forwards:   9,
		Defense:    5,
		Goalies:    2,
		Bench:      5,
		IR:         2,
		MaxGoalies: 4,
	}
}

// Snapshot is one fetch of the configured team's roster plus the free-agent pool.
type Snapshot struct {
	LeagueName string   `json:"league_name"`
	TeamName   string   `json:"team_name"`
	Roster     []Player `json:"roster"`
	FreeAgents []Player `json:"free_agents"`
}

// GoalieCount counts rostered goalies.
func (s *Snapshot) GoalieCount() int {
	n := 0
	for _, p := range s.Roster {
		if p.Position.IsGoalie() {
			n++
		}
	}
	return n
}
