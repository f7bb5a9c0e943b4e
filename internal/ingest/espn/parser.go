package espn

import (
	"fmt"
	"strings"

	"github.com/fortuna/warroom/internal/league"
)

// ESPN hockey stat ids mapped onto the category codes the scoring rules use.
// Games played is always reported as GP; unknown ids are dropped.
var statCodes = map[string]string{
	"1":  "W",
	"2":  "L",
	"3":  "SA",
	"4":  "GA",
	"6":  "SV",
	"7":  "SO",
	"9":  "OTL",
	"10": "GAA",
	"11": "SV%",
	"13": "G",
	"14": "A",
	"15": "+/-",
	"17": "PIM",
	"18": "PPG",
	"19": "PPA",
	"20": "SHG",
	"21": "SHA",
	"22": "GWG",
	"23": "FOW",
	"24": "FOL",
	"28": "HAT",
	"29": "SOG",
	"31": "HIT",
	"32": "BLK",
	"33": "DEF",
	"34": league.StatGamesPlayed,
	"38": "PPP",
	"39": "SHP",
}

// Split types that ESPN aggregates into reporting windows.
var windowKinds = map[int]string{
	0: "Total",
	1: "Last 7",
	2: "Last 15",
	3: "Last 30",
}

const statSourceActual = 0

var positions = map[int]league.Position{
	1: league.PositionCenter,
	2: league.PositionLeftWing,
	3: league.PositionRightWing,
	4: league.PositionDefense,
	5: league.PositionGoalie,
}

// ParseStats groups actual (non-projected) buckets by window label.
func ParseStats(stats []Stat) map[string]league.StatLine {
	out := make(map[string]league.StatLine)
	for _, s := range stats {
		if s.StatSourceID != statSourceActual {
			continue
		}
		kind, ok := windowKinds[s.StatSplitTypeID]
		if !ok {
			continue
		}
		label := league.WindowLabel(kind, s.SeasonID)

		line := make(league.StatLine, len(s.Stats))
		for id, v := range s.Stats {
			if code, ok := statCodes[id]; ok {
				line[code] = v
			}
		}
		if existing, ok := out[label]; ok && len(existing) >= len(line) {
			continue
		}
		out[label] = line
	}
	return out
}

// ParsePosition maps ESPN defaultPositionId. Unknown ids collapse to forward.
func ParsePosition(id int) league.Position {
	if p, ok := positions[id]; ok {
		return p
	}
	return league.PositionForward
}

// ParsePlayer converts a pool entry into a league player.
func ParsePlayer(e PlayerPoolEntry, status league.RosterStatus, teams *league.Directory) league.Player {
	p := league.Player{
		ID:           e.Player.ID,
		Name:         e.Player.FullName,
		Position:     ParsePosition(e.Player.DefaultPositionID),
		Status:       status,
		InjuryStatus: e.Player.InjuryStatus,
		Stats:        ParseStats(e.Player.Stats),
	}
	if p.ID == 0 {
		p.ID = e.ID
	}
	if t, ok := teams.ByESPNID(e.Player.ProTeamID); ok {
		p.ProTeam = t.Abbrev
	} else if e.Player.ProTeamID != 0 {
		p.ProTeam = fmt.Sprintf("ESPN-%d", e.Player.ProTeamID)
	}
	if e.Player.Ownership != nil {
		pct := e.Player.Ownership.PercentOwned
		p.PercentOwned = &pct
	}
	return p
}

// TeamName prefers the combined name field, falling back to location + nickname.
func TeamName(t Team) string {
	if strings.TrimSpace(t.Name) != "" {
		return t.Name
	}
	return strings.TrimSpace(t.Location + " " + t.Nickname)
}

// BuildSnapshot selects the configured team and converts both player lists.
func BuildSnapshot(lr *LeagueResponse, teamID int, freeAgents []PlayerPoolEntry, teams *league.Directory) (*league.Snapshot, error) {
	var mine *Team
	for i := range lr.Teams {
		if lr.Teams[i].ID == teamID {
			mine = &lr.Teams[i]
			break
		}
	}
	if mine == nil {
		return nil, fmt.Errorf("team %d not found in league %d", teamID, lr.ID)
	}

	snap := &league.Snapshot{
		LeagueName: lr.Settings.Name,
		TeamName:   TeamName(*mine),
		Roster:     make([]league.Player, 0, len(mine.Roster.Entries)),
		FreeAgents: make([]league.Player, 0, len(freeAgents)),
	}
	for _, entry := range mine.Roster.Entries {
		p := ParsePlayer(entry.PlayerPoolEntry, league.StatusRostered, teams)
		if p.InjuryStatus == "" {
			p.InjuryStatus = entry.InjuryStatus
		}
		snap.Roster = append(snap.Roster, p)
	}
	for _, entry := range freeAgents {
		snap.FreeAgents = append(snap.FreeAgents, ParsePlayer(entry, league.StatusFreeAgent, teams))
	}
	return snap, nil
}
