package league

import (
	"sort"
	"strings"
)

// Team is an NHL club keyed by the abbreviation the NHL schedule API uses.
type Team struct {
	Abbrev string `json:"abbrev"`
	Name   string `json:"name"`
	ESPNID int    `json:"espn_id"`
}

var nhlTeams = []Team{
	{Abbrev: "ANA", Name: "Anaheim Ducks", ESPNID: 25},
	{Abbrev: "BOS", Name: "Boston Bruins", ESPNID: 1},
	{Abbrev: "BUF", Name: "Buffalo Sabres", ESPNID: 2},
	{Abbrev: "CGY", Name: "Calgary Flames", ESPNID: 3},
	{Abbrev: "CAR", Name: "Carolina Hurricanes", ESPNID: 7},
	{Abbrev: "CHI", Name: "Chicago Blackhawks", ESPNID: 4},
	{Abbrev: "COL", Name: "Colorado Avalanche", ESPNID: 17},
	{Abbrev: "CBJ", Name: "Columbus Blue Jackets", ESPNID: 29},
	{Abbrev: "DAL", Name: "Dallas Stars", ESPNID: 9},
	{Abbrev: "DET", Name: "Detroit Red Wings", ESPNID: 5},
	{Abbrev: "EDM", Name: "Edmonton Oilers", ESPNID: 6},
	{Abbrev: "FLA", Name: "Florida Panthers", ESPNID: 26},
	{Abbrev: "LAK", Name: "Los Angeles Kings", ESPNID: 8},
	{Abbrev: "MIN", Name: "Minnesota Wild", ESPNID: 30},
	{Abbrev: "MTL", Name: "Montreal Canadiens", ESPNID: 10},
	{Abbrev: "NSH", Name: "Nashville Predators", ESPNID: 27},
	{Abbrev: "NJD", Name: "New Jersey Devils", ESPNID: 11},
	{Abbrev: "NYI", Name: "New York Islanders", ESPNID: 12},
	{Abbrev: "NYR", Name: "New York Rangers", ESPNID: 13},
	{Abbrev: "OTT", Name: "Ottawa Senators", ESPNID: 14},
	{Abbrev: "PHI", Name: "Philadelphia Flyers", ESPNID: 15},
	{Abbrev: "PIT", Name: "Pittsburgh Penguins", ESPNID: 16},
	{Abbrev: "SJS", Name: "San Jose Sharks", ESPNID: 18},
	{Abbrev: "SEA", Name: "Seattle Kraken", ESPNID: 124292},
	{Abbrev: "STL", Name: "St. Louis Blues", ESPNID: 19},
	{Abbrev: "TBL", Name: "Tampa Bay Lightning", ESPNID: 20},
	{Abbrev: "TOR", Name: "Toronto Maple Leafs", ESPNID: 21},
	{Abbrev: "UTA", Name: "Utah Mammoth", ESPNID: 129764},
	{Abbrev: "VAN", Name: "Vancouver Canucks", ESPNID: 22},
	{Abbrev: "VGK", Name: "Vegas Golden Knights", ESPNID: 37},
	{Abbrev: "WSH", Name: "Washington Capitals", ESPNID: 23},
	{Abbrev: "WPG", Name: "Winnipeg Jets", ESPNID: 28},
}

// Directory is a read-only bidirectional abbreviation/name lookup.
type Directory struct {
	byAbbrev map[string]Team
	byName   map[string]Team
	byESPN   map[int]Team
}

// NewDirectory indexes teams. Later entries win on duplicate keys.
func NewDirectory(teams []Team) *Directory {
	d := &Directory{
		byAbbrev: make(map[string]Team, len(teams)),
		byName:   make(map[string]Team, len(teams)),
		byESPN:   make(map[int]Team, len(teams)),
	}
	for _, t := range teams {
		d.byAbbrev[strings.ToUpper(t.Abbrev)] = t
		d.byName[strings.ToLower(t.Name)] = t
		if t.ESPNID != 0 {
			d.byESPN[t.ESPNID] = t
		}
	}
	return d
}

// DefaultDirectory covers the 32 current NHL clubs.
func DefaultDirectory() *Directory {
	return NewDirectory(nhlTeams)
}

// Name returns the full name for an abbreviation.
func (d *Directory) Name(abbrev string) (string, bool) {
	t, ok := d.byAbbrev[strings.ToUpper(strings.TrimSpace(abbrev))]
	return t.Name, ok
}

// Abbrev returns the abbreviation for a full name, case-insensitively.
func (d *Directory) Abbrev(name string) (string, bool) {
	t, ok := d.byName[strings.ToLower(strings.TrimSpace(name))]
	return t.Abbrev, ok
}

// Lookup accepts either an abbreviation or a full name.
func (d *Directory) Lookup(key string) (Team, bool) {
	if t, ok := d.byAbbrev[strings.ToUpper(strings.TrimSpace(key))]; ok {
		return t, true
	}
	t, ok := d.byName[strings.ToLower(strings.TrimSpace(key))]
	return t, ok
}

// ByESPNID maps an ESPN proTeamId onto the NHL club.
func (d *Directory) ByESPNID(id int) (Team, bool) {
	t, ok := d.byESPN[id]
	return t, ok
}

// All returns every team sorted by abbreviation.
func (d *Directory) All() []Team {
	teams := make([]Team, 0, len(d.byAbbrev))
	for _, t := range d.byAbbrev {
		teams = append(teams, t)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Abbrev < teams[j].Abbrev })
	return teams
}
