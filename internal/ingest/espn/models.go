package espn

// LeagueResponse is the mTeam/mRoster/mSettings view of a fantasy league.
type LeagueResponse struct {
	ID              int      `json:"id"`
	SeasonID        int      `json:"seasonId"`
	ScoringPeriodID int      `json:"scoringPeriodId"`
	Settings        Settings `json:"settings"`
	Teams           []Team   `json:"teams"`
}

type Settings struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// Team is a fantasy team. Older seasons split the name into location and nickname.
type Team struct {
	ID       int    `json:"id"`
	Abbrev   string `json:"abbrev"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Nickname string `json:"nickname"`
	Roster   Roster `json:"roster"`
}

type Roster struct {
	Entries []RosterEntry `json:"entries"`
}

type RosterEntry struct {
	PlayerID        int             `json:"playerId"`
	LineupSlotID    int             `json:"lineupSlotId"`
	InjuryStatus    string          `json:"injuryStatus"`
	PlayerPoolEntry PlayerPoolEntry `json:"playerPoolEntry"`
}

// PlayerCardResponse is the kona_player_info view used for the free-agent pool.
type PlayerCardResponse struct {
	Players []PlayerPoolEntry `json:"players"`
}

type PlayerPoolEntry struct {
	ID       int    `json:"id"`
	OnTeamID int    `json:"onTeamId"`
	Status   string `json:"status"`
	Player   Player `json:"player"`
}

type Player struct {
	ID                int        `json:"id"`
	FullName          string     `json:"fullName"`
	DefaultPositionID int        `json:"defaultPositionId"`
	ProTeamID         int        `json:"proTeamId"`
	InjuryStatus      string     `json:"injuryStatus"`
	Injured           bool       `json:"injured"`
	Ownership         *Ownership `json:"ownership"`
	Stats             []Stat     `json:"stats"`
}

type Ownership struct {
	PercentOwned float64 `json:"percentOwned"`
}

// Stat is one statistics bucket. Keys of Stats are ESPN numeric stat ids.
type Stat struct {
	ID              string             `json:"id"`
	SeasonID        int                `json:"seasonId"`
	ScoringPeriodID int                `json:"scoringPeriodId"`
	StatSourceID    int                `json:"statSourceId"`
	StatSplitTypeID int                `json:"statSplitTypeId"`
	AppliedTotal    float64            `json:"appliedTotal"`
	Stats           map[string]float64 `json:"stats"`
}
