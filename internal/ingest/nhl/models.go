package nhl

// ScheduleResponse is the subset of /v1/schedule/{date} the dashboard reads.
type ScheduleResponse struct {
	GameWeek []GameDay `json:"gameWeek"`
}

// GameDay is one date in the seven-day window.
type GameDay struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

// Game names the two clubs by abbreviation.
type Game struct {
	ID       int      `json:"id"`
	AwayTeam GameTeam `json:"awayTeam"`
	HomeTeam GameTeam `json:"homeTeam"`
}

type GameTeam struct {
	Abbrev string `json:"abbrev"`
}
