package report

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/warroom/internal/league"
	"github.com/fortuna/warroom/internal/schedule"
	"github.com/fortuna/warroom/internal/scoring"
	"github.com/fortuna/warroom/internal/service"
)

func buildDashboard(t *testing.T, roster []league.Player, ts schedule.TeamSchedule) *service.Dashboard {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	svc := service.NewDashboardService(nil, nil, scoring.NewDefaultEngine(2026), service.DashboardConfig{Location: time.UTC}, logger)

	snap := &league.Snapshot{
		LeagueName: "Beer League",
		TeamName:   "Ice Room",
		Roster:     roster,
		FreeAgents: []league.Player{
			{Name: "Streamer", Position: league.PositionRightWing, ProTeam: "PIT", Status: league.StatusFreeAgent,
				Stats: map[string]league.StatLine{"Total 2026": {"G": 5, "GP": 5}}},
		},
	}
	return svc.Build(snap, ts, nil, service.RefreshOptions{})
}

func TestRender(t *testing.T) {
	ts := schedule.TeamSchedule{}
	ts.Add("PIT", schedule.Tue)
	ts.Add("PIT", schedule.Thu)

	d := buildDashboard(t, []league.Player{
		{Name: "Captain", Position: league.PositionCenter, ProTeam: "PIT", Status: league.StatusRostered,
			Stats: map[string]league.StatLine{"Total 2026": {"G": 10, "GP": 5}}},
	}, ts)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, d))
	out := buf.String()

	for _, want := range []string{
		"Beer League", "Ice Room",
		"Roster: 1 Players | Goalies: 0/4",
		"Roster Performance", "Skater Stream Targets", "Goalie Stream Targets",
		"Games Per Day", "Schedule Matrix", "Weekday Weights",
		"Captain", "Streamer", "4.00", "N/A", "gold_mine",
		"No free-agent goalies with positive points.",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderGoalieLimit(t *testing.T) {
	var roster []league.Player
	for i := 0; i < 4; i++ {
		roster = append(roster, league.Player{Name: "Goalie", Position: league.PositionGoalie, ProTeam: "SEA", Status: league.StatusRostered})
	}
	d := buildDashboard(t, roster, schedule.TeamSchedule{})

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, d))
	out := buf.String()
	assert.Contains(t, out, service.GoalieLimitMessage)
	assert.Contains(t, out, "Max goalies reached (4).")
	assert.Contains(t, out, "weights static")
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	err := &service.FetchError{Kind: service.KindLeagueUnavailable, Op: "fetch league", Err: errors.New("espn returned 401")}
	require.NoError(t, RenderError(&buf, err))
	assert.Contains(t, buf.String(), "Something went wrong: espn returned 401")
	assert.NotContains(t, buf.String(), "Roster")
}
