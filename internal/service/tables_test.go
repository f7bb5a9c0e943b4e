package service

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/warroom/internal/league"
	"github.com/fortuna/warroom/internal/schedule"
	"github.com/fortuna/warroom/internal/scoring"
)

func testAnalytics() *AnalyticsService {
	return NewAnalyticsService(scoring.NewDefaultEngine(2026), flatWeights(1))
}

func rostered(p league.Player) league.Player {
	p.Status = league.StatusRostered
	return p
}

func testWeek() schedule.TeamSchedule {
	ts := schedule.TeamSchedule{}
	ts.Add("PIT", schedule.Mon)
	ts.Add("PIT", schedule.Wed)
	ts.Add("PIT", schedule.Fri)
	ts.Add("CAR", schedule.Tue)
	ts.Add("SEA", schedule.Sat)
	ts.Add("SEA", schedule.Sun)
	return ts
}

func TestBuildRosterView(t *testing.T) {
	a := testAnalytics()
	roster := []league.Player{
		rostered(goalie("Netminder", "CAR", league.StatLine{"W": 3, "GA": 10, "SV": 80, "SO": 1, "GP": 4})),
		rostered(skater("Star", "PIT", league.StatLine{"G": 10, "GP": 5})),
		func() league.Player {
			p := rostered(skater("Grinder", "SEA", league.StatLine{"HIT": 10, "GP": 5}))
			p.Position = league.PositionDefense
			return p
		}(),
		rostered(skater("Rookie", "PIT", league.StatLine{})),
	}

	rows := BuildRosterView(roster, a, false)
	require.Len(t, rows, 4)
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Player
	}
	assert.Equal(t, []string{"Rookie", "Grinder", "Netminder", "Star"}, names, "weakest average first")
	assert.Equal(t, 0.4, rows[1].AvgPoints)
	assert.Equal(t, "N/A", rows[0].Ownership)
	assert.Equal(t, 0, rows[0].GamesPlayed)

	grouped := BuildRosterView(roster, a, true)
	names = names[:0]
	for _, r := range grouped {
		names = append(names, r.Player)
	}
	assert.Equal(t, []string{"Rookie", "Star", "Grinder", "Netminder"}, names, "forwards, defense, goalies")
}

func TestBuildSkaterTargetsThreshold(t *testing.T) {
	a := testAnalytics()
	fa := []league.Player{
		skater("Exactly", "PIT", league.StatLine{"G": 3, "A": 1.5, "GP": 5}),  // 7.5 / 5 = 1.5, excluded
		skater("Above", "PIT", league.StatLine{"G": 4, "GP": 5}),              // 1.6
		skater("Below", "PIT", league.StatLine{"G": 1, "GP": 5}),              // 0.4
		goalie("Goalie", "CAR", league.StatLine{"W": 10, "SV": 200, "GP": 5}), // never a skater target
	}

	targets := BuildSkaterTargets(fa, a, testWeek())
	require.Len(t, targets, 1)
	assert.Equal(t, "Above", targets[0].Player)
	assert.Equal(t, 3, targets[0].GamesThisWk)
	for _, tgt := range targets {
		assert.Greater(t, tgt.AvgPoints, SkaterAvgThreshold)
	}
}

func TestBuildSkaterTargetsRoundedAverageAtThreshold(t *testing.T) {
	a := testAnalytics()
	fa := []league.Player{
		skater("Edge", "PIT", league.StatLine{"G": 45, "SOG": 3, "GP": 60}), // 90.3 / 60 rounds to 1.5
		skater("Clear", "PIT", league.StatLine{"G": 46, "GP": 60}),          // 92 / 60 rounds to 1.53
	}

	targets := BuildSkaterTargets(fa, a, testWeek())
	require.Len(t, targets, 1)
	assert.Equal(t, "Clear", targets[0].Player)
	assert.Equal(t, 1.53, targets[0].AvgPoints)
}

func TestBuildSkaterTargetsTopFifteen(t *testing.T) {
	a := testAnalytics()
	var fa []league.Player
	for i := 0; i < 25; i++ {
		fa = append(fa, skater(fmt.Sprintf("Skater %02d", i), "PIT", league.StatLine{"G": float64(4 + i), "GP": 5}))
	}

	targets := BuildSkaterTargets(fa, a, testWeek())
	require.Len(t, targets, SkaterTargetLimit)
	assert.Equal(t, "Skater 24", targets[0].Player)
	for i := 1; i < len(targets); i++ {
		assert.GreaterOrEqual(t, targets[i-1].StreamScore, targets[i].StreamScore)
	}
}

func TestBuildSkaterTargetsTieBreak(t *testing.T) {
	a := testAnalytics()
	fa := []league.Player{
		skater("Zed", "PIT", league.StatLine{"G": 5, "GP": 5}),
		skater("Abe", "PIT", league.StatLine{"G": 5, "GP": 5}),
	}
	targets := BuildSkaterTargets(fa, a, testWeek())
	require.Len(t, targets, 2)
	assert.Equal(t, "Abe", targets[0].Player)
}

func TestBuildGoalieTargets(t *testing.T) {
	a := testAnalytics()
	limits := league.DefaultRosterLimits()
	fa := []league.Player{
		goalie("Starter", "CAR", league.StatLine{"W": 3, "GA": 10, "SV": 80, "SO": 1, "GP": 4}),
		goalie("Sieve", "SEA", league.StatLine{"GA": 20, "SV": 50, "GP": 4}), // -1 total, excluded
		goalie("Unused", "SEA", league.StatLine{}),                          // 0, excluded
		skater("Skater", "PIT", league.StatLine{"G": 10, "GP": 2}),
	}

	got := BuildGoalieTargets(fa, a, testWeek(), 2, limits)
	assert.False(t, got.Suppressed)
	require.Len(t, got.Targets, 1)
	assert.Equal(t, "Starter", got.Targets[0].Player)
	assert.Equal(t, 1, got.Targets[0].GamesThisWk)
}

func TestBuildGoalieTargetsSuppressed(t *testing.T) {
	a := testAnalytics()
	limits := league.DefaultRosterLimits()
	fa := []league.Player{goalie("Starter", "CAR", league.StatLine{"W": 3, "GP": 1})}

	for _, count := range []int{limits.MaxGoalies, limits.MaxGoalies + 1} {
		got := BuildGoalieTargets(fa, a, testWeek(), count, limits)
		assert.True(t, got.Suppressed)
		assert.Equal(t, GoalieLimitMessage, got.Message)
		assert.Empty(t, got.Targets)
	}
}

func TestBuildWeeklySummary(t *testing.T) {
	roster := []league.Player{
		rostered(skater("Bench", "CAR", nil)),
		rostered(skater("Zeta", "SEA", nil)),
		rostered(skater("Alpha", "SEA", nil)),
		rostered(skater("Captain", "PIT", nil)),
		rostered(skater("Idle", "BOS", nil)),
	}

	got := BuildWeeklySummary(roster, testWeek())
	require.Len(t, got.DayCounts, 7)
	assert.Equal(t, schedule.Mon, got.DayCounts[0].Day)

	want := []PlayerWeek{
		{Player: "Captain", Team: "PIT", Days: []schedule.Weekday{schedule.Mon, schedule.Wed, schedule.Fri}, Games: 3},
		{Player: "Alpha", Team: "SEA", Days: []schedule.Weekday{schedule.Sat, schedule.Sun}, Games: 2},
		{Player: "Zeta", Team: "SEA", Days: []schedule.Weekday{schedule.Sat, schedule.Sun}, Games: 2},
		{Player: "Bench", Team: "CAR", Days: []schedule.Weekday{schedule.Tue}, Games: 1},
		{Player: "Idle", Team: "BOS", Days: []schedule.Weekday{}, Games: 0},
	}
	if diff := cmp.Diff(want, got.Players); diff != "" {
		t.Errorf("weekly summary mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildScheduleMatrix(t *testing.T) {
	roster := []league.Player{rostered(skater("Captain", "PIT", nil))}
	fa := []league.Player{skater("Streamer", "SEA", nil), skater("Nomad", "ESPN-999", nil)}

	rows := BuildScheduleMatrix(roster, fa, testWeek())
	require.Len(t, rows, 3)

	assert.Equal(t, league.StatusRostered, rows[0].Status)
	assert.Equal(t, league.StatusFreeAgent, rows[1].Status)

	for _, r := range rows {
		require.Len(t, r.Days, 7)
		played := 0
		for i, v := range r.Days {
			assert.Equal(t, schedule.Weekdays[i], v.Day, "days run Mon..Sun")
			if v.Plays {
				played++
			}
		}
		assert.Equal(t, played, r.GamesScheduled, r.Player)
	}
	assert.Equal(t, 3, rows[0].GamesScheduled)
	assert.True(t, rows[1].Plays(schedule.Sun))
	assert.False(t, rows[1].Plays(schedule.Mon))
	assert.Zero(t, rows[2].GamesScheduled)
}

func TestRosterCaption(t *testing.T) {
	snap := &league.Snapshot{Roster: []league.Player{
		rostered(skater("A", "PIT", nil)),
		rostered(goalie("B", "CAR", nil)),
	}}
	assert.Equal(t, "Roster: 2 Players | Goalies: 1/4", RosterCaption(snap, league.DefaultRosterLimits()))
}
