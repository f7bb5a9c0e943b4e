package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fortuna/warroom/internal/league"
)

func player(pos league.Position, line league.StatLine) league.Player {
	return league.Player{
		Name:     "test",
		Position: pos,
		Stats:    map[string]league.StatLine{"Total 2026": line},
	}
}

func TestFantasyPointsExamples(t *testing.T) {
	engine := NewDefaultEngine(2026)

	skater := player(league.PositionCenter, league.StatLine{"G": 2, "A": 3, "SOG": 10, "GP": 5})
	assert.InDelta(t, 8.0, engine.FantasyPoints(skater), 1e-9)

	goalie := player(league.PositionGoalie, league.StatLine{"W": 3, "GA": 10, "SV": 80, "SO": 1, "GP": 4})
	assert.InDelta(t, 11.0, engine.FantasyPoints(goalie), 1e-9)
}

func TestFantasyPointsIgnoresOtherRuleSet(t *testing.T) {
	engine := NewDefaultEngine(2026)

	base := league.StatLine{"G": 1, "A": 1, "HIT": 4}
	withGoalieStats := league.StatLine{"G": 1, "A": 1, "HIT": 4, "W": 9, "SV": 300, "PIM": 12}

	assert.Equal(t,
		engine.FantasyPoints(player(league.PositionDefense, base)),
		engine.FantasyPoints(player(league.PositionDefense, withGoalieStats)),
	)

	goalie := league.StatLine{"W": 2, "SV": 50}
	goalieWithSkaterStats := league.StatLine{"W": 2, "SV": 50, "G": 5, "SOG": 40}
	assert.Equal(t,
		engine.FantasyPoints(player(league.PositionGoalie, goalie)),
		engine.FantasyPoints(player(league.PositionGoalie, goalieWithSkaterStats)),
	)
}

func TestFantasyPointsDeterministic(t *testing.T) {
	engine := NewDefaultEngine(2026)
	line := league.StatLine{"G": 7, "A": 11, "PPP": 5, "SHP": 1, "HAT": 1, "SOG": 63, "HIT": 17, "BLK": 9}
	first := engine.FantasyPoints(player(league.PositionLeftWing, line))
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, engine.FantasyPoints(player(league.PositionLeftWing, line)))
	}
	// 14 + 11 + 2.5 + 1 + 3 + 6.3 + 3.4 + 4.5
	assert.InDelta(t, 45.7, first, 1e-9)
}

func TestFantasyPointsFallsBackToPreviousSeason(t *testing.T) {
	engine := NewDefaultEngine(2026)
	p := league.Player{
		Position: league.PositionRightWing,
		Stats: map[string]league.StatLine{
			"Total 2026": {},
			"Total 2025": {"G": 20, "A": 10},
		},
	}
	assert.InDelta(t, 50.0, engine.FantasyPoints(p), 1e-9)

	assert.Zero(t, engine.FantasyPoints(league.Player{Position: league.PositionCenter}))
}

func TestRuleSetIsImmutable(t *testing.T) {
	weights := map[string]float64{"G": 2}
	rules := NewRuleSet("custom", weights)
	weights["G"] = 100
	weights["A"] = 5

	w, ok := rules.Weight("G")
	assert.True(t, ok)
	assert.Equal(t, 2.0, w)
	_, ok = rules.Weight("A")
	assert.False(t, ok)

	cats := rules.Categories()
	cats[0] = "X"
	assert.Equal(t, []string{"G"}, rules.Categories())
}

func TestGoalieRulesOnlyGAIsNegative(t *testing.T) {
	rules := GoalieRules()
	for _, cat := range rules.Categories() {
		w, _ := rules.Weight(cat)
		if cat == "GA" {
			assert.Less(t, w, 0.0)
			continue
		}
		assert.GreaterOrEqual(t, w, 0.0, cat)
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 1.6, Round(8.0/5, 2))
	assert.Equal(t, 0.3, Round(0.1+0.2, 1))
	assert.Equal(t, -2.2, Round(-2.25, 1))
}

func TestRoundUsesExactBinaryValue(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		places int
		want   float64
	}{
		{"exact half goes to even", 4.5 / 4, 2, 1.12},
		{"exact half goes to even upward", 1.375, 2, 1.38},
		{"stored below the half", 90.3 / 60, 2, 1.5},
		{"stored above the half", 2.675 + 1e-12, 2, 2.68},
		{"one decimal", 0.25, 1, 0.2},
		{"negative half", -0.125, 2, -0.12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Round(tt.v, tt.places))
		})
	}
}
