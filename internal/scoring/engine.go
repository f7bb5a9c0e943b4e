// Package scoring computes fantasy points from raw category statistics.
package scoring

import (
	"sort"
	"strconv"

	"github.com/fortuna/warroom/internal/league"
)

// RuleSet maps category codes to point weights. It is immutable once built.
type RuleSet struct {
	name       string
	weights    map[string]float64
	categories []string
}

// NewRuleSet copies weights so later changes to the caller's map are not seen.
func NewRuleSet(name string, weights map[string]float64) RuleSet {
	copied := make(map[string]float64, len(weights))
	categories := make([]string, 0, len(weights))
	for cat, w := range weights {
		copied[cat] = w
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	return RuleSet{name: name, weights: copied, categories: categories}
}

// SkaterRules scores forwards and defensemen.
func SkaterRules() RuleSet {
	return NewRuleSet("skater", map[string]float64{
		"G":   2,
		"A":   1,
		"PPP": 0.5,
		"SHP": 1,
		"HAT": 3,
		"SOG": 0.1,
		"HIT": 0.2,
		"BLK": 0.5,
	})
}

// GoalieRules scores goalies. GA is the only negative weight.
func GoalieRules() RuleSet {
	return NewRuleSet("goalie", map[string]float64{
		"W":   1,
		"GA":  -0.3,
		"SV":  0.1,
		"SO":  3,
		"OTL": 0.5,
	})
}

func (r RuleSet) Name() string { return r.name }

// Categories returns the scored category codes in sorted order.
func (r RuleSet) Categories() []string {
	out := make([]string, len(r.categories))
	copy(out, r.categories)
	return out
}

// Weight returns the weight for a category and whether it is scored.
func (r RuleSet) Weight(category string) (float64, bool) {
	w, ok := r.weights[category]
	return w, ok
}

// Score sums value*weight over the rule set's categories. Missing stats count as zero.
func (r RuleSet) Score(stats league.StatLine) float64 {
	total := 0.0
	for _, cat := range r.categories {
		total += stats.Get(cat) * r.weights[cat]
	}
	return total
}

// Engine selects a rule set by position and the stats window to score.
type Engine struct {
	skater  RuleSet
	goalie  RuleSet
	windows league.Windows
}

// NewEngine builds an engine from explicit rule sets and window preference.
func NewEngine(skater, goalie RuleSet, windows league.Windows) *Engine {
	w := make(league.Windows, len(windows))
	copy(w, windows)
	return &Engine{skater: skater, goalie: goalie, windows: w}
}

// NewDefaultEngine uses the league's skater and goalie rules for a season.
func NewDefaultEngine(season int) *Engine {
	return NewEngine(SkaterRules(), GoalieRules(), league.SeasonWindows(season))
}

// Rules returns the rule set that applies to a position.
func (e *Engine) Rules(pos league.Position) RuleSet {
	if pos.IsGoalie() {
		return e.goalie
	}
	return e.skater
}

// Windows returns the window preference order.
func (e *Engine) Windows() league.Windows {
	return e.windows
}

// Stats selects the player's statistics bucket.
func (e *Engine) Stats(p league.Player) league.StatLine {
	return e.windows.Select(p)
}

// FantasyPoints scores a player, rounded to one decimal.
func (e *Engine) FantasyPoints(p league.Player) float64 {
	return Round(e.Rules(p.Position).Score(e.Stats(p)), 1)
}

// Round rounds the exact binary value of v to the given number of decimals,
// sending exact halves to the even digit. 1.505 is stored just below the
// half and becomes 1.5; 1.125 is an exact half and becomes 1.12.
func Round(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}
