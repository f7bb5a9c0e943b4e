package service

import (
	"github.com/fortuna/warroom/internal/league"
	"github.com/fortuna/warroom/internal/schedule"
	"github.com/fortuna/warroom/internal/scoring"
)

// streamHorizonGames scales weekly mean favorability into a rough count of
// useful starts over a short pickup. It is a heuristic, not a fitted projection.
const streamHorizonGames = 3

// AnalyticsService derives per-game and streaming metrics for one refresh.
type AnalyticsService struct {
	engine  *scoring.Engine
	weights schedule.WeekdayWeights
}

// NewAnalyticsService binds a scoring engine to the weekday weights in effect.
func NewAnalyticsService(engine *scoring.Engine, weights schedule.WeekdayWeights) *AnalyticsService {
	return &AnalyticsService{engine: engine, weights: weights}
}

// TotalPoints is the player's fantasy point total for the selected window.
func (s *AnalyticsService) TotalPoints(p league.Player) float64 {
	return s.engine.FantasyPoints(p)
}

// GamesPlayed reads GP from the selected window, zero when absent.
func (s *AnalyticsService) GamesPlayed(p league.Player) float64 {
	return s.engine.Stats(p).GamesPlayed()
}

// AvgPoints is fantasy points per game played, rounded to 2 decimals.
func (s *AnalyticsService) AvgPoints(p league.Player) float64 {
	return scoring.Round(safeDiv(s.TotalPoints(p), s.GamesPlayed(p)), 2)
}

// StreamScore weights the per-game rate by how favorable this week's schedule is.
func (s *AnalyticsService) StreamScore(p league.Player) float64 {
	return scoring.Round(s.AvgPoints(p)*s.weights.Mean()*streamHorizonGames, 2)
}

// MeanWeight exposes the weekly favorability used by StreamScore.
func (s *AnalyticsService) MeanWeight() float64 {
	return s.weights.Mean()
}

// safeDiv performs division with zero check
func safeDiv(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return numerator / denominator
}
