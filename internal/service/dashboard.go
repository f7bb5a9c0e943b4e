package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fortuna/warroom/internal/league"
	"github.com/fortuna/warroom/internal/schedule"
	"github.com/fortuna/warroom/internal/scoring"
)

// LeagueSource supplies the configured team's roster and the free-agent pool.
type LeagueSource interface {
	FetchLeague(ctx context.Context) (*league.Snapshot, error)
}

// ScheduleSource supplies the seven-day team schedule starting at day.
type ScheduleSource interface {
	FetchWeek(ctx context.Context, day time.Time) (schedule.TeamSchedule, error)
}

// RefreshPublisher announces completed refreshes. Optional.
type RefreshPublisher interface {
	PublishDashboardRefresh(ctx context.Context, event interface{}) error
}

// Source states reported with every dashboard.
const (
	SourceOK          = "ok"
	SourceUnavailable = "unavailable"
	WeightsDynamic    = "dynamic"
	WeightsStatic     = "static"
)

// DashboardConfig holds the immutable per-process settings.
type DashboardConfig struct {
	Limits    league.RosterLimits
	Location  *time.Location
	Now       func() time.Time
	Publisher RefreshPublisher
}

// DashboardService runs one isolated refresh per call. It holds no state
// between refreshes beyond its configuration.
type DashboardService struct {
	league    LeagueSource
	schedule  ScheduleSource
	engine    *scoring.Engine
	limits    league.RosterLimits
	location  *time.Location
	now       func() time.Time
	publisher RefreshPublisher
	logger    *logrus.Entry
}

// NewDashboardService wires the sources to a scoring engine.
func NewDashboardService(leagueSrc LeagueSource, scheduleSrc ScheduleSource, engine *scoring.Engine, cfg DashboardConfig, logger *logrus.Logger) *DashboardService {
	if cfg.Limits == (league.RosterLimits{}) {
		cfg.Limits = league.DefaultRosterLimits()
	}
	if cfg.Location == nil {
		loc, err := time.LoadLocation("America/New_York")
		if err != nil {
			logger.WithError(err).Warn("Failed to load America/New_York timezone, falling back to UTC")
			loc = time.UTC
		}
		cfg.Location = loc
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &DashboardService{
		league:    leagueSrc,
		schedule:  scheduleSrc,
		engine:    engine,
		limits:    cfg.Limits,
		location:  cfg.Location,
		now:       cfg.Now,
		publisher: cfg.Publisher,
		logger:    logger.WithField("component", "dashboard"),
	}
}

// RefreshOptions are per-request view options.
type RefreshOptions struct {
	GroupByPosition bool
}

// Sources reports which inputs were live for this refresh.
type Sources struct {
	League   string `json:"league"`
	Schedule string `json:"schedule"`
	Weights  string `json:"weights"`
	Note     string `json:"note,omitempty"`
}

// Dashboard is every view for one refresh.
type Dashboard struct {
	GeneratedAt    time.Time            `json:"generated_at"`
	WeekStart      string               `json:"week_start"`
	LeagueName     string               `json:"league_name"`
	TeamName       string               `json:"team_name"`
	Caption        string               `json:"caption"`
	Warnings       []string             `json:"warnings"`
	Sources        Sources              `json:"sources"`
	Weights        []schedule.DayWeight `json:"weights"`
	MeanWeight     float64              `json:"mean_weight"`
	Roster         []RosterRow          `json:"roster"`
	SkaterTargets  []StreamTarget       `json:"skater_targets"`
	GoalieTargets  GoalieTargets        `json:"goalie_targets"`
	WeeklySchedule WeeklySummary        `json:"weekly_schedule"`
	ScheduleMatrix []MatrixRow          `json:"schedule_matrix"`
}

// RefreshEvent is the payload announced after a refresh.
type RefreshEvent struct {
	GeneratedAt   time.Time `json:"generated_at"`
	TeamName      string    `json:"team_name"`
	RosterSize    int       `json:"roster_size"`
	SkaterTargets int       `json:"skater_targets"`
	GoalieTargets int       `json:"goalie_targets"`
	TopSkater     string    `json:"top_skater,omitempty"`
	Schedule      string    `json:"schedule"`
}

// Refresh fetches both sources and builds all views. A league failure aborts
// the refresh; a schedule failure degrades to static weights.
func (s *DashboardService) Refresh(ctx context.Context, opts RefreshOptions) (*Dashboard, error) {
	snap, err := s.FetchLeague(ctx)
	if err != nil {
		return nil, err
	}

	ts, schedErr := s.FetchSchedule(ctx)
	d := s.Build(snap, ts, schedErr, opts)

	if s.publisher != nil {
		if err := s.publisher.PublishDashboardRefresh(ctx, d.Event()); err != nil {
			s.logger.WithError(err).Warn("Failed to publish refresh event")
		}
	}
	return d, nil
}

// FetchLeague wraps provider failures as KindLeagueUnavailable.
func (s *DashboardService) FetchLeague(ctx context.Context) (*league.Snapshot, error) {
	snap, err := s.league.FetchLeague(ctx)
	if err != nil {
		s.logger.WithError(err).Error("League fetch failed")
		return nil, &FetchError{Kind: KindLeagueUnavailable, Op: "fetch league", Err: err}
	}
	return snap, nil
}

// FetchSchedule always returns a usable schedule; on failure it is empty and
// the error is KindScheduleUnavailable.
func (s *DashboardService) FetchSchedule(ctx context.Context) (schedule.TeamSchedule, error) {
	ts, err := s.schedule.FetchWeek(ctx, s.today())
	if err != nil {
		s.logger.WithError(err).Warn("Schedule fetch failed, using static weights")
		return schedule.TeamSchedule{}, &FetchError{Kind: KindScheduleUnavailable, Op: "fetch schedule", Err: err}
	}
	if ts == nil {
		ts = schedule.TeamSchedule{}
	}
	return ts, nil
}

// Build computes every view from already-fetched inputs.
func (s *DashboardService) Build(snap *league.Snapshot, ts schedule.TeamSchedule, scheduleErr error, opts RefreshOptions) *Dashboard {
	weights := schedule.WeightsFor(ts)
	analytics := NewAnalyticsService(s.engine, weights.Table)
	goalies := snap.GoalieCount()

	d := &Dashboard{
		GeneratedAt:    s.now(),
		WeekStart:      s.today().Format("2006-01-02"),
		LeagueName:     snap.LeagueName,
		TeamName:       snap.TeamName,
		Caption:        RosterCaption(snap, s.limits),
		Warnings:       []string{},
		Sources:        Sources{League: SourceOK, Schedule: SourceOK, Weights: WeightsDynamic},
		Weights:        weights.Rows(ts),
		MeanWeight:     scoring.Round(analytics.MeanWeight(), 3),
		Roster:         BuildRosterView(snap.Roster, analytics, opts.GroupByPosition),
		SkaterTargets:  BuildSkaterTargets(snap.FreeAgents, analytics, ts),
		GoalieTargets:  BuildGoalieTargets(snap.FreeAgents, analytics, ts, goalies, s.limits),
		WeeklySchedule: BuildWeeklySummary(snap.Roster, ts),
		ScheduleMatrix: BuildScheduleMatrix(snap.Roster, snap.FreeAgents, ts),
	}

	if scheduleErr != nil {
		d.Sources.Schedule = SourceUnavailable
		d.Sources.Note = Banner(scheduleErr)
	} else if ts.Empty() {
		d.Sources.Schedule = SourceUnavailable
		d.Sources.Note = "No games returned for this week"
	}
	if weights.Fallback {
		d.Sources.Weights = WeightsStatic
	}
	if goalies >= s.limits.MaxGoalies {
		d.Warnings = append(d.Warnings, fmt.Sprintf("Max goalies reached (%d).", goalies))
	}
	return d
}

// Event summarizes the dashboard for the refresh publisher.
func (d *Dashboard) Event() RefreshEvent {
	ev := RefreshEvent{
		GeneratedAt:   d.GeneratedAt,
		TeamName:      d.TeamName,
		RosterSize:    len(d.Roster),
		SkaterTargets: len(d.SkaterTargets),
		GoalieTargets: len(d.GoalieTargets.Targets),
		Schedule:      d.Sources.Schedule,
	}
	if len(d.SkaterTargets) > 0 {
		ev.TopSkater = d.SkaterTargets[0].Player
	}
	return ev
}

func (s *DashboardService) today() time.Time {
	now := s.now().In(s.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
}
