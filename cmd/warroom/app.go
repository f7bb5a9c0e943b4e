package main

import (
	"github.com/sirupsen/logrus"

	"github.com/fortuna/warroom/internal/config"
	"github.com/fortuna/warroom/internal/ingest/espn"
	"github.com/fortuna/warroom/internal/ingest/nhl"
	"github.com/fortuna/warroom/internal/league"
	"github.com/fortuna/warroom/internal/logging"
	"github.com/fortuna/warroom/internal/publisher"
	"github.com/fortuna/warroom/internal/scoring"
	"github.com/fortuna/warroom/internal/service"
)

// app holds the wired dependencies shared by every command.
type app struct {
	dashboard *service.DashboardService
	teams     *league.Directory
	closers   []func() error
}

func newApp(cfg *config.Config, logger *logrus.Logger, withPublisher bool) *app {
	teams := league.DefaultDirectory()

	espnClient := espn.New(espn.Options{
		BaseURL:  cfg.ESPNAPIBase,
		LeagueID: cfg.LeagueID,
		Season:   cfg.SeasonYear,
		TeamID:   cfg.TeamID,
		Credentials: espn.Credentials{
			ESPNS2: cfg.ESPNS2,
			SWID:   cfg.SWID,
		},
		FreeAgentLimit: cfg.FreeAgentPoolSize,
		RatePerSecond:  cfg.ESPNRateLimit,
		Timeout:        cfg.HTTPTimeout,
	}, logger)
	if !cfg.HasCredentials() {
		logger.Warn("ESPN_S2/SWID not set, only public leagues will load")
	}

	nhlClient := nhl.New(cfg.NHLAPIBase, cfg.HTTPTimeout, logger)

	a := &app{teams: teams}
	dashCfg := service.DashboardConfig{Limits: league.DefaultRosterLimits()}

	if withPublisher && cfg.RedisURL != "" {
		pub, err := publisher.NewRedisPublisher(cfg.RedisURL)
		if err != nil {
			logger.WithError(err).Warn("Redis publisher unavailable, refresh events disabled")
		} else {
			logger.WithField("stream", publisher.DashboardStream).Info("✓ Redis publisher initialized")
			dashCfg.Publisher = pub
			a.closers = append(a.closers, pub.Close)
		}
	}

	engine := scoring.NewDefaultEngine(cfg.SeasonYear)
	logging.WithComponent(logger, "scoring").WithFields(logrus.Fields{
		"skater_rules": engine.Rules(league.PositionCenter).Name(),
		"goalie_rules": engine.Rules(league.PositionGoalie).Name(),
		"windows":      engine.Windows().String(),
	}).Debug("Scoring engine ready")

	a.dashboard = service.NewDashboardService(espnClient, nhlClient, engine, dashCfg, logger)
	return a
}

func (a *app) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			logger.WithError(err).Warn("Close failed")
		}
	}
}
