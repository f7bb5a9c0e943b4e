package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fortuna/warroom/internal/config"
	"github.com/fortuna/warroom/internal/logging"
)

const (
	serviceName    = "warroom"
	serviceVersion = "1.0.0"
)

var (
	cfg      *config.Config
	logger   *logrus.Logger
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:     serviceName,
	Short:   "Fantasy hockey streaming dashboard",
	Version: serviceVersion,
	Long: `warroom pulls an ESPN fantasy hockey roster and free-agent pool plus the
NHL schedule for the next seven days, then ranks streaming pickups by
points per game weighted by how crowded each night is.

Configuration is read from the environment or a .env file:
  LEAGUE_ID, SEASON_YEAR, TEAM_ID, ESPN_S2, SWID, REDIS_URL, ...`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		if logLevel != "" {
			loaded.LogLevel = logLevel
		}
		cfg = loaded

		format := cfg.LogFormat
		if cfg.IsProduction() {
			format = "json"
		}
		logger = logging.New(cfg.LogLevel, format, os.Stderr)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override LOG_LEVEL")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(reportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
