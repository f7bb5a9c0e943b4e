package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// League
	LeagueID   int `mapstructure:"LEAGUE_ID"`
	SeasonYear int `mapstructure:"SEASON_YEAR"`
	TeamID     int `mapstructure:"TEAM_ID"`

	// ESPN private-league cookies
	ESPNS2 string `mapstructure:"ESPN_S2"`
	SWID   string `mapstructure:"SWID"`

	// External APIs
	ESPNAPIBase       string        `mapstructure:"ESPN_API_BASE"`
	NHLAPIBase        string        `mapstructure:"NHL_API_BASE"`
	FreeAgentPoolSize int           `mapstructure:"FREE_AGENT_POOL_SIZE"`
	ESPNRateLimit     float64       `mapstructure:"ESPN_RATE_LIMIT"`
	HTTPTimeout       time.Duration `mapstructure:"HTTP_TIMEOUT"`

	// Server
	RESTPort string `mapstructure:"REST_PORT"`
	WSPort   string `mapstructure:"WS_PORT"`
	RedisURL string `mapstructure:"REDIS_URL"`

	// Logging
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
	Env       string `mapstructure:"ENV"`
}

var keys = map[string]interface{}{
	"LEAGUE_ID":            0,
	"SEASON_YEAR":          0,
	"TEAM_ID":              1,
	"ESPN_S2":              "",
	"SWID":                 "",
	"ESPN_API_BASE":        "https://lm-api-reads.fantasy.espn.com",
	"NHL_API_BASE":         "https://api-web.nhle.com",
	"FREE_AGENT_POOL_SIZE": 40,
	"ESPN_RATE_LIMIT":      2,
	"HTTP_TIMEOUT":         "15s",
	"REST_PORT":            "8080",
	"WS_PORT":              "8081",
	"REDIS_URL":            "",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "text",
	"ENV":                  "development",
}

// Load reads environment variables, then an optional .env in the working
// directory or its parent.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	for key, def := range keys {
		v.SetDefault(key, def)
	}

	// Read from environment
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations that cannot address a league.
func (c *Config) Validate() error {
	var errs []error
	if c.LeagueID <= 0 {
		errs = append(errs, errors.New("LEAGUE_ID is required"))
	}
	if c.SeasonYear <= 0 {
		errs = append(errs, errors.New("SEASON_YEAR is required"))
	}
	if c.TeamID <= 0 {
		errs = append(errs, errors.New("TEAM_ID must be positive"))
	}
	if c.FreeAgentPoolSize <= 0 {
		errs = append(errs, errors.New("FREE_AGENT_POOL_SIZE must be positive"))
	}
	if c.ESPNRateLimit <= 0 {
		errs = append(errs, errors.New("ESPN_RATE_LIMIT must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// HasCredentials reports whether private-league cookies are configured.
func (c *Config) HasCredentials() bool {
	return c.ESPNS2 != "" && c.SWID != ""
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
