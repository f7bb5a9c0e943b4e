package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/fortuna/warroom/internal/league"
)

const (
	BaseURL = "https://lm-api-reads.fantasy.espn.com"

	// DefaultFreeAgentPool bounds the free-agent request.
	DefaultFreeAgentPool = 40

	userAgent = "warroom/1.0"
)

// Credentials are the private-league session cookies. They are passed through as-is.
type Credentials struct {
	ESPNS2 string
	SWID   string
}

// Options configures a league client.
type Options struct {
	BaseURL        string
	LeagueID       int
	Season         int
	TeamID         int
	Credentials    Credentials
	FreeAgentLimit int
	RatePerSecond  float64
	Timeout        time.Duration
}

// Client reads one fantasy hockey league from the ESPN fantasy API.
type Client struct {
	baseURL     string
	opts        Options
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	teams       *league.Directory
	logger      *logrus.Entry
}

// New creates a league client. Zero-valued options get defaults.
func New(opts Options, logger *logrus.Logger) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = BaseURL
	}
	if opts.FreeAgentLimit <= 0 {
		opts.FreeAgentLimit = DefaultFreeAgentPool
	}
	if opts.RatePerSecond <= 0 {
		opts.RatePerSecond = 2
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 20 * time.Second
	}

	entry := logger.WithField("component", "espn-client")
	entry.WithFields(logrus.Fields{
		"base_url":  baseURL,
		"league_id": opts.LeagueID,
		"season":    opts.Season,
	}).Debug("ESPN client created")

	return &Client{
		baseURL:     baseURL,
		opts:        opts,
		httpClient:  &http.Client{Timeout: opts.Timeout},
		rateLimiter: rate.NewLimiter(rate.Limit(opts.RatePerSecond), 1),
		teams:       league.DefaultDirectory(),
		logger:      entry,
	}
}

// FetchLeague returns the configured team's roster and the free-agent pool.
func (c *Client) FetchLeague(ctx context.Context) (*league.Snapshot, error) {
	lr, err := c.FetchLeagueView(ctx)
	if err != nil {
		return nil, err
	}

	freeAgents, err := c.FetchFreeAgents(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := BuildSnapshot(lr, c.opts.TeamID, freeAgents, c.teams)
	if err != nil {
		return nil, err
	}

	c.logger.WithFields(logrus.Fields{
		"team":        snap.TeamName,
		"roster":      len(snap.Roster),
		"free_agents": len(snap.FreeAgents),
	}).Info("Fetched league snapshot")
	return snap, nil
}

// FetchLeagueView reads teams, rosters and settings.
func (c *Client) FetchLeagueView(ctx context.Context) (*LeagueResponse, error) {
	url := c.leagueURL() + "?view=mTeam&view=mRoster&view=mSettings"

	var lr LeagueResponse
	if err := c.fetch(ctx, url, nil, &lr); err != nil {
		return nil, fmt.Errorf("fetching league: %w", err)
	}
	return &lr, nil
}

// FetchFreeAgents reads unowned players, most-owned first.
func (c *Client) FetchFreeAgents(ctx context.Context) ([]PlayerPoolEntry, error) {
	filter, err := freeAgentFilter(c.opts.FreeAgentLimit)
	if err != nil {
		return nil, err
	}
	url := c.leagueURL() + "?view=kona_player_info"

	var resp PlayerCardResponse
	if err := c.fetch(ctx, url, map[string]string{"X-Fantasy-Filter": filter}, &resp); err != nil {
		return nil, fmt.Errorf("fetching free agents: %w", err)
	}
	if len(resp.Players) > c.opts.FreeAgentLimit {
		resp.Players = resp.Players[:c.opts.FreeAgentLimit]
	}
	return resp.Players, nil
}

func (c *Client) leagueURL() string {
	return fmt.Sprintf("%s/apis/v3/games/fhl/seasons/%d/segments/0/leagues/%d",
		c.baseURL, c.opts.Season, c.opts.LeagueID)
}

func freeAgentFilter(limit int) (string, error) {
	filter := map[string]interface{}{
		"players": map[string]interface{}{
			"filterStatus": map[string]interface{}{
				"value": []string{"FREEAGENT", "WAIVERS"},
			},
			"limit": limit,
			"sortPercOwned": map[string]interface{}{
				"sortAsc":      false,
				"sortPriority": 1,
			},
		},
	}
	b, err := json.Marshal(filter)
	if err != nil {
		return "", fmt.Errorf("encoding free agent filter: %w", err)
	}
	return string(b), nil
}

// fetch makes a rate-limited GET and decodes the JSON body into out.
func (c *Client) fetch(ctx context.Context, url string, headers map[string]string, out interface{}) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if c.opts.Credentials.ESPNS2 != "" {
		req.AddCookie(&http.Cookie{Name: "espn_s2", Value: c.opts.Credentials.ESPNS2})
	}
	if c.opts.Credentials.SWID != "" {
		req.AddCookie(&http.Cookie{Name: "SWID", Value: c.opts.Credentials.SWID})
	}

	c.logger.WithField("url", url).Debug("GET")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("GET %s failed: %d body=%s", url, resp.StatusCode, string(body[:min(len(body), 200)]))
	}

	// ESPN answers expired cookies with an HTML login page and a 200.
	if len(body) > 0 && body[0] == '<' {
		return fmt.Errorf("ESPN returned HTML page: %s", string(body[:min(len(body), 200)]))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w (body: %s)", err, string(body[:min(len(body), 200)]))
	}
	return nil
}
