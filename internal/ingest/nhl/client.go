package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/fortuna/warroom/internal/schedule"
)

const (
	BaseURL   = "https://api-web.nhle.com"
	dateFmt   = "2006-01-02"
	userAgent = "warroom/1.0"
)

// Client fetches the league-wide game week from the NHL web API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *logrus.Entry
}

// New creates a schedule client. An empty baseURL uses the public endpoint.
func New(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = BaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	entry := logger.WithField("component", "nhl-client")

	settings := gobreaker.Settings{
		Name:        "nhl-schedule",
		MaxRequests: 1,
		Timeout:     time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			entry.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")
		},
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		breaker:    gobreaker.NewCircuitBreaker(settings),
		logger:     entry,
	}
}

// FetchWeek returns the team schedule for the seven days starting at day.
func (c *Client) FetchWeek(ctx context.Context, day time.Time) (schedule.TeamSchedule, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetchWeek(ctx, day)
	})
	if err != nil {
		return nil, err
	}
	return result.(schedule.TeamSchedule), nil
}

// FetchWeekOrEmpty swallows any failure and returns an empty schedule, which
// callers must read as "schedule unavailable".
func (c *Client) FetchWeekOrEmpty(ctx context.Context, day time.Time) schedule.TeamSchedule {
	ts, err := c.FetchWeek(ctx, day)
	if err != nil {
		c.logger.WithError(err).Warn("Schedule unavailable")
		return schedule.TeamSchedule{}
	}
	return ts
}

func (c *Client) fetchWeek(ctx context.Context, day time.Time) (schedule.TeamSchedule, error) {
	url := fmt.Sprintf("%s/v1/schedule/%s", c.baseURL, day.Format(dateFmt))

	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	var resp ScheduleResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding schedule: %w", err)
	}

	ts, err := Normalize(resp)
	if err != nil {
		return nil, err
	}

	c.logger.WithFields(logrus.Fields{
		"start": day.Format(dateFmt),
		"teams": len(ts),
	}).Debug("Fetched game week")
	return ts, nil
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s failed: %d body=%s", url, resp.StatusCode, string(body[:min(len(body), 200)]))
	}
	return body, nil
}

// Normalize converts a game week into a team -> weekday set mapping. Days
// past the seventh are ignored so weekdays never wrap.
func Normalize(resp ScheduleResponse) (schedule.TeamSchedule, error) {
	ts := schedule.TeamSchedule{}
	for i, gd := range resp.GameWeek {
		if i >= len(schedule.Weekdays) {
			break
		}
		date, err := time.Parse(dateFmt, gd.Date)
		if err != nil {
			return nil, fmt.Errorf("parsing game date %q: %w", gd.Date, err)
		}
		day := schedule.WeekdayOf(date)

		for _, g := range gd.Games {
			if g.AwayTeam.Abbrev != "" {
				ts.Add(g.AwayTeam.Abbrev, day)
			}
			if g.HomeTeam.Abbrev != "" {
				ts.Add(g.HomeTeam.Abbrev, day)
			}
		}
	}
	return ts, nil
}
