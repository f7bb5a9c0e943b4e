package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DashboardStream receives one entry per completed dashboard refresh.
const DashboardStream = "warroom.dashboard.refreshed"

// streamMaxLen caps the stream; trimming is approximate.
const streamMaxLen = 1000

// RedisPublisher publishes events to Redis streams
type RedisPublisher struct {
	client *redis.Client
	stream string
	now    func() time.Time
}

// NewRedisStreamPublisher creates a publisher from an existing client
func NewRedisStreamPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		client: client,
		stream: DashboardStream,
		now:    time.Now,
	}
}

// NewRedisPublisher connects to redisURL and verifies the connection
func NewRedisPublisher(redisURL string) (*RedisPublisher, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return NewRedisStreamPublisher(client), nil
}

// Close closes the Redis connection
func (rp *RedisPublisher) Close() error {
	return rp.client.Close()
}

// PublishDashboardRefresh appends a refresh summary to the dashboard stream
func (rp *RedisPublisher) PublishDashboardRefresh(ctx context.Context, event interface{}) error {
	values, err := encodeEvent(event, rp.now())
	if err != nil {
		return err
	}

	return rp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: rp.stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: values,
	}).Err()
}

func encodeEvent(event interface{}, at time.Time) (map[string]interface{}, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("encoding event: %w", err)
	}
	return map[string]interface{}{
		"data":      string(data),
		"timestamp": at.Unix(),
	}, nil
}
