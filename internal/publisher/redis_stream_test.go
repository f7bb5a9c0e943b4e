package publisher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEvent(t *testing.T) {
	at := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	values, err := encodeEvent(map[string]interface{}{"team_name": "Ice Room", "roster_size": 2}, at)
	require.NoError(t, err)

	assert.JSONEq(t, `{"team_name":"Ice Room","roster_size":2}`, values["data"].(string))
	assert.Equal(t, at.Unix(), values["timestamp"])
}

func TestEncodeEventRejectsUnencodable(t *testing.T) {
	_, err := encodeEvent(map[string]interface{}{"bad": make(chan int)}, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoding event")
}

func TestNewRedisPublisherBadURL(t *testing.T) {
	_, err := NewRedisPublisher("not-a-redis-url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing redis url")
}
