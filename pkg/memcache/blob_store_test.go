package mem

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewBlobs()

	_, ok, err := s.Get(ctx, "json/provinces.json")
	require.NoError(t, err)
	assert.False(t, ok)

	in := []byte(`{"provinces":[]}`)
	require.NoError(t, s.Set(ctx, "json/provinces.json", in, 0))
	in[0] = 'X'

	got, ok, err := s.Get(ctx, "json/provinces.json")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"provinces":[]}`, string(got), "stored bytes are copied")
}

func TestBlobsExpire(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewBlobs()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))

	now = now.Add(30 * time.Second)
	_, ok, _ := s.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok, _ = s.Get(ctx, "k")
	assert.False(t, ok)
	assert.Empty(t, s.data)
}

func TestRedisBlobsReportsErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	defer client.Close()
	s := NewRedisBlobs(client, "test:")

	_, ok, err := s.Get(context.Background(), "k")
	assert.Error(t, err, "an unreachable server is not a cache miss")
	assert.False(t, ok)
	assert.Error(t, s.Set(context.Background(), "k", []byte("v"), time.Minute))
}
