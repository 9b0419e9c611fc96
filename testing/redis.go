package testing

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrTestRedisUnavailable is returned when TEST_REDIS_URL is not set or the server cannot be reached
var ErrTestRedisUnavailable = errors.New("test redis unavailable")

// TestRedis is a client plus a key prefix private to one test
type TestRedis struct {
	Client *redis.Client
	Prefix string
}

// SetupTestRedis connects to TEST_REDIS_URL and picks a unique key prefix
func SetupTestRedis() (*TestRedis, error) {
	rawURL := getEnv("TEST_REDIS_URL", "")
	if rawURL == "" {
		return nil, ErrTestRedisUnavailable
	}
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid TEST_REDIS_URL: %w", err)
	}
	rc := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rc.Ping(ctx).Err(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("%w: %v", ErrTestRedisUnavailable, err)
	}

	return &TestRedis{
		Client: rc,
		Prefix: fmt.Sprintf("linkbio_test:%d:%d:", time.Now().UnixNano(), rand.Intn(10000)),
	}, nil
}

// Teardown deletes every key under the test prefix and closes the client
func (tr *TestRedis) Teardown() error {
	ctx := context.Background()
	iter := tr.Client.Scan(ctx, 0, tr.Prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		_ = tr.Client.Close()
		return err
	}
	if len(keys) > 0 {
		if err := tr.Client.Del(ctx, keys...).Err(); err != nil {
			_ = tr.Client.Close()
			return err
		}
	}
	return tr.Client.Close()
}
