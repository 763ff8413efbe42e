package binding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blight/internal/lists"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the bindings in one hash per DM channel, so they
// survive restarts
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to the provided redis url
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisStoreWithClient(client), nil
}

func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "blight:binding:"}
}

func (s *RedisStore) key(channelID string) string {
	return s.prefix + channelID
}

func (s *RedisStore) Get(ctx context.Context, channelID string, kind lists.Kind) (string, bool, error) {
	messageID, err := s.client.HGet(ctx, s.key(channelID), string(kind)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get binding: %w", err)
	}
	return messageID, true, nil
}

func (s *RedisStore) Set(ctx context.Context, channelID string, kind lists.Kind, messageID string) error {
	if err := s.client.HSet(ctx, s.key(channelID), string(kind), messageID).Err(); err != nil {
		return fmt.Errorf("set binding: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
