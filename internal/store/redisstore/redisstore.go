package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces board keys inside a shared Redis.
const KeyPrefix = "tada:"

type Options struct {
	Addr     string
	Password string
	DB       int
}

// Store keeps each snapshot as a plain Redis string without expiry.
type Store struct {
	redis *redis.Client
}

// New connects and pings so a bad address fails at startup rather than
// on the first save.
func New(ctx context.Context, opt Options) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opt.Addr,
		Password: opt.Password,
		DB:       opt.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opt.Addr, err)
	}
	return &Store{redis: client}, nil
}

// NewWithClient wraps an existing client; the caller keeps ownership.
func NewWithClient(client *redis.Client) *Store {
	if client == nil {
		panic("redisstore.NewWithClient: client is nil")
	}
	return &Store{redis: client}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.redis.Get(ctx, KeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return data, true, nil
}

func (s *Store) Put(ctx context.Context, key string, blob []byte) error {
	if err := s.redis.Set(ctx, KeyPrefix+key, blob, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return s.redis.Close() }
