package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore returns a Store backed by Redis so sessions survive process
// restarts and can be shared across instances.
func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func redisKey(token string) string { return "burger:session:" + token }

func (s *redisStore) Create(ctx context.Context, data Data) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	if err := s.client.Set(ctx, redisKey(token), payload, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *redisStore) Get(ctx context.Context, token string) (Data, error) {
	payload, err := s.client.Get(ctx, redisKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Data{}, ErrSessionNotFound
		}
		return Data{}, err
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return Data{}, err
	}
	return data, nil
}

func (s *redisStore) Destroy(ctx context.Context, token string) error {
	return s.client.Del(ctx, redisKey(token)).Err()
}
