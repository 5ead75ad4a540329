// Package redis stores users of the development user service in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"myuserapp/domain"
	"myuserapp/helpers"

	"github.com/go-redis/redis/v8"
)

// DefaultKeyPrefix is the key prefix used when NewUserStore is given an empty prefix.
const DefaultKeyPrefix = "myuserapp"

// userStore implements interfaces.UserStore. Keys: {prefix}:user:{id} holds the JSON user,
// {prefix}:users is a sorted set of ids scored by creation sequence, {prefix}:seq is the sequence counter.
type userStore struct {
	client redis.UniversalClient
	prefix string
}

// NewUserStore creates a Redis backed user store. Panics on nil client.
//
// Parameters: client - redis client; prefix - key prefix (empty selects DefaultKeyPrefix).
//
// Called from cmd/userserver when REDIS_ADDR is set.
func NewUserStore(client redis.UniversalClient, prefix string) *userStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &userStore{
		client: helpers.NilPanic(client, "adapters.redis.user_store.go: client is required"),
		prefix: prefix,
	}
}

func (s *userStore) userKey(id string) string { return s.prefix + ":user:" + id }

func (s *userStore) orderKey() string { return s.prefix + ":users" }

func (s *userStore) seqKey() string { return s.prefix + ":seq" }

// Save writes u and records its creation order. Saving an existing id overwrites the value and keeps the order.
func (s *userStore) Save(ctx context.Context, u domain.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	seq, err := s.client.Incr(ctx, s.seqKey()).Result()
	if err != nil {
		return fmt.Errorf("failed to allocate user sequence in redis: %w", err)
	}
	_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, s.userKey(u.ID), data, 0)
		p.ZAddNX(ctx, s.orderKey(), &redis.Z{Score: float64(seq), Member: u.ID})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save user to redis: %w", err)
	}
	return nil
}

// Get returns the user stored under id, or domain.ErrUserNotFound.
func (s *userStore) Get(ctx context.Context, id string) (domain.User, error) {
	data, err := s.client.Get(ctx, s.userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.User{}, fmt.Errorf("user %s: %w", id, domain.ErrUserNotFound)
		}
		return domain.User{}, fmt.Errorf("failed to get user from redis: %w", err)
	}

	var v domain.User
	if err := json.Unmarshal(data, &v); err != nil {
		return domain.User{}, fmt.Errorf("failed to unmarshal user from redis: %w", err)
	}
	return v, nil
}

// First returns the earliest saved user. ok is false when the store is empty.
func (s *userStore) First(ctx context.Context) (domain.User, bool, error) {
	ids, err := s.client.ZRange(ctx, s.orderKey(), 0, 0).Result()
	if err != nil {
		return domain.User{}, false, fmt.Errorf("failed to read user order from redis: %w", err)
	}
	if len(ids) == 0 {
		return domain.User{}, false, nil
	}
	u, err := s.Get(ctx, ids[0])
	if err != nil {
		return domain.User{}, false, err
	}
	return u, true, nil
}
