// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/danielhkuo/quickly-vote/models"
)

// RedisQueue appends votes to a Redis list with RPUSH.
// The underlying client is pooled and safe for concurrent use.
type RedisQueue struct {
	client *redis.Client
	key    string
	target string
}

// RedisOptions configures NewRedisQueue
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Key      string
	// Timeout bounds dialing, reads and writes
	Timeout time.Duration
}

// NewRedisQueue creates a queue backed by the Redis list opts.Key.
// No connection is made until the first command.
func NewRedisQueue(opts RedisOptions) *RedisQueue {
	rdb := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  opts.Timeout,
		ReadTimeout:  opts.Timeout,
		WriteTimeout: opts.Timeout,
		PoolTimeout:  opts.Timeout,
		MaxRetries:   -1, // callers own retries; none for votes

		// Append gives up at the caller's deadline, not only at ours
		ContextTimeoutEnabled: true,
	})
	return &RedisQueue{
		client: rdb,
		key:    opts.Key,
		target: fmt.Sprintf("redis://%s/%d#%s", opts.Addr, opts.DB, opts.Key),
	}
}

// Append RPUSHes the JSON-encoded event
func (q *RedisQueue) Append(ctx context.Context, event models.VoteEvent) error {
	payload, err := Encode(event)
	if err != nil {
		return &AppendError{Target: q.target, Err: err}
	}
	if err := q.client.RPush(ctx, q.key, payload).Err(); err != nil {
		return &AppendError{Target: q.target, Err: err}
	}
	return nil
}

func (q *RedisQueue) Target() string {
	return q.target
}

// Ping checks the server is reachable
func (q *RedisQueue) Ping(ctx context.Context) error {
	if err := q.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (q *RedisQueue) Close() error {
	return q.client.Close()
}
