// Package redis stores client slots as one Redis hash per client.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"edu-finder-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL expires idle clients. Every write refreshes it.
const DefaultTTL = 90 * 24 * time.Hour

type slotRepo struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSlotRepository(client *redis.Client, ttl time.Duration) domain.SlotStore {
	return &slotRepo{client: client, ttl: ttl}
}

func key(clientID string) string {
	return "slots:" + clientID
}

func (r *slotRepo) Get(ctx context.Context, clientID, slot string) ([]byte, error) {
	value, err := r.client.HGet(ctx, key(clientID), slot).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}
	return value, nil
}

func (r *slotRepo) Put(ctx context.Context, clientID, slot string, value []byte) error {
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key(clientID), slot, value)
	if r.ttl > 0 {
		pipe.Expire(ctx, key(clientID), r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("put slot: %w", err)
	}
	return nil
}

func (r *slotRepo) Delete(ctx context.Context, clientID, slot string) error {
	if err := r.client.HDel(ctx, key(clientID), slot).Err(); err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}
	return nil
}

func (r *slotRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
