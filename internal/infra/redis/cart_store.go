package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"shop-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "cart-"

// CartStore keeps each buyer's in-progress cart as a JSON value in redis.
// A cart key is owned by exactly one buyer, so no locking is needed here.
type CartStore struct {
	rdb *redis.Client
}

func NewCartStore(rdb *redis.Client) *CartStore {
	return &CartStore{rdb: rdb}
}

func (s *CartStore) Get(ctx context.Context, key string) ([]domain.CartItem, error) {
	data, err := s.rdb.Get(ctx, cartKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart %s: %w", key, err)
	}

	var items []domain.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode cart %s: %w", key, err)
	}
	return items, nil
}

// Set merges the incoming items into the stored cart (deduplicating by
// product id, summing quantities) and returns the merged result.
func (s *CartStore) Set(ctx context.Context, key string, items []domain.CartItem) ([]domain.CartItem, error) {
	current, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	merged := domain.MergeCarts(current, items)

	data, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("encode cart %s: %w", key, err)
	}
	if err := s.rdb.Set(ctx, cartKeyPrefix+key, data, 0).Err(); err != nil {
		return nil, fmt.Errorf("set cart %s: %w", key, err)
	}
	return merged, nil
}

// Clear is idempotent: deleting an absent cart is not an error.
func (s *CartStore) Clear(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, cartKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("clear cart %s: %w", key, err)
	}
	return nil
}
