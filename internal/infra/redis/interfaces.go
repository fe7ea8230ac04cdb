package redis

import (
	"context"

	"shop-backend/internal/domain"
)

type CartStoreInterface interface {
	Get(ctx context.Context, key string) ([]domain.CartItem, error)
	Set(ctx context.Context, key string, items []domain.CartItem) ([]domain.CartItem, error)
	Clear(ctx context.Context, key string) error
}

var _ CartStoreInterface = (*CartStore)(nil)
