package repository

import (
	"context"
	"time"

	"shop-backend/internal/domain"
)

// OrderSearchQuery filters are conjunctive; a zero-value field imposes no
// constraint. An empty BuyerID means all buyers (administrative view).
type OrderSearchQuery struct {
	BuyerID string
	Status  domain.OrderStatus
	From    *time.Time
	To      *time.Time
	Page    int
	Limit   int
}

type OrderPage struct {
	Orders     []domain.Order `json:"orders"`
	Page       int            `json:"page"`
	PerPage    int            `json:"perPage"`
	Count      int            `json:"count"`
	Total      int64          `json:"total"`
	TotalPages int            `json:"totalPages"`
}

type OrderRepository interface {
	// PlaceOrder runs the whole settlement in one transaction: a conditional
	// stock decrement for every line, then the order row, then its items.
	// On any failure nothing persists. order.Items must be populated.
	PlaceOrder(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	Search(ctx context.Context, q OrderSearchQuery) (*OrderPage, error)
}
