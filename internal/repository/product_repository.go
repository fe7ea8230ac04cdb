package repository

import (
	"context"

	"shop-backend/internal/domain"
)

type ProductSearchQuery struct {
	Name     string
	Category string
	PriceMin *float64
	PriceMax *float64
	StockMin *int
	StockMax *int
	Page     int
	Limit    int
}

type ProductPage struct {
	Products   []domain.Product `json:"products"`
	Page       int              `json:"page"`
	PerPage    int              `json:"perPage"`
	Count      int              `json:"count"`
	Total      int64            `json:"total"`
	TotalPages int              `json:"totalPages"`
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, q ProductSearchQuery) (*ProductPage, error)
}
