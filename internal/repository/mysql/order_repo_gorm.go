package mysql

import (
	"context"
	"errors"
	"fmt"
	"math"

	"shop-backend/internal/domain"
	"shop-backend/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

// PlaceOrder decrements stock and inserts the order with its items as one
// transaction. The decrement is conditional (stock >= quantity in the WHERE
// clause), so two placements racing on the same product cannot both win the
// last units: the losing UPDATE matches zero rows and the whole transaction
// rolls back.
func (r *orderRepo) PlaceOrder(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range order.Items {
			item := &order.Items[i]

			res := tx.Model(&domain.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return fmt.Errorf("decrement stock for product %s: %w", item.ProductID, res.Error)
			}
			if res.RowsAffected == 0 {
				// Zero rows means either the product is gone or the stock is
				// short. Re-read inside the transaction to tell them apart.
				var p domain.Product
				if err := tx.Select("id", "name", "stock").First(&p, "id = ?", item.ProductID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return fmt.Errorf("product %s: %w", item.ProductID, domain.ErrProductNotFound)
					}
					return fmt.Errorf("read product %s: %w", item.ProductID, err)
				}
				return &domain.InsufficientStockError{
					ProductID:   p.ID,
					ProductName: p.Name,
					Available:   p.Stock,
					Requested:   item.Quantity,
				}
			}
		}

		// Creating the order also creates its items through the association.
		if err := tx.Create(order).Error; err != nil {
			log.Error().Err(err).Str("buyer_id", order.BuyerID).Msg("insert order failed, rolling back")
			return fmt.Errorf("insert order: %w", err)
		}
		return nil
	})
}

func (r *orderRepo) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&o, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order %s: %w", id, err)
	}
	return &o, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update order %s status: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		// MySQL reports zero affected rows both for a missing order and for
		// a no-op write of the same status; only the former is an error.
		var count int64
		if err := r.db.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("check order %s: %w", id, err)
		}
		if count == 0 {
			return domain.ErrOrderNotFound
		}
	}
	return nil
}

func (r *orderRepo) Search(ctx context.Context, q repository.OrderSearchQuery) (*repository.OrderPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 20
	}

	query := r.db.WithContext(ctx).Model(&domain.Order{})
	if q.BuyerID != "" {
		query = query.Where("buyer_id = ?", q.BuyerID)
	}
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.From != nil {
		query = query.Where("created_at >= ?", *q.From)
	}
	if q.To != nil {
		query = query.Where("created_at <= ?", *q.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	var orders []domain.Order
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("search orders: %w", err)
	}

	return &repository.OrderPage{
		Orders:     orders,
		Page:       page,
		PerPage:    limit,
		Count:      len(orders),
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}
