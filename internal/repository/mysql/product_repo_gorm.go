package mysql

import (
	"context"
	"errors"
	"fmt"
	"math"

	"shop-backend/internal/domain"
	"shop-backend/internal/repository"

	"gorm.io/gorm"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *domain.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *productRepo) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, domain.ErrProductNotFound)
		}
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}
	return &p, nil
}

func (r *productRepo) Update(ctx context.Context, product *domain.Product) error {
	// Select the columns explicitly so zero values (stock 0, empty
	// description) are written too; struct-based Updates would skip them.
	res := r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("id = ?", product.ID).
		Select("name", "description", "category", "price", "stock", "image_url").
		Updates(product)
	if res.Error != nil {
		return fmt.Errorf("update product %s: %w", product.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		// zero affected rows also happens when nothing changed
		var count int64
		if err := r.db.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", product.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("check product %s: %w", product.ID, err)
		}
		if count == 0 {
			return fmt.Errorf("product %s: %w", product.ID, domain.ErrProductNotFound)
		}
	}
	return nil
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", id, domain.ErrProductNotFound)
	}
	return nil
}

func (r *productRepo) Search(ctx context.Context, q repository.ProductSearchQuery) (*repository.ProductPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 20
	}

	query := r.db.WithContext(ctx).Model(&domain.Product{})
	if q.Name != "" {
		query = query.Where("name LIKE ?", "%"+q.Name+"%")
	}
	if q.Category != "" {
		query = query.Where("category LIKE ?", "%"+q.Category+"%")
	}
	if q.PriceMin != nil {
		query = query.Where("price >= ?", *q.PriceMin)
	}
	if q.PriceMax != nil {
		query = query.Where("price <= ?", *q.PriceMax)
	}
	if q.StockMin != nil {
		query = query.Where("stock >= ?", *q.StockMin)
	}
	if q.StockMax != nil {
		query = query.Where("stock <= ?", *q.StockMax)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	var products []domain.Product
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}

	return &repository.ProductPage{
		Products:   products,
		Page:       page,
		PerPage:    limit,
		Count:      len(products),
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}
