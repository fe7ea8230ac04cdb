package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shop-backend/internal/domain"
	"shop-backend/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const productCacheTTL = time.Minute

type ProductServiceInterface interface {
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	EnsureSufficientStock(ctx context.Context, productID string, quantity int) error
}

var _ ProductServiceInterface = (*ProductService)(nil)

type ProductService struct {
	repo        repository.ProductRepository
	redisClient *redis.Client
	group       singleflight.Group
}

func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func (s *ProductService) CreateProduct(ctx context.Context, product *domain.Product) error {
	return s.repo.Create(ctx, product)
}

// GetProduct is a cache-aside read. Concurrent misses for the same id are
// collapsed into a single repository load via singleflight.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if s.redisClient == nil {
		return s.repo.FindByID(ctx, id)
	}

	cacheKey := productCacheKey(id)
	if cached, err := s.redisClient.Get(ctx, cacheKey).Bytes(); err == nil {
		var p domain.Product
		if err := json.Unmarshal(cached, &p); err == nil {
			return &p, nil
		}
	}

	v, err, _ := s.group.Do(id, func() (any, error) {
		p, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if data, err := json.Marshal(p); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, productCacheTTL)
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Product), nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if err := s.repo.Update(ctx, product); err != nil {
		return err
	}
	s.invalidate(ctx, product.ID)
	return nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *ProductService) SearchProducts(ctx context.Context, q repository.ProductSearchQuery) (*repository.ProductPage, error) {
	return s.repo.Search(ctx, q)
}

// EnsureSufficientStock is the optimistic pre-check before order placement.
// It always reads live stock from the database, never the cache. The
// authoritative guard is the conditional decrement inside the placement
// transaction; this check only exists to fail fast with a descriptive error.
func (s *ProductService) EnsureSufficientStock(ctx context.Context, productID string, quantity int) error {
	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if product.Stock < quantity {
		return &domain.InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Available:   product.Stock,
			Requested:   quantity,
		}
	}
	return nil
}

func (s *ProductService) WarmupProductCache(ctx context.Context, productIDs []string) error {
	if s.redisClient == nil {
		return nil
	}

	for _, id := range productIDs {
		product, err := s.repo.FindByID(ctx, id)
		if err != nil {
			log.Warn().Err(err).Str("product_id", id).Msg("cache warmup skipped product")
			continue
		}
		if data, err := json.Marshal(product); err == nil {
			s.redisClient.Set(ctx, productCacheKey(id), data, productCacheTTL)
		}
	}
	return nil
}

func (s *ProductService) invalidate(ctx context.Context, id string) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, productCacheKey(id)).Err(); err != nil {
		log.Warn().Err(err).Str("product_id", id).Msg("product cache invalidation failed")
	}
}

func productCacheKey(id string) string {
	return fmt.Sprintf("product:%s", id)
}
