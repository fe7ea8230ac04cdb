package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"shop-backend/internal/domain"
	"shop-backend/internal/mocks"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductService_EnsureSufficientStock(t *testing.T) {
	tests := []struct {
		name       string
		productID  string
		quantity   int
		setupMocks func(*mocks.MockProductRepository)
		checkError func(*testing.T, error)
	}{
		{
			name:      "enough stock",
			productID: "p1",
			quantity:  2,
			setupMocks: func(repo *mocks.MockProductRepository) {
				repo.On("FindByID", mock.Anything, "p1").Return(ProductFixture("p1", "Mechanical Keyboard", 10.00, 5), nil)
			},
		},
		{
			name:      "exactly enough stock",
			productID: "p1",
			quantity:  5,
			setupMocks: func(repo *mocks.MockProductRepository) {
				repo.On("FindByID", mock.Anything, "p1").Return(ProductFixture("p1", "Mechanical Keyboard", 10.00, 5), nil)
			},
		},
		{
			name:      "insufficient stock carries product identity and quantities",
			productID: "p2",
			quantity:  3,
			setupMocks: func(repo *mocks.MockProductRepository) {
				repo.On("FindByID", mock.Anything, "p2").Return(ProductFixture("p2", "Wireless Mouse", 5.00, 2), nil)
			},
			checkError: func(t *testing.T, err error) {
				var stockErr *domain.InsufficientStockError
				assert.ErrorAs(t, err, &stockErr)
				assert.Equal(t, "p2", stockErr.ProductID)
				assert.Equal(t, "Wireless Mouse", stockErr.ProductName)
				assert.Equal(t, 2, stockErr.Available)
				assert.Equal(t, 3, stockErr.Requested)
				assert.Contains(t, err.Error(), "Wireless Mouse")
			},
		},
		{
			name:      "product does not exist",
			productID: "ghost",
			quantity:  1,
			setupMocks: func(repo *mocks.MockProductRepository) {
				repo.On("FindByID", mock.Anything, "ghost").Return(nil, domain.ErrProductNotFound)
			},
			checkError: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrProductNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockProductRepository)
			tt.setupMocks(repo)

			service := NewProductService(repo)
			err := service.EnsureSufficientStock(context.Background(), tt.productID, tt.quantity)

			if tt.checkError != nil {
				assert.Error(t, err)
				tt.checkError(t, err)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestProductService_GetProduct_WithoutCache(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("FindByID", mock.Anything, "p1").Return(ProductFixture("p1", "Mechanical Keyboard", 10.00, 5), nil).Twice()

	service := NewProductService(repo)

	for i := 0; i < 2; i++ {
		product, err := service.GetProduct(context.Background(), "p1")
		assert.NoError(t, err)
		assert.Equal(t, "p1", product.ID)
	}

	repo.AssertExpectations(t)
}

func TestProductService_GetProduct_CachesReads(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	product := ProductFixture("p1", "Mechanical Keyboard", 10.00, 5)
	repo.On("FindByID", mock.Anything, "p1").Return(product, nil).Once()

	rdb, rmock := redismock.NewClientMock()
	data, _ := json.Marshal(product)

	// first call misses the cache, loads from the repo and fills the cache
	rmock.ExpectGet("product:p1").RedisNil()
	rmock.ExpectSet("product:p1", data, productCacheTTL).SetVal("OK")
	// second call is served from the cache, the repo is not touched again
	rmock.ExpectGet("product:p1").SetVal(string(data))

	service := NewProductService(repo)
	service.SetRedisClient(rdb)

	first, err := service.GetProduct(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Equal(t, "Mechanical Keyboard", first.Name)

	second, err := service.GetProduct(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Equal(t, "Mechanical Keyboard", second.Name)

	repo.AssertExpectations(t)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestProductService_GetProduct_CacheMissOnRepoError(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("FindByID", mock.Anything, "ghost").Return(nil, domain.ErrProductNotFound)

	rdb, rmock := redismock.NewClientMock()
	rmock.ExpectGet("product:ghost").RedisNil()

	service := NewProductService(repo)
	service.SetRedisClient(rdb)

	product, err := service.GetProduct(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Nil(t, product)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestProductService_UpdateInvalidatesCache(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	product := ProductFixture("p1", "Mechanical Keyboard", 12.00, 5)
	repo.On("Update", mock.Anything, product).Return(nil)

	rdb, rmock := redismock.NewClientMock()
	rmock.ExpectDel("product:p1").SetVal(1)

	service := NewProductService(repo)
	service.SetRedisClient(rdb)

	assert.NoError(t, service.UpdateProduct(context.Background(), product))
	repo.AssertExpectations(t)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestProductService_DeleteInvalidatesCache(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("Delete", mock.Anything, "p1").Return(nil)

	rdb, rmock := redismock.NewClientMock()
	rmock.ExpectDel("product:p1").SetVal(1)

	service := NewProductService(repo)
	service.SetRedisClient(rdb)

	assert.NoError(t, service.DeleteProduct(context.Background(), "p1"))
	repo.AssertExpectations(t)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestProductService_WarmupProductCache(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	p1 := ProductFixture("p1", "Mechanical Keyboard", 10.00, 5)
	repo.On("FindByID", mock.Anything, "p1").Return(p1, nil)
	// missing products are skipped, the warmup keeps going
	repo.On("FindByID", mock.Anything, "ghost").Return(nil, domain.ErrProductNotFound)

	rdb, rmock := redismock.NewClientMock()
	data, _ := json.Marshal(p1)
	rmock.ExpectSet("product:p1", data, time.Minute).SetVal("OK")

	service := NewProductService(repo)
	service.SetRedisClient(rdb)

	assert.NoError(t, service.WarmupProductCache(context.Background(), []string{"p1", "ghost"}))
	repo.AssertExpectations(t)
	assert.NoError(t, rmock.ExpectationsWereMet())
}
