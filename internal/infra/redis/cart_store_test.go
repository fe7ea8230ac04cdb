package redis

import (
	"context"
	"encoding/json"
	"testing"

	"shop-backend/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func cartJSON(t *testing.T, items []domain.CartItem) []byte {
	t.Helper()
	data, err := json.Marshal(items)
	assert.NoError(t, err)
	return data
}

func TestCartStore_Get_Absent(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewCartStore(rdb)

	mock.ExpectGet("cart-buyer-1").RedisNil()

	items, err := store.Get(context.Background(), "buyer-1")
	assert.NoError(t, err)
	assert.Nil(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartStore_Get_Present(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewCartStore(rdb)

	stored := []domain.CartItem{
		{ProductID: "p1", Name: "Mechanical Keyboard", UnitPrice: 10.00, Quantity: 2, ImageURL: "https://cdn.example.com/p1.png"},
	}
	mock.ExpectGet("cart-buyer-1").SetVal(string(cartJSON(t, stored)))

	items, err := store.Get(context.Background(), "buyer-1")
	assert.NoError(t, err)
	assert.Equal(t, stored, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartStore_Set_NewCart(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewCartStore(rdb)

	incoming := []domain.CartItem{
		{ProductID: "p1", Name: "Mechanical Keyboard", UnitPrice: 10.00, Quantity: 2},
	}
	mock.ExpectGet("cart-buyer-1").RedisNil()
	mock.ExpectSet("cart-buyer-1", cartJSON(t, incoming), 0).SetVal("OK")

	merged, err := store.Set(context.Background(), "buyer-1", incoming)
	assert.NoError(t, err)
	assert.Equal(t, incoming, merged)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartStore_Set_MergesByProduct(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewCartStore(rdb)

	stored := []domain.CartItem{
		{ProductID: "p1", Name: "Mechanical Keyboard", UnitPrice: 10.00, Quantity: 1},
	}
	incoming := []domain.CartItem{
		{ProductID: "p1", Name: "Mechanical Keyboard", UnitPrice: 10.00, Quantity: 2},
		{ProductID: "p2", Name: "Wireless Mouse", UnitPrice: 5.00, Quantity: 3},
	}
	expected := []domain.CartItem{
		{ProductID: "p1", Name: "Mechanical Keyboard", UnitPrice: 10.00, Quantity: 3},
		{ProductID: "p2", Name: "Wireless Mouse", UnitPrice: 5.00, Quantity: 3},
	}

	mock.ExpectGet("cart-buyer-1").SetVal(string(cartJSON(t, stored)))
	mock.ExpectSet("cart-buyer-1", cartJSON(t, expected), 0).SetVal("OK")

	merged, err := store.Set(context.Background(), "buyer-1", incoming)
	assert.NoError(t, err)
	assert.Equal(t, expected, merged)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartStore_Clear(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewCartStore(rdb)

	mock.ExpectDel("cart-buyer-1").SetVal(1)
	assert.NoError(t, store.Clear(context.Background(), "buyer-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartStore_Clear_AbsentIsIdempotent(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewCartStore(rdb)

	mock.ExpectDel("cart-buyer-1").SetVal(0)
	assert.NoError(t, store.Clear(context.Background(), "buyer-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
