package services

import (
	"shop-backend/internal/domain"
)

const (
	TestBuyerID = "11111111-1111-1111-1111-111111111111"
	TestCartKey = TestBuyerID
)

// CartFixture is the canonical two-line cart: 2 x 10.00 + 3 x 5.00 = 35.00.
func CartFixture() []domain.CartItem {
	return []domain.CartItem{
		{ProductID: "p1", Name: "Mechanical Keyboard", UnitPrice: 10.00, Quantity: 2, ImageURL: "https://cdn.example.com/p1.png"},
		{ProductID: "p2", Name: "Wireless Mouse", UnitPrice: 5.00, Quantity: 3, ImageURL: "https://cdn.example.com/p2.png"},
	}
}

func ProductFixture(id, name string, price float64, stock int) *domain.Product {
	return &domain.Product{
		ID:    id,
		Name:  name,
		Price: price,
		Stock: stock,
	}
}
