package domain

import "time"

type OrderCreatedEvent struct {
	OrderID   string      `json:"orderId"`
	BuyerID   string      `json:"buyerId"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}
