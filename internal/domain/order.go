package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCancelled OrderStatus = "cancelled"
	StatusCompleted OrderStatus = "completed"
)

type Order struct {
	ID        string      `json:"id" gorm:"type:char(36);primaryKey"`
	BuyerID   string      `json:"buyerId" gorm:"type:char(36);not null;index"`
	Status    OrderStatus `json:"status" gorm:"type:enum('pending','cancelled','completed');default:'pending'"`
	Total     float64     `json:"total" gorm:"type:decimal(10,2);not null"`
	Items     []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time   `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderItem freezes the unit price the buyer saw at placement time.
// ProductID is a weak reference: the product row may be deleted later.
type OrderItem struct {
	ID          string    `json:"id" gorm:"type:char(36);primaryKey"`
	OrderID     string    `json:"orderId" gorm:"type:char(36);not null;index"`
	ProductID   string    `json:"productId" gorm:"type:char(36);not null;index"`
	Quantity    int       `json:"quantity" gorm:"not null"`
	PriceAtTime float64   `json:"priceAtTime" gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

type OrderItemView struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name,omitempty"`
	ImageURL  string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type OrderView struct {
	ID        string          `json:"id"`
	BuyerID   string          `json:"buyerId"`
	Status    OrderStatus     `json:"status"`
	Total     float64         `json:"total"`
	Items     []OrderItemView `json:"items"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
