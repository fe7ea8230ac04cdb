package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeCarts(t *testing.T) {
	tests := []struct {
		name     string
		current  []CartItem
		incoming []CartItem
		expected []CartItem
	}{
		{
			name:     "into empty cart",
			current:  nil,
			incoming: []CartItem{{ProductID: "p1", Quantity: 2}},
			expected: []CartItem{{ProductID: "p1", Quantity: 2}},
		},
		{
			name:     "duplicate product sums quantities",
			current:  []CartItem{{ProductID: "p1", Name: "Mechanical Keyboard", UnitPrice: 10.00, Quantity: 1}},
			incoming: []CartItem{{ProductID: "p1", Name: "Mechanical Keyboard", UnitPrice: 10.00, Quantity: 2}},
			expected: []CartItem{{ProductID: "p1", Name: "Mechanical Keyboard", UnitPrice: 10.00, Quantity: 3}},
		},
		{
			name: "existing items keep their position, new ones append",
			current: []CartItem{
				{ProductID: "p1", Quantity: 1},
				{ProductID: "p2", Quantity: 1},
			},
			incoming: []CartItem{
				{ProductID: "p3", Quantity: 5},
				{ProductID: "p1", Quantity: 4},
			},
			expected: []CartItem{
				{ProductID: "p1", Quantity: 5},
				{ProductID: "p2", Quantity: 1},
				{ProductID: "p3", Quantity: 5},
			},
		},
		{
			name:     "empty incoming leaves cart unchanged",
			current:  []CartItem{{ProductID: "p1", Quantity: 2}},
			incoming: nil,
			expected: []CartItem{{ProductID: "p1", Quantity: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MergeCarts(tt.current, tt.incoming))
		})
	}
}

func TestInsufficientStockError_Message(t *testing.T) {
	err := &InsufficientStockError{ProductID: "p2", ProductName: "Wireless Mouse", Available: 2, Requested: 3}
	assert.Equal(t, "insufficient stock for product Wireless Mouse: available 2, requested 3", err.Error())

	// falls back to the id when the name is unknown
	err = &InsufficientStockError{ProductID: "p2", Available: 0, Requested: 1}
	assert.Contains(t, err.Error(), "p2")
}
