package domain

type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image"`
}

// MergeCarts folds an incoming cart into the current one, deduplicating by
// product id and summing quantities. Existing items keep their position,
// new items are appended in incoming order.
func MergeCarts(current, incoming []CartItem) []CartItem {
	merged := make([]CartItem, len(current))
	copy(merged, current)

	index := make(map[string]int, len(merged))
	for i, item := range merged {
		index[item.ProductID] = i
	}

	for _, item := range incoming {
		if i, ok := index[item.ProductID]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}

	return merged
}
