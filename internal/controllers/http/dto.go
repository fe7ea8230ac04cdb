package http

type CartItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"required,gt=0"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Image     string  `json:"image"`
}

type UpdateCartRequest struct {
	Cart []CartItemRequest `json:"cart" binding:"required,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending cancelled completed"`
}

type SearchOrdersQuery struct {
	BuyerID string `form:"buyerId"`
	Status  string `form:"status" binding:"omitempty,oneof=pending cancelled completed"`
	From    string `form:"from"`
	To      string `form:"to"`
	Page    int    `form:"page,default=1"`
	Limit   int    `form:"limit,default=20"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" binding:"gte=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	Image       string  `json:"image"`
}

type UpdateProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	Image       string   `json:"image"`
}

type SearchProductsQuery struct {
	Name     string   `form:"name"`
	Category string   `form:"category"`
	PriceMin *float64 `form:"priceMin"`
	PriceMax *float64 `form:"priceMax"`
	StockMin *int     `form:"stockMin"`
	StockMax *int     `form:"stockMax"`
	Page     int      `form:"page,default=1"`
	Limit    int      `form:"limit,default=20"`
}
