package http

import (
	"errors"
	"net/http"
	"time"

	"shop-backend/internal/domain"
	"shop-backend/internal/infra/redis"
	"shop-backend/internal/repository"
	"shop-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Handler is the thin HTTP edge. The buyer identity arrives in X-User-ID,
// set by the upstream auth gateway; it is never read from the request body.
type Handler struct {
	orders   *services.OrderService
	products *services.ProductService
	carts    redis.CartStoreInterface
}

func NewHandler(orders *services.OrderService, products *services.ProductService, carts redis.CartStoreInterface) *Handler {
	return &Handler{orders: orders, products: products, carts: carts}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/orders", h.PlaceOrder)
	r.GET("/orders", h.SearchOrders)
	r.GET("/orders/:id", h.GetOrder)
	r.PATCH("/orders/:id", h.UpdateOrderStatus)

	r.GET("/cart", h.GetCart)
	r.PUT("/cart", h.UpdateCart)
	r.DELETE("/cart", h.ClearCart)

	r.POST("/products", h.CreateProduct)
	r.GET("/products", h.SearchProducts)
	r.GET("/products/:id", h.GetProduct)
	r.PATCH("/products/:id", h.UpdateProduct)
	r.DELETE("/products/:id", h.DeleteProduct)
}

func (h *Handler) PlaceOrder(c *gin.Context) {
	buyer := buyerID(c)
	if buyer == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}

	// The cart key is derived from the buyer, one cart per user.
	order, err := h.orders.PlaceOrder(c.Request.Context(), buyer, buyer)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": order.ID, "status": order.Status})
}

func (h *Handler) SearchOrders(c *gin.Context) {
	var query SearchOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q := repository.OrderSearchQuery{
		BuyerID: query.BuyerID,
		Status:  domain.OrderStatus(query.Status),
		Page:    query.Page,
		Limit:   query.Limit,
	}

	var err error
	if q.From, err = parseDate(query.From); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
		return
	}
	if q.To, err = parseDate(query.To); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
		return
	}

	page, err := h.orders.SearchOrders(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) GetCart(c *gin.Context) {
	buyer := buyerID(c)
	if buyer == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}

	items, err := h.carts.Get(c.Request.Context(), buyer)
	if err != nil {
		writeError(c, err)
		return
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	c.JSON(http.StatusOK, gin.H{"cart": items})
}

func (h *Handler) UpdateCart(c *gin.Context) {
	buyer := buyerID(c)
	if buyer == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}

	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]domain.CartItem, 0, len(req.Cart))
	for _, item := range req.Cart {
		items = append(items, domain.CartItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  item.Quantity,
			ImageURL:  item.Image,
		})
	}

	merged, err := h.carts.Set(c.Request.Context(), buyer, items)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": merged})
}

func (h *Handler) ClearCart(c *gin.Context) {
	buyer := buyerID(c)
	if buyer == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}

	if err := h.carts.Clear(c.Request.Context(), buyer); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.Image,
	}
	if err := h.products.CreateProduct(c.Request.Context(), product); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.products.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.products.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Image != "" {
		product.ImageURL = req.Image
	}

	if err := h.products.UpdateProduct(c.Request.Context(), product); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.products.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) SearchProducts(c *gin.Context) {
	var query SearchProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.products.SearchProducts(c.Request.Context(), repository.ProductSearchQuery{
		Name:     query.Name,
		Category: query.Category,
		PriceMin: query.PriceMin,
		PriceMax: query.PriceMax,
		StockMin: query.StockMin,
		StockMax: query.StockMax,
		Page:     query.Page,
		Limit:    query.Limit,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func buyerID(c *gin.Context) string {
	return c.GetHeader("X-User-ID")
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}

func writeError(c *gin.Context, err error) {
	var stockErr *domain.InsufficientStockError
	switch {
	case errors.Is(err, domain.ErrEmptyCart) || errors.As(err, &stockErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrProductNotFound) || errors.Is(err, domain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
