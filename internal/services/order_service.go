package services

import (
	"context"
	"fmt"
	"math"

	"shop-backend/internal/domain"
	rabbit "shop-backend/internal/infra/rabbitmq"
	"shop-backend/internal/infra/redis"
	"shop-backend/internal/repository"

	"github.com/rs/zerolog/log"
)

// OrderService is the order placement engine. It validates the cart against
// live inventory, settles the order in one database transaction and clears
// the cart afterwards. The prices charged are the ones captured in the cart,
// not the live product prices.
type OrderService struct {
	repo      repository.OrderRepository
	products  ProductServiceInterface
	carts     redis.CartStoreInterface
	publisher rabbit.PublisherInterface
}

func NewOrderService(r repository.OrderRepository, p ProductServiceInterface, c redis.CartStoreInterface, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		repo:      r,
		products:  p,
		carts:     c,
		publisher: pub,
	}
}

// PlaceOrder turns the cart stored under cartKey into a pending order for
// buyerID.
//
// The per-line stock pre-check is best effort: it produces a fast,
// descriptive error for obviously invalid carts but cannot guarantee
// availability at commit time. The conditional decrement inside
// repo.PlaceOrder is what actually prevents overselling. Clearing the cart
// happens after the commit and lives in a different store, so a failure
// there is logged and swallowed: a stale cart is a lesser harm than losing
// a committed order.
func (s *OrderService) PlaceOrder(ctx context.Context, cartKey, buyerID string) (*domain.Order, error) {
	items, err := s.carts.Get(ctx, cartKey)
	if err != nil {
		return nil, fmt.Errorf("fetch cart: %w", err)
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	for _, item := range items {
		if err := s.products.EnsureSufficientStock(ctx, item.ProductID, item.Quantity); err != nil {
			return nil, err
		}
	}

	var total float64
	lines := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		total += item.UnitPrice * float64(item.Quantity)
		lines = append(lines, domain.OrderItem{
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			PriceAtTime: item.UnitPrice,
		})
	}

	order := &domain.Order{
		BuyerID: buyerID,
		Status:  domain.StatusPending,
		Total:   roundToCents(total),
		Items:   lines,
	}

	if err := s.repo.PlaceOrder(ctx, order); err != nil {
		return nil, err
	}

	if err := s.carts.Clear(ctx, cartKey); err != nil {
		log.Warn().Err(err).Str("cart_key", cartKey).Str("order_id", order.ID).
			Msg("order committed but cart clear failed, cart is stale")
	}

	go s.publishOrderCreatedEvent(context.Background(), order)

	return order, nil
}

// GetOrder resolves the order's line items against the current catalog for
// display. A line whose product has since been deleted keeps its frozen
// price and quantity but carries no name or image.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.OrderView, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	views := make([]domain.OrderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		view := domain.OrderItemView{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.PriceAtTime,
		}
		if product, err := s.products.GetProduct(ctx, item.ProductID); err == nil {
			view.Name = product.Name
			view.ImageURL = product.ImageURL
		}
		views = append(views, view)
	}

	return &domain.OrderView{
		ID:        order.ID,
		BuyerID:   order.BuyerID,
		Status:    order.Status,
		Total:     order.Total,
		Items:     views,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}, nil
}

// UpdateStatus writes the new status without validating the transition; the
// catalog admin is free to move an order between any two states.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *OrderService) SearchOrders(ctx context.Context, q repository.OrderSearchQuery) (*repository.OrderPage, error) {
	return s.repo.Search(ctx, q)
}

func (s *OrderService) publishOrderCreatedEvent(ctx context.Context, order *domain.Order) {
	evt := domain.OrderCreatedEvent{
		OrderID:   order.ID,
		BuyerID:   order.BuyerID,
		Total:     order.Total,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
	}

	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		log.Error().Err(err).Str("order_id", order.ID).Msg("failed to publish order.created event")
	}
}

func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
