package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ninecards/storefront/internal/config"
	"github.com/ninecards/storefront/internal/entities"
	"github.com/ninecards/storefront/pkg/trm"
	"github.com/ninecards/storefront/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderSaver interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveOrderItems(ctx context.Context, orderID string, items []entities.OrderItem) error
}

type OrderPublisher interface {
	PublishOrderCreated(ctx context.Context, order entities.Order) error
}

type checkoutService struct {
	logger    *slog.Logger
	txManager trm.Manager
	carts     CartRepo
	orders    OrderSaver
	publisher OrderPublisher

	taxRate  decimal.Decimal
	shipping decimal.Decimal
}

func NewCheckoutService(
	logger *slog.Logger,
	txManager trm.Manager,
	carts CartRepo,
	orders OrderSaver,
	publisher OrderPublisher,
	cfg config.Checkout,
) *checkoutService {
	return &checkoutService{
		logger:    logger.With(slog.String("service", "checkout")),
		txManager: txManager,
		carts:     carts,
		orders:    orders,
		publisher: publisher,
		taxRate:   decimal.NewFromFloat(cfg.TaxRate),
		shipping:  decimal.NewFromFloat(cfg.ShippingFee),
	}
}

// Checkout converts the current cart into a durable order and empties the
// cart, both inside one transaction: either the order exists and the cart
// is empty, or neither happened. An empty cart yields ErrEmptyCart so the
// caller can redirect instead of rendering an error.
func (s *checkoutService) Checkout(ctx context.Context, cartID string) (string, error) {
	var order entities.Order

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			items, err := s.carts.ListItems(ctx, cartID)
			if err != nil {
				return fmt.Errorf("failed to list cart items: %w", err)
			}
			if len(items) == 0 {
				return entities.ErrEmptyCart
			}

			order = s.buildOrder(items)

			if err := s.orders.SaveOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if err := s.orders.SaveOrderItems(ctx, order.OrderID, order.Items); err != nil {
				return fmt.Errorf("failed to save order items: %w", err)
			}
			if err := s.carts.Clear(ctx, cartID); err != nil {
				return fmt.Errorf("failed to clear cart: %w", err)
			}

			s.logger.DebugContext(ctx, "order created",
				slog.String("order_id", order.OrderID), slog.Int("items", len(order.Items)))
			return nil
		})
	}

	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}

	if err := utils.Retry(cfg, fn, entities.ErrEmptyCart); err != nil {
		return "", err
	}

	// The order is durable at this point. A publish failure must never undo
	// or fail the checkout, so it is only logged.
	if err := s.publisher.PublishOrderCreated(ctx, order); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order created event",
			slog.String("order_id", order.OrderID), slog.Any("error", err))
	}

	return order.OrderID, nil
}

func (s *checkoutService) buildOrder(items []entities.CartItem) entities.Order {
	subtotal := entities.CartSubtotal(items)
	tax := subtotal.Mul(s.taxRate).Round(2)
	shipping := s.shipping.Round(2)
	total := subtotal.Add(tax).Add(shipping).Round(2)

	orderItems := make([]entities.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, entities.OrderItem{
			SKU:             item.SKU,
			Name:            item.Name,
			Price:           item.Price,
			Qty:             item.Qty,
			PriceAtPurchase: item.Price,
			ImageURL:        item.ImageURL,
		})
	}

	return entities.Order{
		OrderID:   uuid.NewString(),
		Items:     orderItems,
		Subtotal:  subtotal.Round(2),
		Tax:       tax,
		Shipping:  shipping,
		Total:     total,
		CreatedAt: time.Now(),
	}
}
