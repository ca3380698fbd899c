package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ninecards/storefront/internal/entities"
)

type CatalogRepo interface {
	GetProductBySKU(ctx context.Context, sku string) (entities.Product, error)
}

type CartRepo interface {
	UpsertItem(ctx context.Context, cartID string, item entities.CartItem) error
	SetQuantity(ctx context.Context, cartID, sku string, qty int) error
	DeleteItem(ctx context.Context, cartID, sku string) error
	ListItems(ctx context.Context, cartID string) ([]entities.CartItem, error)
	SumQuantities(ctx context.Context, cartID string) (int, error)
	Clear(ctx context.Context, cartID string) error
}

type cartService struct {
	logger  *slog.Logger
	catalog CatalogRepo
	carts   CartRepo
}

func NewCartService(logger *slog.Logger, catalog CatalogRepo, carts CartRepo) *cartService {
	return &cartService{
		logger:  logger.With(slog.String("service", "cart")),
		catalog: catalog,
		carts:   carts,
	}
}

// AddItem adds qty of the product to the cart, snapshotting name, price and
// image from the catalog on first add. Repeated adds accumulate quantity.
// Returns the product name for confirmation messaging.
func (s *cartService) AddItem(ctx context.Context, cartID, sku string, qty int) (string, error) {
	if qty < 1 {
		qty = 1
	}

	product, err := s.catalog.GetProductBySKU(ctx, sku)
	if err != nil {
		return "", fmt.Errorf("failed to look up product: %w", err)
	}

	item := entities.CartItem{
		SKU:      product.SKU,
		Name:     product.Name,
		Price:    product.Price,
		ImageURL: product.ImageURL,
		Qty:      qty,
		AddedAt:  time.Now(),
	}

	if err := s.carts.UpsertItem(ctx, cartID, item); err != nil {
		return "", fmt.Errorf("failed to add item to cart: %w", err)
	}

	s.logger.DebugContext(ctx, "item added to cart",
		slog.String("cart_id", cartID), slog.String("sku", sku), slog.Int("qty", qty))
	return product.Name, nil
}

// UpdateQuantity sets the quantity of an existing line item. A quantity of
// zero or less removes the line item instead; storing a non-positive
// quantity is never allowed. Updating an absent line item is a no-op.
func (s *cartService) UpdateQuantity(ctx context.Context, cartID, sku string, qty int) error {
	if qty <= 0 {
		if err := s.carts.DeleteItem(ctx, cartID, sku); err != nil {
			return fmt.Errorf("failed to remove item from cart: %w", err)
		}
		s.logger.DebugContext(ctx, "item removed from cart",
			slog.String("cart_id", cartID), slog.String("sku", sku))
		return nil
	}

	if err := s.carts.SetQuantity(ctx, cartID, sku, qty); err != nil {
		return fmt.Errorf("failed to update cart quantity: %w", err)
	}

	s.logger.DebugContext(ctx, "cart quantity updated",
		slog.String("cart_id", cartID), slog.String("sku", sku), slog.Int("qty", qty))
	return nil
}

// RemoveItem deletes the line item for sku. Idempotent.
func (s *cartService) RemoveItem(ctx context.Context, cartID, sku string) error {
	if err := s.carts.DeleteItem(ctx, cartID, sku); err != nil {
		return fmt.Errorf("failed to remove item from cart: %w", err)
	}
	return nil
}

// GetCart returns line items ordered most-recently-added first plus the
// subtotal, rounded to two decimal places for display.
func (s *cartService) GetCart(ctx context.Context, cartID string) (entities.Cart, error) {
	items, err := s.carts.ListItems(ctx, cartID)
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to list cart items: %w", err)
	}

	return entities.Cart{
		Items:    items,
		Subtotal: entities.CartSubtotal(items).Round(2),
	}, nil
}

// CartCount is Σ(qty) over all line items, recomputed on every read.
func (s *cartService) CartCount(ctx context.Context, cartID string) (int, error) {
	count, err := s.carts.SumQuantities(ctx, cartID)
	if err != nil {
		return 0, fmt.Errorf("failed to count cart items: %w", err)
	}
	return count, nil
}
