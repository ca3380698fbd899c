package repo

import (
	"context"
	"fmt"

	"github.com/ninecards/storefront/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type cartRepo struct {
	base
}

func NewCartRepo(db *sqlx.DB) *cartRepo {
	return &cartRepo{base: newBase(db)}
}

// UpsertItem inserts a new line item or adds the quantity to an existing
// one in a single statement, so concurrent adds for the same SKU cannot
// lose increments. The snapshot columns and added_at stay untouched on
// conflict: they are frozen at first add.
func (r *cartRepo) UpsertItem(ctx context.Context, cartID string, item entities.CartItem) error {
	query, args := r.qb.Insert("cart_items").
		Columns("cart_id", "sku", "name", "price", "image_url", "qty", "added_at").
		Values(cartID, item.SKU, item.Name, item.Price, item.ImageURL, item.Qty, item.AddedAt).
		Suffix("ON CONFLICT (cart_id, sku) DO UPDATE SET qty = cart_items.qty + EXCLUDED.qty").
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to upsert cart item: %w", err)
	}
	return nil
}

// SetQuantity replaces the quantity of an existing line item. If the line
// item does not exist this is a no-op, it never creates one.
func (r *cartRepo) SetQuantity(ctx context.Context, cartID, sku string, qty int) error {
	query, args := r.qb.Update("cart_items").
		Set("qty", qty).
		Where(sq.Eq{"cart_id": cartID, "sku": sku}).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set cart item quantity: %w", err)
	}
	return nil
}

func (r *cartRepo) DeleteItem(ctx context.Context, cartID, sku string) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"cart_id": cartID, "sku": sku}).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

func (r *cartRepo) ListItems(ctx context.Context, cartID string) ([]entities.CartItem, error) {
	query, args := r.qb.Select("cart_id", "sku", "name", "price", "image_url", "qty", "added_at").
		From("cart_items").
		Where(sq.Eq{"cart_id": cartID}).
		OrderBy("added_at DESC", "sku").
		MustSql()

	var items []CartItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cart items: %w", err)
	}

	result := make([]entities.CartItem, 0, len(items))
	for _, it := range items {
		result = append(result, CartItemToEntity(it))
	}
	return result, nil
}

// SumQuantities recomputes the badge count on every call, there is no
// stored counter to drift out of sync.
func (r *cartRepo) SumQuantities(ctx context.Context, cartID string) (int, error) {
	query, args := r.qb.Select("COALESCE(SUM(qty), 0)").
		From("cart_items").
		Where(sq.Eq{"cart_id": cartID}).
		MustSql()

	var count int
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to sum cart quantities: %w", err)
	}
	return count, nil
}

func (r *cartRepo) Clear(ctx context.Context, cartID string) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"cart_id": cartID}).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
