package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ninecards/storefront/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type orderRepo struct {
	base
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{base: newBase(db)}
}

func (r *orderRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns("order_id", "subtotal", "tax", "shipping", "total", "created_at").
		Values(o.OrderID, o.Subtotal, o.Tax, o.Shipping, o.Total, o.CreatedAt).
		Suffix("ON CONFLICT (order_id) DO NOTHING").
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *orderRepo) SaveOrderItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "position", "sku", "name", "price", "qty", "price_at_purchase", "image_url").
		Suffix("ON CONFLICT (order_id, position) DO NOTHING")

	// position preserves the cart ordering at checkout time
	for i, it := range items {
		q = q.Values(orderID, i, it.SKU, it.Name, it.Price, it.Qty, it.PriceAtPurchase, it.ImageURL)
	}

	query, args := q.MustSql()
	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *orderRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select("order_id", "subtotal", "tax", "shipping", "total", "created_at").
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("order_id", "position", "sku", "name", "price", "qty", "price_at_purchase", "image_url").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("position").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

func (r *orderRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select("order_id", "subtotal", "tax", "shipping", "total", "created_at").
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.OrderID
	}

	query, args = r.qb.Select("order_id", "position", "sku", "name", "price", "qty", "price_at_purchase", "image_url").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "position").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	itemsMap := make(map[string][]OrderItem, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.OrderID]))
	}
	return result, nil
}
