package repo

import (
	"time"

	"github.com/ninecards/storefront/internal/entities"

	"github.com/shopspring/decimal"
)

type Product struct {
	SKU      string          `db:"sku"`
	Name     string          `db:"name"`
	Price    decimal.Decimal `db:"price"`
	ImageURL string          `db:"image_url"`
	Blurb    string          `db:"blurb"`
}

type CartItem struct {
	CartID   string          `db:"cart_id"`
	SKU      string          `db:"sku"`
	Name     string          `db:"name"`
	Price    decimal.Decimal `db:"price"`
	ImageURL string          `db:"image_url"`
	Qty      int             `db:"qty"`
	AddedAt  time.Time       `db:"added_at"`
}

type Order struct {
	OrderID   string          `db:"order_id"`
	Subtotal  decimal.Decimal `db:"subtotal"`
	Tax       decimal.Decimal `db:"tax"`
	Shipping  decimal.Decimal `db:"shipping"`
	Total     decimal.Decimal `db:"total"`
	CreatedAt time.Time       `db:"created_at"`
}

type OrderItem struct {
	OrderID         string          `db:"order_id"`
	Position        int             `db:"position"`
	SKU             string          `db:"sku"`
	Name            string          `db:"name"`
	Price           decimal.Decimal `db:"price"`
	Qty             int             `db:"qty"`
	PriceAtPurchase decimal.Decimal `db:"price_at_purchase"`
	ImageURL        string          `db:"image_url"`
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		SKU:      p.SKU,
		Name:     p.Name,
		Price:    p.Price,
		ImageURL: p.ImageURL,
		Blurb:    p.Blurb,
	}
}

func CartItemToEntity(i CartItem) entities.CartItem {
	return entities.CartItem{
		SKU:      i.SKU,
		Name:     i.Name,
		Price:    i.Price,
		ImageURL: i.ImageURL,
		Qty:      i.Qty,
		AddedAt:  i.AddedAt,
	}
}

func OrderItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		SKU:             i.SKU,
		Name:            i.Name,
		Price:           i.Price,
		Qty:             i.Qty,
		PriceAtPurchase: i.PriceAtPurchase,
		ImageURL:        i.ImageURL,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		OrderID:   o.OrderID,
		Subtotal:  o.Subtotal,
		Tax:       o.Tax,
		Shipping:  o.Shipping,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, OrderItemToEntity(it))
		}
	}

	return order
}
