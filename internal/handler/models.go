package handler

import (
	"time"

	"github.com/ninecards/storefront/internal/entities"
)

// View models. Currency amounts are fixed two-decimal strings, never
// floats.

type Product struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	ImageURL string `json:"image_url"`
	Blurb    string `json:"blurb"`
}

type HomePage struct {
	Products       []Product `json:"products"`
	CartCount      int       `json:"cart_count"`
	SuccessMessage string    `json:"success_message,omitempty"`
}

type CartItem struct {
	SKU      string    `json:"sku"`
	Name     string    `json:"name"`
	Price    string    `json:"price"`
	ImageURL string    `json:"image_url"`
	Qty      int       `json:"qty"`
	AddedAt  time.Time `json:"added_at"`
}

type CartPage struct {
	Items    []CartItem `json:"items"`
	Subtotal string     `json:"subtotal"`
}

type OrderItem struct {
	SKU             string `json:"sku"`
	Name            string `json:"name"`
	Price           string `json:"price"`
	Qty             int    `json:"qty"`
	PriceAtPurchase string `json:"price_at_purchase"`
	ImageURL        string `json:"image_url"`
}

type Order struct {
	OrderID   string      `json:"order_id"`
	Items     []OrderItem `json:"items"`
	Subtotal  string      `json:"subtotal"`
	Tax       string      `json:"tax"`
	Shipping  string      `json:"shipping"`
	Total     string      `json:"total"`
	CreatedAt time.Time   `json:"created_at"`
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		SKU:      p.SKU,
		Name:     p.Name,
		Price:    p.Price.StringFixed(2),
		ImageURL: p.ImageURL,
		Blurb:    p.Blurb,
	}
}

func ProductsEntityToJSON(products []entities.Product) []Product {
	result := make([]Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductEntityToJSON(p))
	}
	return result
}

func CartItemEntityToJSON(i entities.CartItem) CartItem {
	return CartItem{
		SKU:      i.SKU,
		Name:     i.Name,
		Price:    i.Price.StringFixed(2),
		ImageURL: i.ImageURL,
		Qty:      i.Qty,
		AddedAt:  i.AddedAt,
	}
}

func CartEntityToJSON(c entities.Cart) CartPage {
	items := make([]CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, CartItemEntityToJSON(it))
	}

	return CartPage{
		Items:    items,
		Subtotal: c.Subtotal.StringFixed(2),
	}
}

func OrderItemEntityToJSON(i entities.OrderItem) OrderItem {
	return OrderItem{
		SKU:             i.SKU,
		Name:            i.Name,
		Price:           i.Price.StringFixed(2),
		Qty:             i.Qty,
		PriceAtPurchase: i.PriceAtPurchase.StringFixed(2),
		ImageURL:        i.ImageURL,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemEntityToJSON(it))
	}

	return Order{
		OrderID:   o.OrderID,
		Items:     items,
		Subtotal:  o.Subtotal.StringFixed(2),
		Tax:       o.Tax.StringFixed(2),
		Shipping:  o.Shipping.StringFixed(2),
		Total:     o.Total.StringFixed(2),
		CreatedAt: o.CreatedAt,
	}
}
