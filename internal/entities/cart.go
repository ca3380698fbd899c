package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCartID is the single shared cart every anonymous request operates
// on. Services take the cart id explicitly so per-session carts can be added
// without touching the business logic.
const DefaultCartID = "default"

// CartItem snapshots name, price and image from the product at the moment
// the item was first added. Later catalog changes do not touch the snapshot.
type CartItem struct {
	SKU      string
	Name     string
	Price    decimal.Decimal
	ImageURL string
	Qty      int
	AddedAt  time.Time
}

type Cart struct {
	Items    []CartItem
	Subtotal decimal.Decimal
}

var (
	ErrEmptyCart = errors.New("cart is empty")
)

// Subtotal is Σ(price × qty) over the given items at full precision.
func CartSubtotal(items []CartItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Qty))))
	}
	return subtotal
}
