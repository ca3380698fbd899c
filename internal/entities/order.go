package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type OrderItem struct {
	SKU             string
	Name            string
	Price           decimal.Decimal
	Qty             int
	PriceAtPurchase decimal.Decimal
	ImageURL        string
}

// Order is immutable once created. All amounts are rounded to two decimal
// places before storage; reads return the stored values without recomputing.
type Order struct {
	OrderID   string
	Items     []OrderItem
	Subtotal  decimal.Decimal
	Tax       decimal.Decimal
	Shipping  decimal.Decimal
	Total     decimal.Decimal
	CreatedAt time.Time
}

var (
	ErrOrderNotFound = errors.New("order not found")
)
