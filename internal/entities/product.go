package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

type Product struct {
	SKU      string
	Name     string
	Price    decimal.Decimal
	ImageURL string
	Blurb    string
}

var (
	ErrProductNotFound = errors.New("product not found")
)
