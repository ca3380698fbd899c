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

// catalogRepo is read-only, the storefront never writes products.
type catalogRepo struct {
	base
}

func NewCatalogRepo(db *sqlx.DB) *catalogRepo {
	return &catalogRepo{base: newBase(db)}
}

func (r *catalogRepo) GetProductBySKU(ctx context.Context, sku string) (entities.Product, error) {
	query, args := r.qb.Select("sku", "name", "price", "image_url", "blurb").
		From("products").
		Where(sq.Eq{"sku": sku}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return ProductToEntity(product), nil
}

func (r *catalogRepo) ListProducts(ctx context.Context, limit int) ([]entities.Product, error) {
	// Ordered by sku so the catalog page is deterministic.
	query, args := r.qb.Select("sku", "name", "price", "image_url", "blurb").
		From("products").
		OrderBy("sku").
		Limit(uint64(limit)).
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}
