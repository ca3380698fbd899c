package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ninecards/storefront/internal/entities"
	"github.com/ninecards/storefront/internal/service"
	"github.com/ninecards/storefront/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCartService_AddItem(t *testing.T) {
	product := entities.Product{
		SKU:      "SKU1001",
		Name:     "Aurora Ceramic Mug",
		Price:    decimal.RequireFromString("14.99"),
		ImageURL: "/images/mug.jfif",
	}

	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		sku          string
		qty          int
		mockBehavior func(catalog *mocks.MockCatalogRepo, carts *mocks.MockCartRepo)
		wantName     string
		wantErr      error
	}{
		{
			name: "snapshots product on add",
			sku:  "SKU1001",
			qty:  2,
			mockBehavior: func(catalog *mocks.MockCatalogRepo, carts *mocks.MockCartRepo) {
				catalog.EXPECT().
					GetProductBySKU(mock.Anything, "SKU1001").
					Return(product, nil).Once()
				carts.EXPECT().
					UpsertItem(mock.Anything, entities.DefaultCartID, mock.MatchedBy(func(item entities.CartItem) bool {
						return item.SKU == "SKU1001" &&
							item.Name == "Aurora Ceramic Mug" &&
							item.Price.Equal(product.Price) &&
							item.ImageURL == "/images/mug.jfif" &&
							item.Qty == 2 &&
							!item.AddedAt.IsZero()
					})).
					Return(nil).Once()
			},
			wantName: "Aurora Ceramic Mug",
		},
		{
			name: "non-positive quantity defaults to one",
			sku:  "SKU1001",
			qty:  -3,
			mockBehavior: func(catalog *mocks.MockCatalogRepo, carts *mocks.MockCartRepo) {
				catalog.EXPECT().
					GetProductBySKU(mock.Anything, "SKU1001").
					Return(product, nil).Once()
				carts.EXPECT().
					UpsertItem(mock.Anything, entities.DefaultCartID, mock.MatchedBy(func(item entities.CartItem) bool {
						return item.Qty == 1
					})).
					Return(nil).Once()
			},
			wantName: "Aurora Ceramic Mug",
		},
		{
			name: "unknown sku",
			sku:  "SKU9999",
			qty:  1,
			mockBehavior: func(catalog *mocks.MockCatalogRepo, _ *mocks.MockCartRepo) {
				catalog.EXPECT().
					GetProductBySKU(mock.Anything, "SKU9999").
					Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name: "store failure propagates",
			sku:  "SKU1001",
			qty:  1,
			mockBehavior: func(catalog *mocks.MockCatalogRepo, carts *mocks.MockCartRepo) {
				catalog.EXPECT().
					GetProductBySKU(mock.Anything, "SKU1001").
					Return(product, nil).Once()
				carts.EXPECT().
					UpsertItem(mock.Anything, entities.DefaultCartID, mock.Anything).
					Return(dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := mocks.NewMockCatalogRepo(t)
			carts := mocks.NewMockCartRepo(t)
			tc.mockBehavior(catalog, carts)

			svc := service.NewCartService(discardLogger(), catalog, carts)

			name, err := svc.AddItem(context.Background(), entities.DefaultCartID, tc.sku, tc.qty)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, name)
		})
	}
}

func TestCartService_UpdateQuantity(t *testing.T) {
	testCases := []struct {
		name         string
		qty          int
		mockBehavior func(carts *mocks.MockCartRepo)
	}{
		{
			name: "positive quantity is set",
			qty:  3,
			mockBehavior: func(carts *mocks.MockCartRepo) {
				carts.EXPECT().
					SetQuantity(mock.Anything, entities.DefaultCartID, "SKU1001", 3).
					Return(nil).Once()
			},
		},
		{
			name: "zero removes the line item",
			qty:  0,
			mockBehavior: func(carts *mocks.MockCartRepo) {
				carts.EXPECT().
					DeleteItem(mock.Anything, entities.DefaultCartID, "SKU1001").
					Return(nil).Once()
			},
		},
		{
			name: "negative removes the line item",
			qty:  -5,
			mockBehavior: func(carts *mocks.MockCartRepo) {
				carts.EXPECT().
					DeleteItem(mock.Anything, entities.DefaultCartID, "SKU1001").
					Return(nil).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := mocks.NewMockCatalogRepo(t)
			carts := mocks.NewMockCartRepo(t)
			tc.mockBehavior(carts)

			svc := service.NewCartService(discardLogger(), catalog, carts)

			err := svc.UpdateQuantity(context.Background(), entities.DefaultCartID, "SKU1001", tc.qty)
			assert.NoError(t, err)
		})
	}
}

func TestCartService_RemoveItem(t *testing.T) {
	catalog := mocks.NewMockCatalogRepo(t)
	carts := mocks.NewMockCartRepo(t)

	// removal is idempotent, a second call is the same no-op delete
	carts.EXPECT().
		DeleteItem(mock.Anything, entities.DefaultCartID, "SKU1001").
		Return(nil).Twice()

	svc := service.NewCartService(discardLogger(), catalog, carts)

	require.NoError(t, svc.RemoveItem(context.Background(), entities.DefaultCartID, "SKU1001"))
	require.NoError(t, svc.RemoveItem(context.Background(), entities.DefaultCartID, "SKU1001"))
}

func TestCartService_GetCart(t *testing.T) {
	now := time.Now()
	items := []entities.CartItem{
		{SKU: "SKU1001", Price: decimal.NewFromInt(10), Qty: 2, AddedAt: now},
		{SKU: "SKU1002", Price: decimal.NewFromInt(5), Qty: 1, AddedAt: now.Add(-time.Minute)},
	}

	catalog := mocks.NewMockCatalogRepo(t)
	carts := mocks.NewMockCartRepo(t)

	carts.EXPECT().
		ListItems(mock.Anything, entities.DefaultCartID).
		Return(items, nil).Once()

	svc := service.NewCartService(discardLogger(), catalog, carts)

	cart, err := svc.GetCart(context.Background(), entities.DefaultCartID)
	require.NoError(t, err)

	assert.Len(t, cart.Items, 2)
	assert.Equal(t, "25.00", cart.Subtotal.StringFixed(2))
}

func TestCartService_CartCount(t *testing.T) {
	catalog := mocks.NewMockCatalogRepo(t)
	carts := mocks.NewMockCartRepo(t)

	carts.EXPECT().
		SumQuantities(mock.Anything, entities.DefaultCartID).
		Return(7, nil).Once()

	svc := service.NewCartService(discardLogger(), catalog, carts)

	count, err := svc.CartCount(context.Background(), entities.DefaultCartID)
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}
