package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ninecards/storefront/internal/config"
	"github.com/ninecards/storefront/internal/entities"
	"github.com/ninecards/storefront/internal/service"
	"github.com/ninecards/storefront/internal/service/mocks"
	txMocks "github.com/ninecards/storefront/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var checkoutCfg = config.Checkout{TaxRate: 0.13, ShippingFee: 20.00, MaxAddQty: 10}

func cartFixture() []entities.CartItem {
	now := time.Now()
	return []entities.CartItem{
		{SKU: "SKU1001", Name: "Mug", Price: decimal.NewFromInt(10), Qty: 2, ImageURL: "/images/mug.jfif", AddedAt: now},
		{SKU: "SKU1002", Name: "Tee", Price: decimal.NewFromInt(5), Qty: 1, ImageURL: "/images/tee.jfif", AddedAt: now.Add(-time.Minute)},
	}
}

func TestCheckoutService_Checkout(t *testing.T) {
	dbError := errors.New("db error")

	type mockSet struct {
		carts     *mocks.MockCartRepo
		orders    *mocks.MockOrderSaver
		publisher *mocks.MockOrderPublisher
	}

	testCases := []struct {
		name         string
		mockBehavior func(m mockSet, saved *entities.Order)
		wantErr      error
	}{
		{
			name: "creates order and clears cart",
			mockBehavior: func(m mockSet, saved *entities.Order) {
				m.carts.EXPECT().
					ListItems(mock.Anything, entities.DefaultCartID).
					Return(cartFixture(), nil).Once()
				m.orders.EXPECT().
					SaveOrder(mock.Anything, mock.Anything).
					Run(func(_ context.Context, o entities.Order) { *saved = o }).
					Return(nil).Once()
				m.orders.EXPECT().
					SaveOrderItems(mock.Anything, mock.Anything, mock.Anything).
					Return(nil).Once()
				m.carts.EXPECT().
					Clear(mock.Anything, entities.DefaultCartID).
					Return(nil).Once()
				m.publisher.EXPECT().
					PublishOrderCreated(mock.Anything, mock.Anything).
					Return(nil).Once()
			},
		},
		{
			name: "empty cart is not an error",
			mockBehavior: func(m mockSet, _ *entities.Order) {
				m.carts.EXPECT().
					ListItems(mock.Anything, entities.DefaultCartID).
					Return([]entities.CartItem{}, nil).Once()
			},
			wantErr: entities.ErrEmptyCart,
		},
		{
			name: "cart clear failure rolls the order back",
			mockBehavior: func(m mockSet, _ *entities.Order) {
				m.carts.EXPECT().
					ListItems(mock.Anything, entities.DefaultCartID).
					Return(cartFixture(), nil)
				m.orders.EXPECT().
					SaveOrder(mock.Anything, mock.Anything).
					Return(nil)
				m.orders.EXPECT().
					SaveOrderItems(mock.Anything, mock.Anything, mock.Anything).
					Return(nil)
				m.carts.EXPECT().
					Clear(mock.Anything, entities.DefaultCartID).
					Return(dbError)
			},
			wantErr: dbError,
		},
		{
			name: "retry works (first attempt fails, second succeeds)",
			mockBehavior: func(m mockSet, saved *entities.Order) {
				m.carts.EXPECT().
					ListItems(mock.Anything, entities.DefaultCartID).
					Once().Return(nil, errors.New("temporary error"))
				m.carts.EXPECT().
					ListItems(mock.Anything, entities.DefaultCartID).
					Once().Return(cartFixture(), nil)
				m.orders.EXPECT().
					SaveOrder(mock.Anything, mock.Anything).
					Run(func(_ context.Context, o entities.Order) { *saved = o }).
					Return(nil).Once()
				m.orders.EXPECT().
					SaveOrderItems(mock.Anything, mock.Anything, mock.Anything).
					Return(nil).Once()
				m.carts.EXPECT().
					Clear(mock.Anything, entities.DefaultCartID).
					Return(nil).Once()
				m.publisher.EXPECT().
					PublishOrderCreated(mock.Anything, mock.Anything).
					Return(nil).Once()
			},
		},
		{
			name: "publish failure does not fail the checkout",
			mockBehavior: func(m mockSet, saved *entities.Order) {
				m.carts.EXPECT().
					ListItems(mock.Anything, entities.DefaultCartID).
					Return(cartFixture(), nil).Once()
				m.orders.EXPECT().
					SaveOrder(mock.Anything, mock.Anything).
					Run(func(_ context.Context, o entities.Order) { *saved = o }).
					Return(nil).Once()
				m.orders.EXPECT().
					SaveOrderItems(mock.Anything, mock.Anything, mock.Anything).
					Return(nil).Once()
				m.carts.EXPECT().
					Clear(mock.Anything, entities.DefaultCartID).
					Return(nil).Once()
				m.publisher.EXPECT().
					PublishOrderCreated(mock.Anything, mock.Anything).
					Return(errors.New("broker unavailable")).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := mockSet{
				carts:     mocks.NewMockCartRepo(t),
				orders:    mocks.NewMockOrderSaver(t),
				publisher: mocks.NewMockOrderPublisher(t),
			}
			tx := txMocks.NewMockManager(t)

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					})

			var saved entities.Order
			tc.mockBehavior(m, &saved)

			svc := service.NewCheckoutService(discardLogger(), tx, m.carts, m.orders, m.publisher, checkoutCfg)

			orderID, err := svc.Checkout(context.Background(), entities.DefaultCartID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, saved.OrderID, orderID)
			assert.Len(t, saved.Items, 2)

			// subtotal 25.00, 13% tax 3.25, flat shipping 20.00
			assert.Equal(t, "25.00", saved.Subtotal.StringFixed(2))
			assert.Equal(t, "3.25", saved.Tax.StringFixed(2))
			assert.Equal(t, "20.00", saved.Shipping.StringFixed(2))
			assert.Equal(t, "48.25", saved.Total.StringFixed(2))

			for i, item := range saved.Items {
				assert.True(t, item.PriceAtPurchase.Equal(item.Price), "item %d price mismatch", i)
			}
			assert.False(t, saved.CreatedAt.IsZero())
		})
	}
}
