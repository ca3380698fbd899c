package handler_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/ninecards/storefront/internal/config"
	"github.com/ninecards/storefront/internal/entities"
	"github.com/ninecards/storefront/internal/handler"
	"github.com/ninecards/storefront/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	catalog  *mocks.MockProductLister
	cart     *mocks.MockCartService
	checkout *mocks.MockCheckoutService
	orders   *mocks.MockOrderGetter
}

func newTestHandler(t *testing.T) (*handler.HTTPHandler, handlerMocks) {
	m := handlerMocks{
		catalog:  mocks.NewMockProductLister(t),
		cart:     mocks.NewMockCartService(t),
		checkout: mocks.NewMockCheckoutService(t),
		orders:   mocks.NewMockOrderGetter(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(
		logger, m.catalog, m.cart, m.checkout, m.orders,
		config.Catalog{PageSize: 9},
		config.Checkout{TaxRate: 0.13, ShippingFee: 20.00, MaxAddQty: 10},
	)
	return h, m
}

func serve(t *testing.T, h *handler.HTTPHandler, req *http.Request) *http.Response {
	t.Helper()

	r := chi.NewRouter()
	h.Init(r)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr.Result()
}

func formRequest(method, target, form string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHTTPHandler_Home(t *testing.T) {
	products := []entities.Product{
		{SKU: "SKU1001", Name: "Aurora Ceramic Mug", Price: decimal.RequireFromString("14.99")},
	}

	testCases := []struct {
		name         string
		target       string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     []string
	}{
		{
			name:   "renders catalog with cart count",
			target: "/",
			mockBehavior: func(m handlerMocks) {
				m.catalog.EXPECT().ListProducts(mock.Anything, 9).Return(products, nil).Once()
				m.cart.EXPECT().CartCount(mock.Anything, entities.DefaultCartID).Return(3, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"cart_count":3`, `"sku":"SKU1001"`, `"price":"14.99"`},
		},
		{
			name:   "success banner after add redirect",
			target: "/?added=true&product=Aurora+Ceramic+Mug",
			mockBehavior: func(m handlerMocks) {
				m.catalog.EXPECT().ListProducts(mock.Anything, 9).Return(products, nil).Once()
				m.cart.EXPECT().CartCount(mock.Anything, entities.DefaultCartID).Return(1, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"success_message":"Aurora Ceramic Mug added to cart!"`},
		},
		{
			name:   "store failure",
			target: "/",
			mockBehavior: func(m handlerMocks) {
				m.catalog.EXPECT().ListProducts(mock.Anything, 9).Return(nil, errors.New("db error")).Once()
				m.cart.EXPECT().CartCount(mock.Anything, entities.DefaultCartID).Return(0, nil).Maybe()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{`"internal server error"`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			tc.mockBehavior(m)

			res := serve(t, h, httptest.NewRequest(http.MethodGet, tc.target, nil))
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			for _, want := range tc.wantBody {
				assert.Contains(t, string(body), want)
			}
		})
	}
}

func TestHTTPHandler_AddToCart(t *testing.T) {
	testCases := []struct {
		name         string
		form         string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantLocation string
	}{
		{
			name: "adds and redirects home",
			form: "sku=SKU1001&qty=2",
			mockBehavior: func(m handlerMocks) {
				m.cart.EXPECT().
					AddItem(mock.Anything, entities.DefaultCartID, "SKU1001", 2).
					Return("Aurora Ceramic Mug", nil).Once()
			},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/?added=true&product=" + url.QueryEscape("Aurora Ceramic Mug"),
		},
		{
			name: "missing qty defaults to one",
			form: "sku=SKU1001",
			mockBehavior: func(m handlerMocks) {
				m.cart.EXPECT().
					AddItem(mock.Anything, entities.DefaultCartID, "SKU1001", 1).
					Return("Aurora Ceramic Mug", nil).Once()
			},
			wantStatus: http.StatusSeeOther,
		},
		{
			name: "oversized qty is clamped",
			form: "sku=SKU1001&qty=50",
			mockBehavior: func(m handlerMocks) {
				m.cart.EXPECT().
					AddItem(mock.Anything, entities.DefaultCartID, "SKU1001", 10).
					Return("Aurora Ceramic Mug", nil).Once()
			},
			wantStatus: http.StatusSeeOther,
		},
		{
			name: "non-positive qty is raised to one",
			form: "sku=SKU1001&qty=-3",
			mockBehavior: func(m handlerMocks) {
				m.cart.EXPECT().
					AddItem(mock.Anything, entities.DefaultCartID, "SKU1001", 1).
					Return("Aurora Ceramic Mug", nil).Once()
			},
			wantStatus: http.StatusSeeOther,
		},
		{
			name: "malformed qty defaults to one",
			form: "sku=SKU1001&qty=abc",
			mockBehavior: func(m handlerMocks) {
				m.cart.EXPECT().
					AddItem(mock.Anything, entities.DefaultCartID, "SKU1001", 1).
					Return("Aurora Ceramic Mug", nil).Once()
			},
			wantStatus: http.StatusSeeOther,
		},
		{
			name: "unknown sku",
			form: "sku=SKU9999",
			mockBehavior: func(m handlerMocks) {
				m.cart.EXPECT().
					AddItem(mock.Anything, entities.DefaultCartID, "SKU9999", 1).
					Return("", entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:         "missing sku",
			form:         "qty=2",
			mockBehavior: func(_ handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			tc.mockBehavior(m)

			res := serve(t, h, formRequest(http.MethodPost, "/cart/add", tc.form))
			defer res.Body.Close()

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantLocation != "" {
				assert.Equal(t, tc.wantLocation, res.Header.Get("Location"))
			}
		})
	}
}

func TestHTTPHandler_ViewCart(t *testing.T) {
	h, m := newTestHandler(t)

	m.cart.EXPECT().
		GetCart(mock.Anything, entities.DefaultCartID).
		Return(entities.Cart{
			Items: []entities.CartItem{
				{SKU: "SKU1001", Name: "Aurora Ceramic Mug", Price: decimal.RequireFromString("14.99"), Qty: 2},
			},
			Subtotal: decimal.RequireFromString("29.98"),
		}, nil).Once()

	res := serve(t, h, httptest.NewRequest(http.MethodGet, "/cart", nil))
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), `"subtotal":"29.98"`)
	assert.Contains(t, string(body), `"qty":2`)
}

func TestHTTPHandler_UpdateCart(t *testing.T) {
	testCases := []struct {
		name         string
		form         string
		mockBehavior func(m handlerMocks)
		wantStatus   int
	}{
		{
			name: "updates quantity and redirects",
			form: "sku=SKU1001&qty=3",
			mockBehavior: func(m handlerMocks) {
				m.cart.EXPECT().
					UpdateQuantity(mock.Anything, entities.DefaultCartID, "SKU1001", 3).
					Return(nil).Once()
			},
			wantStatus: http.StatusSeeOther,
		},
		{
			name: "malformed qty coerces to removal",
			form: "sku=SKU1001&qty=abc",
			mockBehavior: func(m handlerMocks) {
				m.cart.EXPECT().
					UpdateQuantity(mock.Anything, entities.DefaultCartID, "SKU1001", 0).
					Return(nil).Once()
			},
			wantStatus: http.StatusSeeOther,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			tc.mockBehavior(m)

			res := serve(t, h, formRequest(http.MethodPost, "/cart/update", tc.form))
			defer res.Body.Close()

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Equal(t, "/cart", res.Header.Get("Location"))
		})
	}
}

func TestHTTPHandler_RemoveFromCart(t *testing.T) {
	h, m := newTestHandler(t)

	m.cart.EXPECT().
		RemoveItem(mock.Anything, entities.DefaultCartID, "SKU1001").
		Return(nil).Once()

	res := serve(t, h, formRequest(http.MethodPost, "/cart/remove", "sku=SKU1001"))
	defer res.Body.Close()

	assert.Equal(t, http.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/cart", res.Header.Get("Location"))
}

func TestHTTPHandler_Checkout(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantLocation string
	}{
		{
			name: "redirects to the order confirmation",
			mockBehavior: func(m handlerMocks) {
				m.checkout.EXPECT().
					Checkout(mock.Anything, entities.DefaultCartID).
					Return("7e6f2c4a-9a1b-4f0e-8d3c-2b5a6c7d8e9f", nil).Once()
			},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/order/7e6f2c4a-9a1b-4f0e-8d3c-2b5a6c7d8e9f",
		},
		{
			name: "empty cart redirects back to the cart",
			mockBehavior: func(m handlerMocks) {
				m.checkout.EXPECT().
					Checkout(mock.Anything, entities.DefaultCartID).
					Return("", entities.ErrEmptyCart).Once()
			},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/cart",
		},
		{
			name: "store failure",
			mockBehavior: func(m handlerMocks) {
				m.checkout.EXPECT().
					Checkout(mock.Anything, entities.DefaultCartID).
					Return("", errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			tc.mockBehavior(m)

			res := serve(t, h, formRequest(http.MethodPost, "/checkout", ""))
			defer res.Body.Close()

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantLocation != "" {
				assert.Equal(t, tc.wantLocation, res.Header.Get("Location"))
			}
		})
	}
}

func TestHTTPHandler_GetOrderByID(t *testing.T) {
	validOrder := entities.Order{
		OrderID:  "7e6f2c4a-9a1b-4f0e-8d3c-2b5a6c7d8e9f",
		Subtotal: decimal.RequireFromString("25.00"),
		Tax:      decimal.RequireFromString("3.25"),
		Shipping: decimal.RequireFromString("20.00"),
		Total:    decimal.RequireFromString("48.25"),
	}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: validOrder.OrderID,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					GetOrderByID(mock.Anything, validOrder.OrderID).
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":"48.25"`,
		},
		{
			name:    "not found",
			orderID: "not-exist",
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "internal error",
			orderID: validOrder.OrderID,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					GetOrderByID(mock.Anything, validOrder.OrderID).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			tc.mockBehavior(m)

			res := serve(t, h, httptest.NewRequest(http.MethodGet, "/order/"+tc.orderID, nil))
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}
