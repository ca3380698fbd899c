package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/ninecards/storefront/internal/config"
	"github.com/ninecards/storefront/internal/entities"
	"github.com/ninecards/storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

type CartService interface {
	AddItem(ctx context.Context, cartID, sku string, qty int) (string, error)
	UpdateQuantity(ctx context.Context, cartID, sku string, qty int) error
	RemoveItem(ctx context.Context, cartID, sku string) error
	GetCart(ctx context.Context, cartID string) (entities.Cart, error)
	CartCount(ctx context.Context, cartID string) (int, error)
}

type CheckoutService interface {
	Checkout(ctx context.Context, cartID string) (string, error)
}

type OrderGetter interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
}

type ProductLister interface {
	ListProducts(ctx context.Context, limit int) ([]entities.Product, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate

	catalog  ProductLister
	cart     CartService
	checkout CheckoutService
	orders   OrderGetter

	pageSize  int
	maxAddQty int
}

func NewHTTPHandler(
	logger *slog.Logger,
	catalog ProductLister,
	cart CartService,
	checkout CheckoutService,
	orders OrderGetter,
	catalogCfg config.Catalog,
	checkoutCfg config.Checkout,
) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  validator.New(),
		catalog:   catalog,
		cart:      cart,
		checkout:  checkout,
		orders:    orders,
		pageSize:  catalogCfg.PageSize,
		maxAddQty: checkoutCfg.MaxAddQty,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/", h.Home)
	r.Post("/cart/add", h.AddToCart)
	r.Get("/cart", h.ViewCart)
	r.Post("/cart/update", h.UpdateCart)
	r.Post("/cart/remove", h.RemoveFromCart)
	r.Post("/checkout", h.Checkout)
	r.Get("/order/{order_id}", h.GetOrderByID)
}

// Home returns the catalog page model: the first products, the cart badge
// count and an optional success banner built from the add-to-cart redirect
// query params.
func (h *HTTPHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		products []entities.Product
		count    int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = h.catalog.ListProducts(gctx, h.pageSize)
		return err
	})
	g.Go(func() error {
		var err error
		count, err = h.cart.CartCount(gctx, entities.DefaultCartID)
		return err
	})

	if err := g.Wait(); err != nil {
		h.logger.ErrorContext(ctx, "failed to load home page", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var successMessage string
	if r.URL.Query().Get("added") != "" {
		successMessage = fmt.Sprintf("%s added to cart!", r.URL.Query().Get("product"))
	}

	utils.WriteJSON(w, HomePage{
		Products:       ProductsEntityToJSON(products),
		CartCount:      count,
		SuccessMessage: successMessage,
	}, http.StatusOK)
}

func (h *HTTPHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sku := r.PostFormValue("sku")
	if err := h.validate.Var(sku, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	qty := h.clampAddQty(utils.FormInt(r, "qty", 1))

	name, err := h.cart.AddItem(ctx, entities.DefaultCartID, sku, qty)

	if errors.Is(err, entities.ErrProductNotFound) {
		utils.WriteError(w, "product not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to add item to cart", slog.Any("error", err), slog.String("sku", sku))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	cartAddsTotal.Inc()
	http.Redirect(w, r, "/?added=true&product="+url.QueryEscape(name), http.StatusSeeOther)
}

func (h *HTTPHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cart, err := h.cart.GetCart(ctx, entities.DefaultCartID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load cart", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

func (h *HTTPHandler) UpdateCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sku := r.PostFormValue("sku")
	if err := h.validate.Var(sku, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	// Malformed quantity input coerces to zero, which removes the line
	// item. Updates are deliberately not clamped the way adds are.
	qty := utils.FormInt(r, "qty", 0)

	if err := h.cart.UpdateQuantity(ctx, entities.DefaultCartID, sku, qty); err != nil {
		h.logger.ErrorContext(ctx, "failed to update cart", slog.Any("error", err), slog.String("sku", sku))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (h *HTTPHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sku := r.PostFormValue("sku")
	if err := h.validate.Var(sku, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.cart.RemoveItem(ctx, entities.DefaultCartID, sku); err != nil {
		h.logger.ErrorContext(ctx, "failed to remove item from cart", slog.Any("error", err), slog.String("sku", sku))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := h.checkout.Checkout(ctx, entities.DefaultCartID)

	if errors.Is(err, entities.ErrEmptyCart) {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	if err != nil {
		checkoutsFailed.Inc()
		h.logger.ErrorContext(ctx, "failed to process checkout", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	checkoutsTotal.Inc()
	http.Redirect(w, r, "/order/"+orderID, http.StatusSeeOther)
}

func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.GetOrderByID(ctx, orderID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) clampAddQty(qty int) int {
	if qty < 1 {
		return 1
	}
	if qty > h.maxAddQty {
		return h.maxAddQty
	}
	return qty
}
