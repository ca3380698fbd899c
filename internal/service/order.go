package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/ninecards/storefront/internal/entities"
	"github.com/ninecards/storefront/pkg/utils"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
}

type OrderCache interface {
	Get(key string) (entities.Order, bool)
	Set(key string, value entities.Order)
}

type orderService struct {
	logger *slog.Logger
	repo   OrderRepo
	cache  OrderCache
}

func NewOrderService(logger *slog.Logger, repo OrderRepo, cache OrderCache) *orderService {
	return &orderService{
		logger: logger.With(slog.String("service", "order")),
		repo:   repo,
		cache:  cache,
	}
}

// GetOrderByID serves the stored order verbatim, amounts are never
// recomputed on read.
func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if order, ok := s.cache.Get(orderID); ok {
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	s.cache.Set(orderID, order)
	return order, nil
}

// WarmUpCache preloads the most recent orders so confirmation pages opened
// right after a restart do not all hit the database.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return err
	}

	for _, order := range orders {
		s.cache.Set(order.OrderID, order)
	}

	s.logger.Info("order cache warmed up", slog.Int("orders", len(orders)))
	return nil
}
