package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ninecards/storefront/internal/config"
	"github.com/ninecards/storefront/internal/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
)

var (
	eventsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "events",
		Name:      "orders_published_total",
		Help:      "Total number of order created events published.",
	})

	eventsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "events",
		Name:      "orders_publish_failed_total",
		Help:      "Total number of order created events that failed to publish.",
	})
)

// orderCreated is the wire format of the order event. Amounts are decimal
// strings, consumers must not parse them as floats.
type orderCreated struct {
	OrderID   string             `json:"order_id"`
	Items     []orderCreatedItem `json:"items"`
	Subtotal  string             `json:"subtotal"`
	Tax       string             `json:"tax"`
	Shipping  string             `json:"shipping"`
	Total     string             `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
}

type orderCreatedItem struct {
	SKU             string `json:"sku"`
	Name            string `json:"name"`
	Price           string `json:"price"`
	Qty             int    `json:"qty"`
	PriceAtPurchase string `json:"price_at_purchase"`
}

type kafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (p *kafkaPublisher) PublishOrderCreated(ctx context.Context, order entities.Order) error {
	items := make([]orderCreatedItem, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, orderCreatedItem{
			SKU:             it.SKU,
			Name:            it.Name,
			Price:           it.Price.StringFixed(2),
			Qty:             it.Qty,
			PriceAtPurchase: it.PriceAtPurchase.StringFixed(2),
		})
	}

	value, err := json.Marshal(orderCreated{
		OrderID:   order.OrderID,
		Items:     items,
		Subtotal:  order.Subtotal.StringFixed(2),
		Tax:       order.Tax.StringFixed(2),
		Shipping:  order.Shipping.StringFixed(2),
		Total:     order.Total.StringFixed(2),
		CreatedAt: order.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal order created event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(order.OrderID),
		Value: value,
	}

	// The writer retries internally before giving up.
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		eventsFailed.Inc()
		return fmt.Errorf("failed to publish order created event: %w", err)
	}

	eventsPublished.Inc()
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
