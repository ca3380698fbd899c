package main

import (
	"context"
	"encoding/json"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type orderItem struct {
	SKU             string `json:"sku"`
	Name            string `json:"name"`
	Qty             int    `json:"qty"`
	PriceAtPurchase string `json:"price_at_purchase"`
}

type orderCreated struct {
	OrderID   string      `json:"order_id"`
	Items     []orderItem `json:"items"`
	Subtotal  string      `json:"subtotal"`
	Tax       string      `json:"tax"`
	Shipping  string      `json:"shipping"`
	Total     string      `json:"total"`
	CreatedAt time.Time   `json:"created_at"`
}

// Reads the order-created topic and prints every event, handy for
// checking what the storefront actually publishes during manual runs.
func main() {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{"localhost:9092"},
		Topic:   "storefront.orders",
		GroupID: "event-tail",
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Println("read failed:", err)
			continue
		}

		var event orderCreated
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Println("malformed event:", err)
			continue
		}

		log.Printf("order %s: %d items, total %s", event.OrderID, len(event.Items), event.Total)
	}
}
