package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cartAddsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "http",
		Name:      "cart_adds_total",
		Help:      "Total number of successful add-to-cart requests.",
	})

	checkoutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "http",
		Name:      "checkouts_total",
		Help:      "Total number of successful checkouts.",
	})

	checkoutsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "http",
		Name:      "checkouts_failed_total",
		Help:      "Total number of failed checkout attempts.",
	})
)
