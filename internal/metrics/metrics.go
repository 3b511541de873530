// Package metrics exposes Prometheus counters for the order pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the pipeline counters. All counters are optional signals:
// nothing in the pipeline branches on them.
type Metrics struct {
	registry *prometheus.Registry

	OrdersCreated  prometheus.Counter
	CheckoutErrors prometheus.Counter

	// RenderAttempts counts per-engine render outcomes, labelled
	// engine={styled,vector} and outcome={ok,error}.
	RenderAttempts *prometheus.CounterVec
	// RenderFallbacks counts documents that were produced by a non-primary
	// engine after the primary failed.
	RenderFallbacks prometheus.Counter

	// EmailSends counts per-channel delivery outcomes, labelled
	// channel={customer,internal} and outcome={ok,error}.
	EmailSends *prometheus.CounterVec
}

// New creates the pipeline metrics on a private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := func(name, help string) prometheus.Counter {
		c := prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mpeshop",
			Name:      name,
			Help:      help,
		})
		registry.MustRegister(c)

		return c
	}

	m := &Metrics{
		registry:        registry,
		OrdersCreated:   factory("orders_created_total", "Orders committed by checkout."),
		CheckoutErrors:  factory("checkout_errors_total", "Checkout attempts that failed before commit."),
		RenderFallbacks: factory("document_render_fallbacks_total", "Documents produced by a fallback engine."),
		RenderAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mpeshop",
			Name:      "document_render_attempts_total",
			Help:      "Render attempts by engine and outcome.",
		}, []string{"engine", "outcome"}),
		EmailSends: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mpeshop",
			Name:      "email_sends_total",
			Help:      "Email delivery attempts by channel and outcome.",
		}, []string{"channel", "outcome"}),
	}
	registry.MustRegister(m.RenderAttempts, m.EmailSends)

	return m
}

// Handler returns the scrape endpoint for the private registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRender records one engine attempt.
func (m *Metrics) ObserveRender(engine string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.RenderAttempts.WithLabelValues(engine, outcome).Inc()
}

// ObserveEmail records one channel delivery attempt.
func (m *Metrics) ObserveEmail(channel string, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	m.EmailSends.WithLabelValues(channel, outcome).Inc()
}
