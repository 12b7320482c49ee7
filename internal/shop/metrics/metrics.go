// Package metrics exposes Prometheus collectors for the storefront.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the storefront collectors behind one registry so tests
// can run several stacks side by side without collisions.
type Metrics struct {
	registry *prometheus.Registry

	// Transitions counts cart transitions by name and outcome.
	Transitions *prometheus.CounterVec
	// Orders counts orders confirmed at checkout.
	Orders prometheus.Counter
}

// New registers the storefront collectors on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "cart_transitions_total",
			Help:      "Cart transitions by transition name and outcome.",
		}, []string{"transition", "outcome"}),
		Orders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "orders_confirmed_total",
			Help:      "Orders confirmed at checkout.",
		}),
	}
	registry.MustRegister(
		m.Transitions,
		m.Orders,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Transition implements the cart transition recorder.
func (m *Metrics) Transition(name, outcome string) {
	m.Transitions.WithLabelValues(name, outcome).Inc()
}

// OrderConfirmed implements the checkout recorder.
func (m *Metrics) OrderConfirmed() {
	m.Orders.Inc()
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
