// Package testutil spins up the storefront HTTP stack for tests.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/tiendago/storefront/internal/shop/cart"
	"github.com/tiendago/storefront/internal/shop/catalog"
	"github.com/tiendago/storefront/internal/shop/checkout"
	"github.com/tiendago/storefront/internal/shop/flash"
	"github.com/tiendago/storefront/internal/shop/httpserver"
	"github.com/tiendago/storefront/internal/shop/metrics"
	"github.com/tiendago/storefront/internal/shop/slot"
)

var flashHashKey = []byte("storefront-test-hash-key-not-secret")

type config struct {
	catalog catalog.Catalog
	slots   slot.Store
	loadErr error
}

// Option customises the test server configuration.
type Option func(*config)

// WithCatalog seeds the cart store with cat instead of the default seed
// catalog.
func WithCatalog(cat catalog.Catalog) Option {
	return func(c *config) { c.catalog = cat }
}

// WithSlots wires a custom slot store, e.g. one pre-populated with a
// persisted cart snapshot.
func WithSlots(store slot.Store) Option {
	return func(c *config) { c.slots = store }
}

// WithLoadError simulates a failed catalog load: the store starts empty
// and the storefront page shows the load notice.
func WithLoadError(err error) Option {
	return func(c *config) {
		c.loadErr = err
		c.catalog = nil
	}
}

// Server bundles the httptest server with the stores behind it.
type Server struct {
	*httptest.Server
	Cart    *cart.Store
	Slots   slot.Store
	Metrics *metrics.Metrics
}

// NewServer constructs an httptest server running the storefront stack
// with sensible defaults.
func NewServer(t testing.TB, opts ...Option) *Server {
	t.Helper()

	cfg := config{catalog: catalog.Seed(), slots: slot.NewMemory()}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := metrics.New()
	if snapshot, ok := cart.Restore(context.Background(), cfg.slots); ok {
		cfg.catalog = snapshot
	}
	cartStore := cart.New(cfg.catalog, cfg.slots, cart.WithRecorder(m))
	checkoutSvc := checkout.NewService(cartStore, cfg.slots, checkout.WithRecorder(m))

	flashMgr, err := flash.NewManager(flash.Config{HashKey: flashHashKey})
	if err != nil {
		t.Fatalf("flash manager: %v", err)
	}

	srv := httpserver.New(httpserver.Config{
		Address:   ":0",
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Cart:      cartStore,
		Checkout:  checkoutSvc,
		Flash:     flashMgr,
		Metrics:   m,
		LoadError: cfg.loadErr,
	})

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return &Server{Server: ts, Cart: cartStore, Slots: cfg.slots, Metrics: m}
}

// NewClient returns an HTTP client with a cookie jar so flash notices
// survive the post-mutation redirect.
func NewClient(t testing.TB) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}
