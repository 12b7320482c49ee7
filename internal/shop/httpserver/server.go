// Package httpserver assembles the storefront HTTP stack: routes, the
// middleware chain and the embedded static assets.
package httpserver

import (
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tiendago/storefront/internal/shop/cart"
	"github.com/tiendago/storefront/internal/shop/checkout"
	"github.com/tiendago/storefront/internal/shop/flash"
	custommw "github.com/tiendago/storefront/internal/shop/httpserver/middleware"
	"github.com/tiendago/storefront/internal/shop/httpserver/ui"
	"github.com/tiendago/storefront/internal/shop/metrics"
	"github.com/tiendago/storefront/public"
)

// Config holds runtime options for the storefront server.
type Config struct {
	Address  string
	Logger   *slog.Logger
	Cart     *cart.Store
	Checkout *checkout.Service
	Flash    *flash.Manager
	Metrics  *metrics.Metrics

	// LoadError carries a catalog load failure from startup so the
	// storefront page can surface the notice.
	LoadError error

	// Static overrides the embedded asset tree, mainly for tests.
	Static fs.FS
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) *http.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(custommw.RequestLogger(logger))
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(60 * time.Second))

	static := cfg.Static
	if static == nil {
		var err error
		static, err = public.StaticFS()
		if err != nil {
			log.Fatalf("embed static: %v", err)
		}
	}
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	handlers := ui.NewHandlers(ui.Dependencies{
		Cart:      cfg.Cart,
		Checkout:  cfg.Checkout,
		Flash:     cfg.Flash,
		Logger:    logger,
		LoadError: cfg.LoadError,
	})

	router.Get("/", handlers.Storefront)
	router.Post("/cart/add/{index}", handlers.CartAdd)
	router.Post("/cart/remove/{index}", handlers.CartRemove)
	router.Post("/cart/empty", handlers.CartEmpty)
	router.Get("/checkout", handlers.CheckoutPage)
	router.Post("/checkout", handlers.CheckoutConfirm)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if cfg.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	return &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
