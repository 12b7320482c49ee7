package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/joho/godotenv"

	"github.com/tiendago/storefront/internal/shop/cart"
	"github.com/tiendago/storefront/internal/shop/catalog"
	"github.com/tiendago/storefront/internal/shop/checkout"
	"github.com/tiendago/storefront/internal/shop/flash"
	"github.com/tiendago/storefront/internal/shop/httpserver"
	"github.com/tiendago/storefront/internal/shop/metrics"
	"github.com/tiendago/storefront/internal/shop/slot"
	"github.com/tiendago/storefront/public"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	rootCtx := context.Background()

	slots, err := slot.NewSQLite(getEnv("SHOP_DB_PATH", "storefront.db"))
	if err != nil {
		log.Fatalf("open slot store: %v", err)
	}
	defer slots.Close()

	mets := metrics.New()

	store, loadErr := cart.Open(rootCtx, slots, buildSource(), cart.WithRecorder(mets))
	if loadErr != nil {
		logger.Error("catalog load failed", "error", loadErr)
	}

	svc := checkout.NewService(store, slots, checkout.WithRecorder(mets))

	notices, err := flash.NewManager(flash.Config{HashKey: flashHashKey(logger)})
	if err != nil {
		log.Fatalf("flash manager: %v", err)
	}

	srv := httpserver.New(httpserver.Config{
		Address:   getEnv("SHOP_HTTP_ADDR", ":3000"),
		Logger:    logger,
		Cart:      store,
		Checkout:  svc,
		Flash:     notices,
		Metrics:   mets,
		LoadError: loadErr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	logger.Info("storefront listening", "address", srv.Addr)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		cancel()
		stop()
		os.Exit(1)
	}
}

// buildSource picks the catalog source: a remote document when
// SHOP_CATALOG_URL is set, otherwise the embedded one.
func buildSource() catalog.Source {
	if base := os.Getenv("SHOP_CATALOG_URL"); base != "" {
		src, err := catalog.NewLoader(base, &http.Client{Timeout: 10 * time.Second})
		if err != nil {
			log.Fatalf("catalog loader: %v", err)
		}
		return src
	}

	static, err := public.StaticFS()
	if err != nil {
		log.Fatalf("embed static: %v", err)
	}
	return catalog.NewDocumentSource(static, "products.json")
}

// flashHashKey reads SHOP_FLASH_HASH_KEY or generates a per-process key.
// Generated keys invalidate outstanding notices on restart, which is
// acceptable for one-shot banners.
func flashHashKey(logger *slog.Logger) []byte {
	if v := os.Getenv("SHOP_FLASH_HASH_KEY"); v != "" {
		return []byte(v)
	}
	logger.Warn("SHOP_FLASH_HASH_KEY not set; using a generated key")
	return securecookie.GenerateRandomKey(32)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
