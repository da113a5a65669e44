package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pricelens/backend/config"
	httpDelivery "github.com/pricelens/backend/internal/delivery/http"
	"github.com/pricelens/backend/internal/domain"
	"github.com/pricelens/backend/internal/infrastructure/cache"
	"github.com/pricelens/backend/internal/infrastructure/catalog"
	"github.com/pricelens/backend/internal/infrastructure/fx"
	"github.com/pricelens/backend/internal/infrastructure/history"
	"github.com/pricelens/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PriceLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Search delay: %s, debug=%v", cfg.Search.Delay, cfg.Search.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize infrastructure dependencies
	store := catalog.NewStaticStore()
	log.Printf("[CATALOG] Loaded %d countries", len(store.Countries()))

	memoryCache := cache.NewMemoryCache(cfg.Cache.TTL)
	defer memoryCache.Close()
	log.Printf("Cache Type: %s (TTL %s, search results cached: %v)", cfg.Cache.Type, cfg.Cache.TTL, cfg.Cache.Enabled)

	historyRepo, closeHistory, err := openHistory(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to open search history storage: %v", err)
	}
	defer closeHistory()

	var converter *usecase.CurrencyConverter
	if cfg.FX.Enabled {
		fxClient := fx.NewClient(cfg.FX.BaseURL)
		fxClient.SetDebug(cfg.FX.Debug || cfg.Server.Environment == "development")

		reference := domain.Currency(strings.ToUpper(cfg.FX.ReferenceCurrency))
		converter = usecase.NewCurrencyConverter(fxClient, memoryCache, reference, cfg.FX.TTL)
		log.Printf("[FX] Converting prices to %s via %s", reference, cfg.FX.BaseURL)
	} else {
		log.Printf("[FX] Currency conversion disabled")
	}

	// Initialize usecase layer
	resolver := usecase.NewResolver(store, usecase.NewClassifier(), nil)
	searchService := usecase.NewSearchService(
		store,
		resolver,
		memoryCache,
		historyRepo,
		converter,
		usecase.SearchServiceConfig{
			Delay:              cfg.Search.Delay,
			CacheTTL:           cfg.Cache.TTL,
			CacheEnabled:       cfg.Cache.Enabled,
			RecentLimit:        cfg.Storage.HistoryLimit,
			EnableDebugLogging: cfg.Search.Debug,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(searchService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}

// openHistory builds the configured search history store
func openHistory(ctx context.Context, cfg config.StorageConfig) (domain.SearchHistoryRepository, func(), error) {
	if cfg.Type == "postgres" {
		pg, err := history.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("[HISTORY] Using PostgreSQL storage")
		return pg, func() {
			if err := pg.Close(); err != nil {
				log.Printf("[HISTORY] Close error: %v", err)
			}
		}, nil
	}

	log.Printf("[HISTORY] Using in-memory storage (last %d searches)", cfg.HistoryLimit)
	return history.NewMemoryStore(cfg.HistoryLimit), func() {}, nil
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
