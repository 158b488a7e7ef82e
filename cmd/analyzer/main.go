package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/analysis"
	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/api"
	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/cache"
	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/config"
	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/data"
	"github.com/sakshikhedkar45-commits/Stockanalysis/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting analysis service",
		logger.String("provider", cfg.Provider.Name),
		logger.Int("port", cfg.API.Port),
		logger.Bool("cache_enabled", cfg.Cache.Enabled),
		logger.Int("rate_limit_rps", cfg.API.RateLimitRPS),
	)

	// Initialize market data provider
	providerFactory := data.NewProviderFactory()
	provider, err := providerFactory.CreateProvider(cfg.Provider.Name, data.ProviderConfig{
		BaseURL:   cfg.Provider.BaseURL,
		UserAgent: cfg.Provider.UserAgent,
		Timeout:   cfg.Provider.Timeout,
	})
	if err != nil {
		logger.Fatal("Failed to initialize market data provider",
			logger.ErrorField(err),
		)
	}

	// Initialize bundle cache
	var bundleCache cache.Cache
	if cfg.Cache.Enabled {
		redisCache, err := cache.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Fatal("Failed to initialize Redis cache",
				logger.ErrorField(err),
			)
		}
		bundleCache = redisCache
	} else {
		bundleCache = cache.NewNoop()
	}
	defer bundleCache.Close()

	// Initialize analysis service
	service := analysis.NewService(provider, bundleCache, analysis.Options{
		EnableEMAOverlay: cfg.Analysis.EnableEMAOverlay,
		EMAPeriod:        cfg.Analysis.EMAPeriod,
		IntradayTTL:      cfg.Cache.IntradayTTL,
		DailyTTL:         cfg.Cache.DailyTTL,
	})

	// Initialize handlers
	analysisHandler := api.NewAnalysisHandler(service)

	// Set up router
	router := mux.NewRouter()

	// API v1 routes
	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/analysis/{symbol}", analysisHandler.HandleAnalysis).Methods("GET")
	v1.HandleFunc("/timeframes", analysisHandler.HandleTimeframes).Methods("GET")

	// Health check endpoints
	router.HandleFunc("/health", analysisHandler.HandleHealth)

	router.HandleFunc("/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "alive"})
	})

	// Metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Apply middleware
	middlewares := api.ChainMiddleware(
		api.CORSMiddleware(),
		api.RequestIDMiddleware(),
		api.LoggingMiddleware(),
		api.RecoveryMiddleware(),
		api.RateLimitMiddleware(cfg.API.RateLimitRPS),
	)

	handler := middlewares(router)

	// Start HTTP server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.API.Port),
		Handler: handler,
	}

	go func() {
		logger.Info("Starting HTTP server",
			logger.String("addr", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start HTTP server",
				logger.ErrorField(err),
			)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	logger.Info("Shutting down analysis service")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Error shutting down HTTP server",
			logger.ErrorField(err),
		)
	}

	logger.Info("Analysis service stopped")
}
