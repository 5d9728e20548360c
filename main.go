package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"filmhay-backend/config"
	"filmhay-backend/handlers"
	"filmhay-backend/logger"
	"filmhay-backend/middleware"
	"filmhay-backend/services"
)

func main() {
	configPath := flag.StringP("config", "c", "", "path to a config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.New(logger.Config{}).Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Path:   cfg.Logging.Path,
	})
	defer func() { _ = log.Close() }()

	// Initialize services
	store := services.NewMovieStore(services.WithStoreLogger(log.WithComponent("store").Logger))
	n, err := services.SeedCatalog(store, cfg.Catalog.SeedPath, log.WithComponent("seed").Logger)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Catalog.SeedPath).Msg("failed to seed catalog")
	}
	log.Info().Int("records", n).Str("path", cfg.Catalog.SeedPath).Msg("catalog seeded")

	catalog := services.NewCatalogService(store, nil, log.WithComponent("catalog").Logger)

	// Initialize handlers
	apiLog := log.WithComponent("api").Logger
	r := handlers.NewRouter(
		handlers.NewMovieHandler(store, catalog, apiLog),
		handlers.NewCatalogHandler(catalog, apiLog),
	)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		defer limiter.Stop()
	}

	// Set up CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      corsHandler.Handler(withMiddleware(r, apiLog, limiter)),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Strs("origins", cfg.CORS.AllowedOrigins).
			Bool("rate_limit", cfg.RateLimit.Enabled).
			Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server failed")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}

	if err := store.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close store")
	}
	log.Info().Msg("server stopped")
}

// withMiddleware wraps the router itself so unmatched routes are logged too.
// Recover sits inside Logging so recovered panics are logged with their 500.
func withMiddleware(h http.Handler, apiLog zerolog.Logger, limiter *middleware.RateLimiter) http.Handler {
	if limiter != nil {
		h = limiter.Middleware(h)
	}
	h = middleware.Recover(apiLog)(h)
	h = middleware.Logging(apiLog)(h)
	return middleware.RequestID(h)
}
