package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gpa-calculator/config"
	httpLayer "gpa-calculator/http"
	"gpa-calculator/repository"
	"gpa-calculator/service"
)

func newLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// openStorage returns the snapshot store and the result cache for the
// configured backend.
func openStorage(ctx context.Context, cfg config.Config) (repository.Store, repository.CacheRepository, error) {
	switch cfg.Store {
	case config.StoreRedis:
		client := repository.NewRedisClient(cfg.RedisAddr)
		store, err := repository.NewRedisStore(ctx, client)
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return store, repository.NewRedisCache(client, cfg.CacheTTL), nil
	case config.StoreSQLite:
		store, err := repository.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, repository.NewMemoryCache(cfg.CacheEntries), nil
	default:
		return repository.NewMemoryStore(), repository.NewMemoryCache(cfg.CacheEntries), nil
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogDevelopment)
	if err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, cache, err := openStorage(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open storage", zap.String("store", cfg.Store), zap.Error(err))
	}
	defer store.Close()

	narrator := service.NewNarrator(service.NarratorConfig{
		APIKey: cfg.OpenAIKey,
		URL:    cfg.OpenAIURL,
		Model:  cfg.OpenAIModel,
	}, logger)

	gradeService := service.NewGradeService(store, cache, narrator, logger)
	themeService := service.NewThemeService(store, logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	go rateLimiter.Run(ctx)

	router := httpLayer.NewRouter(httpLayer.RouterConfig{
		Grades:  gradeService,
		Themes:  themeService,
		Limiter: rateLimiter,
		Metrics: httpLayer.NewMetrics(),
		Logger:  logger,
	})

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second, // el narrador puede tardar hasta 30s
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("GPA calculator listening", zap.String("addr", cfg.Addr), zap.String("store", cfg.Store))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		logger.Error("server failed", zap.Error(err))
		return
	case <-ctx.Done():
		logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
