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

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/shikshasetu/examsearch/internal/config"
	"github.com/shikshasetu/examsearch/internal/db"
	dbRedis "github.com/shikshasetu/examsearch/internal/db/redis"
	"github.com/shikshasetu/examsearch/internal/domain"
	logpkg "github.com/shikshasetu/examsearch/internal/logger"
	"github.com/shikshasetu/examsearch/internal/metrics"
	contentrepo "github.com/shikshasetu/examsearch/internal/repository/content"
	"github.com/shikshasetu/examsearch/internal/repository/embcache"
	chiTransport "github.com/shikshasetu/examsearch/internal/transport/chi"
	openaiProv "github.com/shikshasetu/examsearch/internal/transport/openai"
	agentuc "github.com/shikshasetu/examsearch/internal/usecase/agent"
	contactuc "github.com/shikshasetu/examsearch/internal/usecase/contact"
	embeddinguc "github.com/shikshasetu/examsearch/internal/usecase/embedding"
	healthuc "github.com/shikshasetu/examsearch/internal/usecase/health"
	searchuc "github.com/shikshasetu/examsearch/internal/usecase/search"
	"github.com/shikshasetu/examsearch/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting examsearch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("cache_addrs", cfg.Cache.Addrs),
	)

	metrics.RegisterSearchMetrics()

	ctx := context.Background()

	// Optional Redis store for the embedding cache. Empty addrs disables it.
	var store db.Store
	if len(cfg.Cache.Addrs) > 0 {
		redisStore, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer redisStore.Close()

		readiness := time.Duration(cfg.Cache.ReadinessTimeout) * time.Second
		if err := redisStore.WaitForReady(ctx, readiness); err != nil {
			logger.Fatal("Cache not ready", zap.Error(err))
		}
		logger.Info("Connected to embedding cache")
		store = redisStore
	}

	embedder, embedderMode, healthChecker := buildEmbedder(cfg, store, logger)
	logger.Info("Embedder created",
		zap.String("mode", embedderMode),
		zap.String("model", cfg.Embedding.Model),
		zap.Int("dimensions", cfg.Embedding.Dimensions),
	)

	// Text generation rides on the same provider credentials; without them
	// answers and suggestions come from the canned templates.
	var textgen domain.TextGenerator
	if cfg.Embedding.APIKey != "" {
		textgen = openaiProv.NewTextGenerator(&openaiProv.Config{
			APIKey:    cfg.Embedding.APIKey,
			BaseURL:   cfg.Embedding.BaseURL,
			ChatModel: cfg.Embedding.ChatModel,
			Logger:    logger,
		})
	}

	contentRepo := contentrepo.New(logger)

	searchSvc, err := searchuc.New(contentRepo, embedder, textgen, logger).
		WithLimits(cfg.Search.DefaultLimit, cfg.Search.MaxLimit, cfg.Search.SuggestionLimit).
		WithWorkers(cfg.Search.ScoringWorkers)
	if err != nil {
		logger.Fatal("Failed to create search service", zap.Error(err))
	}
	defer searchSvc.Close()

	agentSvc := agentuc.New(searchSvc, textgen, logger)
	contactSvc := contactuc.New(
		contactuc.NewRateLimiter(cfg.Contact.HourlyLimit, cfg.Contact.DailyLimit), logger)

	var cachePinger healthuc.CachePinger
	if store != nil {
		cachePinger = store
	}
	healthSvc := healthuc.New(cachePinger, healthChecker, embedderMode)

	server := chiTransport.NewServer(searchSvc, agentSvc, contactSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	r.Mount("/", server.Routes())

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildEmbedder assembles the embedding chain. With provider credentials the
// chain is OpenAI -> optional cache -> deterministic fallback; without them
// the hash embedder serves directly so search works out of the box.
func buildEmbedder(cfg config.Config, store db.Store, logger *zap.Logger) (domain.Embedder, string, healthuc.EmbeddingChecker) {
	hash := domain.NewHashEmbedder(cfg.Embedding.Dimensions)

	if cfg.Embedding.APIKey == "" {
		return hash, "hash", nil
	}

	remote := openaiProv.NewEmbedder(&openaiProv.Config{
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Logger:     logger,
	})

	var embedder domain.Embedder = remote
	if store != nil {
		embedder = embcache.New(embedder, store, metrics.EmbeddingCacheTotal, logger)
	}

	return embeddinguc.NewFallbackEmbedder(embedder, hash, logger), "remote", remote
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]any{
						"error":   "internal error",
						"success": false,
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
