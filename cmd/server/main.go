package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dgallion1/clearprose/internal/analyzer"
	"github.com/dgallion1/clearprose/internal/api"
	"github.com/dgallion1/clearprose/internal/cache"
	"github.com/dgallion1/clearprose/internal/config"
	"github.com/dgallion1/clearprose/internal/idgen"
	"github.com/dgallion1/clearprose/internal/logging"
	"github.com/dgallion1/clearprose/internal/pipeline"
	"github.com/dgallion1/clearprose/internal/telemetry"
)

func main() {
	// A missing .env is normal outside development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("load .env", "error", err)
		os.Exit(1)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log, closeLog, err := logging.New(logging.Options{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	})
	if err != nil {
		slog.Error("init logging", "error", err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the result cache.
	resultCache, err := cache.New(ctx, cache.Options{
		Backend:       cfg.CacheBackend,
		Size:          cfg.CacheSize,
		TTL:           cfg.CacheTTL,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
		Prefix:        cfg.RedisPrefix,
	})
	if err != nil {
		log.Error("init cache", "backend", cfg.CacheBackend, "error", err)
		os.Exit(1)
	}

	ids, err := idgen.ByName(cfg.IDScheme)
	if err != nil {
		log.Error("init ids", "error", err)
		os.Exit(1)
	}

	metrics := telemetry.NewMetrics()
	latency := telemetry.NewLatency(cfg.LatencyWindow)

	// Initialize pipeline.
	runner := pipeline.NewRunner(pipeline.RunnerOptions{
		Analyzer: analyzer.New(nil),
		Cache:    resultCache,
		CacheTTL: cfg.CacheTTL,
		IDs:      ids,
		Metrics:  metrics,
		Latency:  latency,
		Log:      log,
	})
	orch := pipeline.NewOrchestrator(cfg, runner, metrics, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, metrics, latency, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown. Stop accepting requests before the queue closes.
	done := make(chan struct{})
	go func() {
		defer close(done)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Warn("http shutdown", "error", err)
		}

		orch.Stop()
		if err := resultCache.Close(); err != nil {
			log.Warn("close cache", "error", err)
		}
	}()

	log.Info("starting clearprose",
		"port", cfg.Port,
		"cache", cfg.CacheBackend,
		"workers", cfg.WorkerCount,
		"target", cfg.DefaultTarget,
		"auth", cfg.APIKey != "",
	)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	<-done
	log.Info("stopped")
}
