package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iliyamo/bmi-calculator/internal/bmi"
	"github.com/iliyamo/bmi-calculator/internal/config"
	"github.com/iliyamo/bmi-calculator/internal/handler"
	"github.com/iliyamo/bmi-calculator/internal/middleware"
	"github.com/iliyamo/bmi-calculator/internal/queue"
	"github.com/iliyamo/bmi-calculator/internal/router"
)

func main() {
	cfg := config.Load() // Load environment config
	config.SetupLogger(cfg.LogLevel, !cfg.IsProd())

	rdb := config.NewRedisClient(config.LoadRedisConfig()) // nil when Redis is unavailable
	if rdb != nil {
		defer rdb.Close()
	}

	qcfg := config.LoadQueueConfig()
	evaluator := bmi.NewEvaluator(bmi.WithThresholds(cfg.Thresholds))
	h := handler.NewBMIHandler(evaluator, queue.NewPublisher(qcfg))

	e := router.New(router.Deps{
		Handler:   h,
		RateLimit: middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		Cache:     middleware.NewRedisCache(config.LoadCacheConfig().Scoped(cfg.Thresholds.Name), rdb),
	})

	addr := ":" + cfg.Port
	log.Info().
		Str("addr", addr).
		Str("env", cfg.Env).
		Str("thresholds", cfg.Thresholds.Name).
		Bool("redis", rdb != nil).
		Bool("events", qcfg.Enabled).
		Msg("listening")

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
