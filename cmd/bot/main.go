package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vitos/crypto_trade_learner/internal/config"
	"github.com/vitos/crypto_trade_learner/internal/infrastructure/exchange"
	"github.com/vitos/crypto_trade_learner/internal/infrastructure/journal"
	"github.com/vitos/crypto_trade_learner/internal/infrastructure/logger"
	"github.com/vitos/crypto_trade_learner/internal/infrastructure/storage"
	"github.com/vitos/crypto_trade_learner/internal/usecase"
	"github.com/vitos/crypto_trade_learner/internal/web"
	"go.uber.org/zap"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	// 1. Load Config
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		cfg.Logging.Level = lvl
	}

	// 2. Init Logger
	log, err := logger.NewLogger(cfg.Logging.Level)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// 3. Init Storage
	store, err := storage.NewSQLiteStore(cfg.Journal.DBPath)
	if err != nil {
		log.Fatal("Failed to init sqlite", zap.Error(err))
	}
	defer store.Close()

	sink := journal.NewMultiSink(journal.NewFileSink(cfg.Journal.LogFile), store)

	// 4. Init Price Source
	gate := exchange.NewGateAdapter(cfg.Exchange.RESTEndpoint, cfg.FetchTimeout(), log)

	// 5. Init Decision Loop
	engine := usecase.NewDecisionEngine(cfg.Strategy.TakeProfit, cfg.Strategy.StopLoss)
	manager := usecase.NewPositionManager(usecase.NewThresholdLearner(cfg.Strategy.LearningFactor))
	hub := web.NewHub(log)

	scheduler := usecase.NewScheduler(usecase.SchedulerConfig{
		Symbols:      cfg.Instruments,
		Interval:     cfg.Interval(),
		FetchTimeout: cfg.FetchTimeout(),
		HistoryCap:   cfg.Strategy.HistoryCap,
		ShortWindow:  cfg.Strategy.ShortWindow,
		LongWindow:   cfg.Strategy.LongWindow,
		Thresholds:   cfg.Thresholds(),
	}, gate, sink, engine, manager, log, hub)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		scheduler.Run(ctx)
	}()

	// 6. Init Web Server
	server := web.NewServer(cfg.Server.Port, hub, store, log)
	go func() {
		if err := server.Start(); err != nil {
			log.Error("Server failed", zap.Error(err))
			stop()
		}
	}()

	// 7. Wait for Shutdown
	<-ctx.Done()
	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	<-done
}
