package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/vitos/crypto_trade_learner/internal/config"
	"github.com/vitos/crypto_trade_learner/internal/infrastructure/exchange"
	"go.uber.org/zap"
)

func main() {
	configPath := "config/config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Testing price source...\n")
	fmt.Printf("Endpoint: %s\n", cfg.Exchange.RESTEndpoint)

	adapter := exchange.NewGateAdapter(cfg.Exchange.RESTEndpoint, cfg.FetchTimeout(), zap.NewNop())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	prices, err := adapter.GetPrices(ctx)
	if err != nil {
		fmt.Printf("❌ Failed to get prices: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ %d contracts in %s\n", len(prices), time.Since(start).Round(time.Millisecond))

	for _, symbol := range cfg.Instruments {
		if price, ok := prices[symbol]; ok {
			fmt.Printf("✅ %s: %.2f\n", symbol, price)
		} else {
			fmt.Printf("⚠️ %s: no data\n", symbol)
		}
	}
}
