package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/vitos/crypto_trade_learner/internal/domain"
	"github.com/vitos/crypto_trade_learner/internal/infrastructure/journal"
	"github.com/vitos/crypto_trade_learner/internal/infrastructure/storage"
	"github.com/vitos/crypto_trade_learner/internal/usecase"
)

func main() {
	dbPath := flag.String("db", "bot.db", "sqlite database path")
	limit := flag.Int("limit", 20, "number of recent events to print")
	symbol := flag.String("symbol", "", "only show this instrument")
	flag.Parse()

	store, err := storage.NewSQLiteStore(*dbPath)
	if err != nil {
		fmt.Printf("Failed to init sqlite: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	list := func(n int) ([]*domain.TradeEvent, error) {
		if *symbol != "" {
			return store.ListTradeEventsBySymbol(ctx, *symbol, n)
		}
		return store.ListTradeEvents(ctx, n)
	}

	recent, err := list(*limit)
	if err != nil {
		fmt.Printf("Failed to list trade events: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Last %d trade events:\n", len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		fmt.Print(journal.FormatLine(*recent[i]))
	}

	all, err := list(-1)
	if err != nil {
		fmt.Printf("Failed to list trade events: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nSummary:\n")
	for _, st := range usecase.SummarizeTrades(all) {
		fmt.Printf("- %s: opens=%d tp=%d sl=%d win=%.1f%% net=%.4f%%\n",
			st.Symbol, st.Opens, st.TakeProfits, st.StopLosses, st.WinRate()*100, st.NetReturn*100)
	}
}
