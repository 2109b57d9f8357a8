package storage_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitos/crypto_trade_learner/internal/domain"
	"github.com/vitos/crypto_trade_learner/internal/infrastructure/storage"
)

func TestSQLiteStore_TradeEvents(t *testing.T) {
	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	events := []domain.TradeEvent{
		{Time: ts, Symbol: "BTC_USDT", Price: 100, Action: domain.ActionOpenLong},
		{Time: ts.Add(3 * time.Second), Symbol: "ETH_USDT", Price: 3000, Action: domain.ActionOpenShort},
		{Time: ts.Add(6 * time.Second), Symbol: "BTC_USDT", Price: 101.5, Action: domain.ActionTP, EntryPrice: 100},
	}
	for _, e := range events {
		require.NoError(t, store.Record(ctx, e))
	}

	all, err := store.ListTradeEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest first
	assert.Equal(t, domain.ActionTP, all[0].Action)
	assert.Equal(t, 100.0, all[0].EntryPrice)
	assert.Equal(t, 101.5, all[0].Price)
	assert.True(t, all[0].Time.Equal(ts.Add(6*time.Second)))

	btc, err := store.ListTradeEventsBySymbol(ctx, "BTC_USDT", 10)
	require.NoError(t, err)
	require.Len(t, btc, 2)
	assert.Equal(t, domain.ActionOpenLong, btc[1].Action)
	assert.Zero(t, btc[1].EntryPrice)

	limited, err := store.ListTradeEvents(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
