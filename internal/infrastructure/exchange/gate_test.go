package exchange_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitos/crypto_trade_learner/internal/infrastructure/exchange"
	"go.uber.org/zap"
)

func TestGateAdapter_GetPrices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v4/futures/usdt/tickers", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"contract":"BTC_USDT","last":"64123.5"},
			{"contract":"ETH_USDT","last":"3012.25"},
			{"contract":"BAD_USDT","last":"n/a"},
			{"contract":"ZERO_USDT","last":"0"},
			{"contract":"","last":"1"}
		]`))
	}))
	defer srv.Close()

	adapter := exchange.NewGateAdapter(srv.URL, time.Second, zap.NewNop())
	prices, err := adapter.GetPrices(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"BTC_USDT": 64123.5, "ETH_USDT": 3012.25}, prices)

	price, err := adapter.GetCurrentPrice(context.Background(), "ETH_USDT")
	require.NoError(t, err)
	assert.Equal(t, 3012.25, price)

	_, err = adapter.GetCurrentPrice(context.Background(), "SOL_USDT")
	assert.Error(t, err)
}

func TestGateAdapter_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	adapter := exchange.NewGateAdapter(srv.URL, time.Second, zap.NewNop())
	_, err := adapter.GetPrices(context.Background())
	assert.Error(t, err)
}

func TestGateAdapter_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	adapter := exchange.NewGateAdapter(srv.URL, 20*time.Millisecond, zap.NewNop())
	_, err := adapter.GetPrices(context.Background())
	assert.Error(t, err)
}

func TestGateAdapter_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"label":"INVALID"}`))
	}))
	defer srv.Close()

	adapter := exchange.NewGateAdapter(srv.URL, time.Second, zap.NewNop())
	_, err := adapter.GetPrices(context.Background())
	assert.Error(t, err)
}
