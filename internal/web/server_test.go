package web_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitos/crypto_trade_learner/internal/domain"
	"github.com/vitos/crypto_trade_learner/internal/web"
	"go.uber.org/zap"
)

type MockTradeRepo struct {
	Events     []*domain.TradeEvent
	LastLimit  int
	LastSymbol string
}

func (m *MockTradeRepo) SaveTradeEvent(ctx context.Context, event *domain.TradeEvent) error {
	m.Events = append(m.Events, event)
	return nil
}

func (m *MockTradeRepo) ListTradeEvents(ctx context.Context, limit int) ([]*domain.TradeEvent, error) {
	m.LastLimit = limit
	return m.Events, nil
}

func (m *MockTradeRepo) ListTradeEventsBySymbol(ctx context.Context, symbol string, limit int) ([]*domain.TradeEvent, error) {
	m.LastLimit = limit
	m.LastSymbol = symbol
	var out []*domain.TradeEvent
	for _, e := range m.Events {
		if e.Symbol == symbol {
			out = append(out, e)
		}
	}
	return out, nil
}

func testSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Time:      time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Available: true,
		Instruments: []domain.InstrumentView{
			{Symbol: "BTC_USDT", HasData: true, Price: 104, History: []float64{103, 104}, Decision: domain.DecisionBuy, BuyFactor: 1.002, SellFactor: 0.998},
			{Symbol: "ETH_USDT"},
		},
	}
}

func newTestServer(t *testing.T) (*web.Hub, *MockTradeRepo, *httptest.Server) {
	t.Helper()
	hub := web.NewHub(zap.NewNop())
	repo := &MockTradeRepo{}
	srv := httptest.NewServer(web.NewServer(0, hub, repo, zap.NewNop()).Handler())
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, repo, srv
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestServer_State(t *testing.T) {
	hub, _, srv := newTestServer(t)

	code, _ := get(t, srv.URL+"/api/state")
	assert.Equal(t, http.StatusServiceUnavailable, code)

	hub.Publish(testSnapshot())

	code, body := get(t, srv.URL+"/api/state")
	require.Equal(t, http.StatusOK, code)

	var snap domain.Snapshot
	require.NoError(t, json.Unmarshal([]byte(body), &snap))
	require.Len(t, snap.Instruments, 2)
	assert.Equal(t, domain.DecisionBuy, snap.Instruments[0].Decision)
	assert.False(t, snap.Instruments[1].HasData)
}

func TestServer_Text(t *testing.T) {
	hub, _, srv := newTestServer(t)

	_, body := get(t, srv.URL+"/")
	assert.Equal(t, "Waiting for data...\n", body)

	hub.Publish(testSnapshot())
	_, body = get(t, srv.URL+"/")
	assert.True(t, strings.HasPrefix(body, "BTC_USDT: Current 104.00\n"))
	assert.Contains(t, body, "BUY Threshold: 1.0020 | SELL Threshold: 0.9980")
	assert.Contains(t, body, "ETH_USDT: Failed to fetch")
}

func TestServer_Trades(t *testing.T) {
	_, repo, srv := newTestServer(t)
	repo.Events = []*domain.TradeEvent{
		{Symbol: "BTC_USDT", Price: 101.5, Action: domain.ActionTP, EntryPrice: 100},
		{Symbol: "ETH_USDT", Price: 3000, Action: domain.ActionOpenShort},
	}

	code, body := get(t, srv.URL+"/api/trades")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 50, repo.LastLimit)
	var events []domain.TradeEvent
	require.NoError(t, json.Unmarshal([]byte(body), &events))
	assert.Len(t, events, 2)

	code, body = get(t, srv.URL+"/api/trades?symbol=ETH_USDT&limit=5")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 5, repo.LastLimit)
	assert.Equal(t, "ETH_USDT", repo.LastSymbol)
	require.NoError(t, json.Unmarshal([]byte(body), &events))
	require.Len(t, events, 1)
	assert.Equal(t, domain.ActionOpenShort, events[0].Action)

	code, _ = get(t, srv.URL+"/api/trades?limit=abc")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestHub_WebsocketPush(t *testing.T) {
	hub, _, srv := newTestServer(t)
	hub.Publish(testSnapshot())

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	// Latest snapshot is sent on connect.
	var first domain.Snapshot
	require.NoError(t, conn.ReadJSON(&first))
	assert.True(t, first.Available)

	next := testSnapshot()
	next.Available = false
	hub.Publish(next)

	var second domain.Snapshot
	require.NoError(t, conn.ReadJSON(&second))
	assert.False(t, second.Available)
}
