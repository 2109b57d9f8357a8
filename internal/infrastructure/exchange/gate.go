package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	GateBaseURL     = "https://api.gateio.ws"
	gateTickersPath = "/api/v4/futures/usdt/tickers"
)

// GateAdapter reads last-traded prices for USDT perpetual contracts from
// Gate.io. All contracts come back in one request.
type GateAdapter struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewGateAdapter(baseURL string, timeout time.Duration, logger *zap.Logger) *GateAdapter {
	if baseURL == "" {
		baseURL = GateBaseURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &GateAdapter{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type gateTicker struct {
	Contract string `json:"contract"`
	Last     string `json:"last"`
}

// GetPrices returns contract -> last price. Entries with an unparsable or
// non-positive price are left out.
func (g *GateAdapter) GetPrices(ctx context.Context) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+gateTickersPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gate tickers request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gate tickers read: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("gate API error (%d): %s", resp.StatusCode, string(body))
	}

	var tickers []gateTicker
	if err := json.Unmarshal(body, &tickers); err != nil {
		return nil, fmt.Errorf("gate tickers decode: %w", err)
	}

	prices := make(map[string]float64, len(tickers))
	for _, t := range tickers {
		if t.Contract == "" {
			continue
		}
		d, err := decimal.NewFromString(t.Last)
		if err != nil || !d.IsPositive() {
			g.logger.Debug("Skipping malformed ticker", zap.String("contract", t.Contract), zap.String("last", t.Last))
			continue
		}
		prices[t.Contract] = d.InexactFloat64()
	}
	return prices, nil
}

// GetCurrentPrice is a convenience wrapper over GetPrices for one symbol.
func (g *GateAdapter) GetCurrentPrice(ctx context.Context, symbol string) (float64, error) {
	prices, err := g.GetPrices(ctx)
	if err != nil {
		return 0, err
	}
	price, ok := prices[symbol]
	if !ok {
		return 0, fmt.Errorf("symbol not found: %s", symbol)
	}
	return price, nil
}
