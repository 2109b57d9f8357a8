package domain

import "context"

// PriceSource returns the latest price per instrument in one batched request.
// A symbol missing from the map means "no data", not an error.
type PriceSource interface {
	GetPrices(ctx context.Context) (map[string]float64, error)
}

// TradeSink receives every trade event. Writes are best-effort.
type TradeSink interface {
	Record(ctx context.Context, event TradeEvent) error
}

// TradeEventRepository defines storage operations for trade events.
type TradeEventRepository interface {
	SaveTradeEvent(ctx context.Context, event *TradeEvent) error
	ListTradeEvents(ctx context.Context, limit int) ([]*TradeEvent, error)
	ListTradeEventsBySymbol(ctx context.Context, symbol string, limit int) ([]*TradeEvent, error)
}

// StateObserver is notified with a fresh snapshot after every tick.
type StateObserver interface {
	Publish(snapshot Snapshot)
}
