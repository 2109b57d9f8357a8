package journal

import (
	"context"

	"github.com/vitos/crypto_trade_learner/internal/domain"
	"go.uber.org/multierr"
)

// MultiSink fans an event out to every sink. One failing sink does not stop
// the others; all errors are returned combined.
type MultiSink struct {
	sinks []domain.TradeSink
}

func NewMultiSink(sinks ...domain.TradeSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) Record(ctx context.Context, event domain.TradeEvent) error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, s.Record(ctx, event))
	}
	return err
}
