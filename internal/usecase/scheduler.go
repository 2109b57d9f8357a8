package usecase

import (
	"context"
	"math"
	"time"

	"github.com/vitos/crypto_trade_learner/internal/domain"
	"go.uber.org/zap"
)

type SchedulerConfig struct {
	Symbols      []string
	Interval     time.Duration
	FetchTimeout time.Duration
	HistoryCap   int
	ShortWindow  int
	LongWindow   int
	Thresholds   domain.Thresholds // initial value for every instrument
}

// Scheduler runs one synchronous pass over all instruments per interval.
// All instrument state is owned by the goroutine calling Tick/Run.
type Scheduler struct {
	config    SchedulerConfig
	source    domain.PriceSource
	sink      domain.TradeSink
	engine    *DecisionEngine
	manager   *PositionManager
	observers []domain.StateObserver
	logger    *zap.Logger

	states  map[string]*domain.InstrumentState
	timeNow func() time.Time
}

func NewScheduler(
	config SchedulerConfig,
	source domain.PriceSource,
	sink domain.TradeSink,
	engine *DecisionEngine,
	manager *PositionManager,
	logger *zap.Logger,
	observers ...domain.StateObserver,
) *Scheduler {
	if config.Interval <= 0 {
		config.Interval = 3 * time.Second
	}
	if config.FetchTimeout <= 0 {
		config.FetchTimeout = 5 * time.Second
	}

	states := make(map[string]*domain.InstrumentState, len(config.Symbols))
	for _, symbol := range config.Symbols {
		history := domain.NewPriceHistory(config.HistoryCap, config.ShortWindow, config.LongWindow)
		states[symbol] = domain.NewInstrumentState(symbol, history, config.Thresholds)
	}

	return &Scheduler{
		config:    config,
		source:    source,
		sink:      sink,
		engine:    engine,
		manager:   manager,
		observers: observers,
		logger:    logger,
		states:    states,
		timeNow:   time.Now,
	}
}

// Run ticks immediately and then every interval until ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info("Starting scheduler",
		zap.Strings("symbols", s.config.Symbols),
		zap.Duration("interval", s.config.Interval))

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	s.Tick(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler stopped")
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick fetches prices once and processes every instrument in configured order.
func (s *Scheduler) Tick(ctx context.Context) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.config.FetchTimeout)
	prices, err := s.source.GetPrices(fetchCtx)
	cancel()

	if err != nil {
		s.logger.Warn("Price fetch failed, skipping tick", zap.Error(err))
		for _, symbol := range s.config.Symbols {
			s.states[symbol].HasData = false
		}
		s.publish(false)
		return
	}

	for _, symbol := range s.config.Symbols {
		state := s.states[symbol]
		price, ok := prices[symbol]
		if !ok || !validPrice(price) {
			if ok {
				s.logger.Warn("Ignoring invalid price", zap.String("symbol", symbol), zap.Float64("price", price))
			} else {
				s.logger.Debug("No price this cycle", zap.String("symbol", symbol))
			}
			state.HasData = false
			continue
		}
		s.process(ctx, state, price)
	}

	s.publish(true)
}

func (s *Scheduler) process(ctx context.Context, state *domain.InstrumentState, price float64) {
	state.History.Append(price)
	decision := s.engine.Decide(price, state.History, state.Thresholds, state.Position)

	event := s.manager.Apply(state, decision, price)

	state.LastPrice = price
	state.LastDecision = decision
	state.HasData = true
	state.UpdatedAt = s.timeNow()

	if event == nil {
		return
	}

	fields := []zap.Field{
		zap.String("symbol", event.Symbol),
		zap.String("action", string(event.Action)),
		zap.Float64("price", event.Price),
	}
	if event.IsClose() {
		fields = append(fields,
			zap.Float64("entry", event.EntryPrice),
			zap.Float64("buy_factor", state.Thresholds.BuyFactor),
			zap.Float64("sell_factor", state.Thresholds.SellFactor))
	}
	s.logger.Info("Trade event", fields...)

	// The transition already happened; a failed write does not undo it.
	if err := s.sink.Record(ctx, *event); err != nil {
		s.logger.Error("Failed to record trade event", zap.String("symbol", event.Symbol), zap.Error(err))
	}
}

func (s *Scheduler) publish(available bool) {
	if len(s.observers) == 0 {
		return
	}
	snap := s.Snapshot()
	snap.Available = available
	for _, o := range s.observers {
		o.Publish(snap)
	}
}

// State returns a copy of the state for symbol.
func (s *Scheduler) State(symbol string) (domain.InstrumentState, bool) {
	st, ok := s.states[symbol]
	if !ok {
		return domain.InstrumentState{}, false
	}
	return *st, true
}

func validPrice(p float64) bool {
	return p > 0 && !math.IsInf(p, 0) && !math.IsNaN(p)
}
