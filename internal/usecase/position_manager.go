package usecase

import (
	"time"

	"github.com/vitos/crypto_trade_learner/internal/domain"
)

// PositionManager drives the Flat/Long/Short state machine of one
// instrument from the engine's decision.
type PositionManager struct {
	learner *ThresholdLearner
	timeNow func() time.Time
}

func NewPositionManager(learner *ThresholdLearner) *PositionManager {
	return &PositionManager{
		learner: learner,
		timeNow: time.Now,
	}
}

// Apply performs the transition for decision at price and returns the trade
// event it produced, or nil when the position did not change.
func (m *PositionManager) Apply(state *domain.InstrumentState, decision domain.Decision, price float64) *domain.TradeEvent {
	pos := state.Position

	if !pos.IsOpen() {
		var side domain.Side
		var action domain.Action
		switch decision {
		case domain.DecisionBuy:
			side, action = domain.SideLong, domain.ActionOpenLong
		case domain.DecisionSell:
			side, action = domain.SideShort, domain.ActionOpenShort
		default:
			return nil
		}
		state.Position = domain.Position{Side: side, EntryPrice: price}
		return &domain.TradeEvent{
			Time:   m.timeNow(),
			Symbol: state.Symbol,
			Price:  price,
			Action: action,
		}
	}

	// Open positions are held until an exit fires.
	if !decision.IsExit() {
		return nil
	}

	m.learner.Update(&state.Thresholds, pos.Side, pos.EntryPrice, price)
	state.Position = domain.Position{}

	action := domain.ActionTP
	if decision == domain.DecisionSL {
		action = domain.ActionSL
	}
	return &domain.TradeEvent{
		Time:       m.timeNow(),
		Symbol:     state.Symbol,
		Price:      price,
		Action:     action,
		EntryPrice: pos.EntryPrice,
	}
}
