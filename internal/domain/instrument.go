package domain

import "time"

// InstrumentState is everything the loop keeps for one instrument. It is
// owned by the scheduler and mutated only from its tick.
type InstrumentState struct {
	Symbol       string
	History      *PriceHistory
	Position     Position
	Thresholds   Thresholds
	LastPrice    float64
	LastDecision Decision
	HasData      bool // false when the latest tick had no price for this symbol
	UpdatedAt    time.Time
}

func NewInstrumentState(symbol string, history *PriceHistory, thresholds Thresholds) *InstrumentState {
	return &InstrumentState{
		Symbol:       symbol,
		History:      history,
		Thresholds:   thresholds,
		LastDecision: DecisionHold,
	}
}
