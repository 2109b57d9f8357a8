package domain

import "time"

type Side string

const (
	SideFlat  Side = ""
	SideLong  Side = "LONG"
	SideShort Side = "SHORT"
)

// Position is the simulated position held for one instrument.
// EntryPrice is zero while Flat.
type Position struct {
	Side       Side    `json:"side"`
	EntryPrice float64 `json:"entry_price"`
}

func (p Position) IsOpen() bool {
	return p.Side != SideFlat
}

// HasEntry reports whether an entry price is recorded.
func (p Position) HasEntry() bool {
	return p.EntryPrice > 0
}

type Action string

const (
	ActionOpenLong  Action = "OPEN_LONG"
	ActionOpenShort Action = "OPEN_SHORT"
	ActionTP        Action = "TP"
	ActionSL        Action = "SL"
)

// TradeEvent is emitted once per position open or close.
type TradeEvent struct {
	Time       time.Time `json:"time"`
	Symbol     string    `json:"symbol"`
	Price      float64   `json:"price"`
	Action     Action    `json:"action"`
	EntryPrice float64   `json:"entry_price,omitempty"` // set on TP/SL only
}

// IsClose reports whether the event completed a trade.
func (e TradeEvent) IsClose() bool {
	return e.Action == ActionTP || e.Action == ActionSL
}
