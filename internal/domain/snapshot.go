package domain

import (
	"fmt"
	"strings"
	"time"
)

// DisplayHistoryLen is how many recent prices a view carries.
const DisplayHistoryLen = 10

// InstrumentView is the read-only projection of one instrument.
type InstrumentView struct {
	Symbol     string    `json:"symbol"`
	HasData    bool      `json:"has_data"`
	Price      float64   `json:"price"`
	History    []float64 `json:"history"`
	Decision   Decision  `json:"decision"`
	BuyFactor  float64   `json:"buy_factor"`
	SellFactor float64   `json:"sell_factor"`
	Position   Position  `json:"position"`
}

// Snapshot is published after every tick.
type Snapshot struct {
	Time        time.Time        `json:"time"`
	Available   bool             `json:"available"` // false when the whole fetch failed
	Instruments []InstrumentView `json:"instruments"`
}

func (v InstrumentView) Text() string {
	if !v.HasData {
		return fmt.Sprintf("%s: Failed to fetch", v.Symbol)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: Current %.2f\nHistory:\n", v.Symbol, v.Price)
	for _, p := range v.History {
		fmt.Fprintf(&b, "%.2f\n", p)
	}
	fmt.Fprintf(&b, "AI: %s\n", v.Decision)
	fmt.Fprintf(&b, "BUY Threshold: %.4f | SELL Threshold: %.4f", v.BuyFactor, v.SellFactor)
	return b.String()
}

func (s Snapshot) Text() string {
	parts := make([]string, 0, len(s.Instruments))
	for _, v := range s.Instruments {
		parts = append(parts, v.Text())
	}
	return strings.Join(parts, "\n\n") + "\n"
}
