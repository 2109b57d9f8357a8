package usecase

import (
	"sort"

	"github.com/vitos/crypto_trade_learner/internal/domain"
)

type SymbolStats struct {
	Symbol      string
	Opens       int
	TakeProfits int
	StopLosses  int
	// Sum of per-trade profit ratios of closed trades whose opening event is
	// also in the input.
	NetReturn float64
}

func (s SymbolStats) Closed() int {
	return s.TakeProfits + s.StopLosses
}

// WinRate is the share of closed trades that hit take-profit.
func (s SymbolStats) WinRate() float64 {
	if s.Closed() == 0 {
		return 0
	}
	return float64(s.TakeProfits) / float64(s.Closed())
}

// SummarizeTrades aggregates events per symbol. Events may come in any
// order; they are sorted by time before pairing opens with closes.
func SummarizeTrades(events []*domain.TradeEvent) []SymbolStats {
	sorted := make([]*domain.TradeEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time.Before(sorted[j].Time)
	})

	stats := make(map[string]*SymbolStats)
	openSide := make(map[string]domain.Side)

	for _, e := range sorted {
		st, ok := stats[e.Symbol]
		if !ok {
			st = &SymbolStats{Symbol: e.Symbol}
			stats[e.Symbol] = st
		}
		switch e.Action {
		case domain.ActionOpenLong:
			st.Opens++
			openSide[e.Symbol] = domain.SideLong
		case domain.ActionOpenShort:
			st.Opens++
			openSide[e.Symbol] = domain.SideShort
		case domain.ActionTP, domain.ActionSL:
			if e.Action == domain.ActionTP {
				st.TakeProfits++
			} else {
				st.StopLosses++
			}
			if side, ok := openSide[e.Symbol]; ok {
				st.NetReturn += ProfitRatio(side, e.EntryPrice, e.Price)
				delete(openSide, e.Symbol)
			}
		}
	}

	result := make([]SymbolStats, 0, len(stats))
	for _, st := range stats {
		result = append(result, *st)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Symbol < result[j].Symbol
	})
	return result
}
