package usecase

import "github.com/vitos/crypto_trade_learner/internal/domain"

// Snapshot projects the current state of every instrument for display.
func (s *Scheduler) Snapshot() domain.Snapshot {
	snap := domain.Snapshot{
		Time:        s.timeNow(),
		Available:   true,
		Instruments: make([]domain.InstrumentView, 0, len(s.config.Symbols)),
	}
	for _, symbol := range s.config.Symbols {
		st := s.states[symbol]
		snap.Instruments = append(snap.Instruments, domain.InstrumentView{
			Symbol:     st.Symbol,
			HasData:    st.HasData,
			Price:      st.LastPrice,
			History:    st.History.Last(domain.DisplayHistoryLen),
			Decision:   st.LastDecision,
			BuyFactor:  st.Thresholds.BuyFactor,
			SellFactor: st.Thresholds.SellFactor,
			Position:   st.Position,
		})
	}
	return snap
}
