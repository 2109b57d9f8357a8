package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

const (
	defaultTradesLimit = 50
	maxTradesLimit     = 1000
)

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.hub.Latest()
	if !ok {
		http.Error(w, "No data yet", http.StatusServiceUnavailable)
		return
	}
	s.writeJSON(w, snap)
}

func (s *Server) handleTrades(w http.ResponseWriter, r *http.Request) {
	limit := defaultTradesLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(n, maxTradesLimit)
	}

	var err error
	var events any
	if symbol := r.URL.Query().Get("symbol"); symbol != "" {
		events, err = s.tradeRepo.ListTradeEventsBySymbol(r.Context(), symbol, limit)
	} else {
		events, err = s.tradeRepo.ListTradeEvents(r.Context(), limit)
	}
	if err != nil {
		s.logger.Error("Failed to list trade events", zap.Error(err))
		http.Error(w, "Failed to list trades", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, events)
}

func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	snap, ok := s.hub.Latest()
	if !ok {
		w.Write([]byte("Waiting for data...\n"))
		return
	}
	w.Write([]byte(snap.Text()))
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response", zap.Error(err))
	}
}
