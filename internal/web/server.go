package web

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vitos/crypto_trade_learner/internal/domain"
	"go.uber.org/zap"
)

type Server struct {
	router    *http.ServeMux
	server    *http.Server
	hub       *Hub
	tradeRepo domain.TradeEventRepository
	logger    *zap.Logger
}

func NewServer(
	port int,
	hub *Hub,
	tradeRepo domain.TradeEventRepository,
	logger *zap.Logger,
) *Server {
	s := &Server{
		router:    http.NewServeMux(),
		hub:       hub,
		tradeRepo: tradeRepo,
		logger:    logger,
	}
	s.routes()
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.router,
	}
	return s
}

func (s *Server) routes() {
	// Plain text view of every instrument
	s.router.HandleFunc("GET /{$}", s.handleText)

	// JSON
	s.router.HandleFunc("GET /api/state", s.handleState)
	s.router.HandleFunc("GET /api/trades", s.handleTrades)

	// Live updates
	s.router.HandleFunc("GET /ws", s.hub.ServeWS)
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	s.logger.Info("Starting web server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	return s.server.Shutdown(ctx)
}
