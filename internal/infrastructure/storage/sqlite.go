package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/vitos/crypto_trade_learner/internal/domain"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS trade_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			symbol TEXT NOT NULL,
			action TEXT NOT NULL,
			price REAL NOT NULL,
			entry_price REAL NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_trade_events_symbol ON trade_events(symbol);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return fmt.Errorf("failed to exec query %s: %w", q, err)
		}
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// TradeEventRepository Implementation

func (s *SQLiteStore) SaveTradeEvent(ctx context.Context, event *domain.TradeEvent) error {
	query := `INSERT INTO trade_events (symbol, action, price, entry_price, created_at)
			  VALUES (?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		event.Symbol, string(event.Action), event.Price, event.EntryPrice, event.Time.UTC())
	return err
}

func (s *SQLiteStore) ListTradeEvents(ctx context.Context, limit int) ([]*domain.TradeEvent, error) {
	query := `SELECT symbol, action, price, entry_price, created_at FROM trade_events ORDER BY id DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTradeEvents(rows)
}

func (s *SQLiteStore) ListTradeEventsBySymbol(ctx context.Context, symbol string, limit int) ([]*domain.TradeEvent, error) {
	query := `SELECT symbol, action, price, entry_price, created_at FROM trade_events WHERE symbol = ? ORDER BY id DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, symbol, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTradeEvents(rows)
}

// Record lets the store act as a trade sink.
func (s *SQLiteStore) Record(ctx context.Context, event domain.TradeEvent) error {
	return s.SaveTradeEvent(ctx, &event)
}

func scanTradeEvents(rows *sql.Rows) ([]*domain.TradeEvent, error) {
	var events []*domain.TradeEvent
	for rows.Next() {
		var e domain.TradeEvent
		var action string
		if err := rows.Scan(&e.Symbol, &action, &e.Price, &e.EntryPrice, &e.Time); err != nil {
			return nil, err
		}
		e.Action = domain.Action(action)
		events = append(events, &e)
	}
	return events, rows.Err()
}
