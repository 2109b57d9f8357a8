package journal

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/vitos/crypto_trade_learner/internal/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

// FileSink appends one text line per trade event.
type FileSink struct {
	path string
	mu   sync.Mutex
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) Record(ctx context.Context, event domain.TradeEvent) error {
	line := FormatLine(event)

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open trade log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write trade log: %w", err)
	}
	return nil
}

// FormatLine renders
// "<time> | <symbol> | Price: <price> | Action: <action> | <extra>\n".
func FormatLine(event domain.TradeEvent) string {
	extra := ""
	if event.IsClose() {
		extra = "Entry:" + FormatEntry(event.EntryPrice)
	}
	return fmt.Sprintf("%s | %s | Price: %.2f | Action: %s | %s\n",
		event.Time.Format(timestampLayout), event.Symbol, event.Price, event.Action, extra)
}

// FormatEntry prints the shortest decimal that round-trips, always keeping a
// fractional part: 100 -> "100.0", 101.25 -> "101.25".
func FormatEntry(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
