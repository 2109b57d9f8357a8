package domain

import "errors"

const (
	DefaultHistoryCap  = 50
	DefaultShortWindow = 3
	DefaultLongWindow  = 5
)

var ErrInsufficientHistory = errors.New("insufficient price history")

// PriceHistory is a bounded, most-recent-last window of prices for one
// instrument. Callers must validate prices before Append.
type PriceHistory struct {
	cap         int
	shortWindow int
	longWindow  int
	prices      []float64
}

func NewPriceHistory(size, shortWindow, longWindow int) *PriceHistory {
	if size <= 0 {
		size = DefaultHistoryCap
	}
	if shortWindow <= 0 {
		shortWindow = DefaultShortWindow
	}
	if longWindow <= 0 {
		longWindow = DefaultLongWindow
	}
	return &PriceHistory{
		cap:         size,
		shortWindow: shortWindow,
		longWindow:  longWindow,
		prices:      make([]float64, 0, size+1),
	}
}

func (h *PriceHistory) Append(price float64) {
	h.prices = append(h.prices, price)
	if len(h.prices) > h.cap {
		// Copy down instead of reslicing so the backing array stays bounded.
		n := copy(h.prices, h.prices[len(h.prices)-h.cap:])
		h.prices = h.prices[:n]
	}
}

func (h *PriceHistory) Len() int {
	return len(h.prices)
}

func (h *PriceHistory) Cap() int {
	return h.cap
}

// MinSamples is the number of prices required before averages are defined.
func (h *PriceHistory) MinSamples() int {
	if h.shortWindow > h.longWindow {
		return h.shortWindow
	}
	return h.longWindow
}

func (h *PriceHistory) ShortAverage() (float64, error) {
	return h.average(h.shortWindow)
}

func (h *PriceHistory) LongAverage() (float64, error) {
	return h.average(h.longWindow)
}

func (h *PriceHistory) average(window int) (float64, error) {
	if len(h.prices) < h.MinSamples() {
		return 0, ErrInsufficientHistory
	}
	sum := 0.0
	for _, p := range h.prices[len(h.prices)-window:] {
		sum += p
	}
	return sum / float64(window), nil
}

// Last returns a copy of the most recent n prices, oldest first.
func (h *PriceHistory) Last(n int) []float64 {
	if n > len(h.prices) {
		n = len(h.prices)
	}
	if n < 0 {
		n = 0
	}
	out := make([]float64, n)
	copy(out, h.prices[len(h.prices)-n:])
	return out
}

// Values returns a copy of the whole window.
func (h *PriceHistory) Values() []float64 {
	return h.Last(len(h.prices))
}
