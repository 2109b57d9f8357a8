package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitos/crypto_trade_learner/internal/domain"
)

func TestPriceHistory_Cap(t *testing.T) {
	h := domain.NewPriceHistory(50, 3, 5)
	for i := 1; i <= 51; i++ {
		h.Append(float64(i))
	}

	require.Equal(t, 50, h.Len())
	values := h.Values()
	assert.NotContains(t, values, 1.0)
	for i, v := range values {
		assert.Equal(t, float64(i+2), v)
	}
}

func TestPriceHistory_NeverExceedsCap(t *testing.T) {
	h := domain.NewPriceHistory(50, 3, 5)
	for i := 0; i < 500; i++ {
		h.Append(100 + float64(i%7))
		assert.LessOrEqual(t, h.Len(), 50)
	}
}

func TestPriceHistory_Averages(t *testing.T) {
	h := domain.NewPriceHistory(50, 3, 5)
	for _, p := range []float64{100, 101, 102, 103} {
		h.Append(p)
	}

	_, err := h.ShortAverage()
	assert.ErrorIs(t, err, domain.ErrInsufficientHistory)
	_, err = h.LongAverage()
	assert.ErrorIs(t, err, domain.ErrInsufficientHistory)

	h.Append(104)
	short, err := h.ShortAverage()
	require.NoError(t, err)
	long, err := h.LongAverage()
	require.NoError(t, err)
	assert.InDelta(t, 103.0, short, 1e-9)
	assert.InDelta(t, 102.0, long, 1e-9)
}

func TestPriceHistory_Last(t *testing.T) {
	h := domain.NewPriceHistory(50, 3, 5)
	assert.Empty(t, h.Last(10))

	for i := 1; i <= 12; i++ {
		h.Append(float64(i))
	}
	last := h.Last(10)
	assert.Equal(t, []float64{3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, last)

	last[0] = -1
	assert.Equal(t, 3.0, h.Last(10)[0], "Last must return a copy")
}
