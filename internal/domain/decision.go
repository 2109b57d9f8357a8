package domain

type Decision string

const (
	DecisionHold Decision = "HOLD"
	DecisionBuy  Decision = "BUY"
	DecisionSell Decision = "SELL"
	DecisionTP   Decision = "TP"
	DecisionSL   Decision = "SL"
)

// IsExit reports whether d closes an open position.
func (d Decision) IsExit() bool {
	return d == DecisionTP || d == DecisionSL
}

// Thresholds are the multiplicative factors applied to the long moving
// average before comparing it with the short one.
type Thresholds struct {
	BuyFactor  float64 `json:"buy_factor"`
	SellFactor float64 `json:"sell_factor"`
}

const (
	DefaultBuyFactor  = 1.002
	DefaultSellFactor = 0.998
)

func DefaultThresholds() Thresholds {
	return Thresholds{BuyFactor: DefaultBuyFactor, SellFactor: DefaultSellFactor}
}
