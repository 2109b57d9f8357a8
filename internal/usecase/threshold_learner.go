package usecase

import "github.com/vitos/crypto_trade_learner/internal/domain"

const DefaultLearningFactor = 0.0005

// ThresholdLearner nudges an instrument's thresholds after each closed trade:
// a win makes the next entry easier, a loss makes it harder. The drift is
// not bounded.
type ThresholdLearner struct {
	step float64
}

func NewThresholdLearner(step float64) *ThresholdLearner {
	return &ThresholdLearner{step: step}
}

func (l *ThresholdLearner) Update(th *domain.Thresholds, side domain.Side, entryPrice, exitPrice float64) {
	if th == nil || side == domain.SideFlat || entryPrice <= 0 || exitPrice <= 0 {
		return
	}

	profitRatio := ProfitRatio(side, entryPrice, exitPrice)
	switch {
	case profitRatio > 0:
		th.BuyFactor -= l.step
		th.SellFactor += l.step
	case profitRatio < 0:
		th.BuyFactor += l.step
		th.SellFactor -= l.step
	}
}

// ProfitRatio is the relative gain from the holder's point of view.
func ProfitRatio(side domain.Side, entryPrice, exitPrice float64) float64 {
	if entryPrice == 0 {
		return 0
	}
	ratio := (exitPrice - entryPrice) / entryPrice
	if side == domain.SideShort {
		ratio = -ratio
	}
	return ratio
}
