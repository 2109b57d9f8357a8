package usecase

import "github.com/vitos/crypto_trade_learner/internal/domain"

const (
	DefaultTakeProfit = 0.01
	DefaultStopLoss   = 0.005
)

// DecisionEngine maps the current market view of one instrument to a decision.
// It never mutates its inputs.
type DecisionEngine struct {
	takeProfit float64
	stopLoss   float64
}

func NewDecisionEngine(takeProfit, stopLoss float64) *DecisionEngine {
	return &DecisionEngine{
		takeProfit: takeProfit,
		stopLoss:   stopLoss,
	}
}

func (e *DecisionEngine) Decide(price float64, history *domain.PriceHistory, thresholds domain.Thresholds, pos domain.Position) domain.Decision {
	if history.Len() < history.MinSamples() {
		return domain.DecisionHold
	}

	// Exits win over trend; when neither fires we still fall through to the
	// trend check so the reported decision reflects the averages.
	if pos.HasEntry() {
		switch pos.Side {
		case domain.SideLong:
			if price >= pos.EntryPrice*(1+e.takeProfit) {
				return domain.DecisionTP
			} else if price <= pos.EntryPrice*(1-e.stopLoss) {
				return domain.DecisionSL
			}
		case domain.SideShort:
			if price <= pos.EntryPrice*(1-e.takeProfit) {
				return domain.DecisionTP
			} else if price >= pos.EntryPrice*(1+e.stopLoss) {
				return domain.DecisionSL
			}
		}
	}

	short, err := history.ShortAverage()
	if err != nil {
		return domain.DecisionHold
	}
	long, err := history.LongAverage()
	if err != nil {
		return domain.DecisionHold
	}

	// Factors may have crossed after learning; compare literally.
	if short > long*thresholds.BuyFactor {
		return domain.DecisionBuy
	}
	if short < long*thresholds.SellFactor {
		return domain.DecisionSell
	}
	return domain.DecisionHold
}
