package strategy

import (
	"context"

	"github.com/jiaming2012/breakout-backtest/src/backtester/models"
	"github.com/jiaming2012/breakout-backtest/src/eventmodels"
	"github.com/jiaming2012/breakout-backtest/src/indicators"
)

const BuyAndHoldStrategyName = "buy_and_hold"

// BuyAndHoldStrategy enters on the first bar and never signals an exit. The
// simulation loop force-closes the position on the final bar so the run ends
// with exactly one completed trade, reported as "End of Period".
type BuyAndHoldStrategy struct {
	bought bool
}

func NewBuyAndHoldStrategy() *BuyAndHoldStrategy {
	return &BuyAndHoldStrategy{}
}

func (s *BuyAndHoldStrategy) Name() string {
	return BuyAndHoldStrategyName
}

func (s *BuyAndHoldStrategy) OnBar(_ context.Context, _ eventmodels.Bar, _ indicators.RollingExtremesStats, _ bool, position *models.Position, _ models.StrategyConfig) (models.Action, error) {
	if !s.bought && !position.IsLong() {
		s.bought = true
		return models.NewEnterLongAction(), nil
	}

	return models.NewNoAction(), nil
}
