package strategy

import (
	"context"

	"github.com/jiaming2012/breakout-backtest/src/backtester/models"
	"github.com/jiaming2012/breakout-backtest/src/eventmodels"
	"github.com/jiaming2012/breakout-backtest/src/indicators"
)

const BreakoutStrategyName = "breakout"

// BreakoutStrategy buys when the close breaks above the prior N-bar high and
// exits on the first matching condition: stop loss, take profit, then close
// below the prior N-bar low. The protective exits are checked first so the
// downside cap and profit lock are deterministic regardless of how slowly
// the rolling low catches up.
type BreakoutStrategy struct{}

func NewBreakoutStrategy() *BreakoutStrategy {
	return &BreakoutStrategy{}
}

func (s *BreakoutStrategy) Name() string {
	return BreakoutStrategyName
}

func (s *BreakoutStrategy) OnBar(_ context.Context, bar eventmodels.Bar, extremes indicators.RollingExtremesStats, extremesReady bool, position *models.Position, cfg models.StrategyConfig) (models.Action, error) {
	if position.IsLong() {
		if bar.Close <= position.StopPrice {
			return models.NewExitLongAction(models.ExitReasonStopLoss), nil
		}

		if bar.Close >= position.TargetPrice {
			return models.NewExitLongAction(models.ExitReasonTakeProfit), nil
		}

		if extremesReady && bar.Close < extremes.LowestLow {
			return models.NewExitLongAction(models.ExitReasonBreakout), nil
		}

		return models.NewNoAction(), nil
	}

	if extremesReady && bar.Close > extremes.HighestHigh {
		return models.NewEnterLongAction(), nil
	}

	return models.NewNoAction(), nil
}
