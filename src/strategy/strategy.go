// Package strategy contains the per-bar decision logic that drives the
// simulation loop. A strategy sees the current bar, the rolling extremes
// computed from strictly prior bars, and the live position; it answers with
// exactly one action.
package strategy

import (
	"context"
	"fmt"

	"github.com/jiaming2012/breakout-backtest/src/backtester/models"
	"github.com/jiaming2012/breakout-backtest/src/eventmodels"
	"github.com/jiaming2012/breakout-backtest/src/indicators"
)

type Strategy interface {
	Name() string

	// OnBar is called once per bar, in chronological order. extremesReady is
	// false while the lookback window is still warming up; strategies must
	// not enter during warmup.
	OnBar(ctx context.Context, bar eventmodels.Bar, extremes indicators.RollingExtremesStats, extremesReady bool, position *models.Position, cfg models.StrategyConfig) (models.Action, error)
}

// New returns a fresh strategy instance by name. Each run needs its own
// instance because strategies may carry per-run state.
func New(name string) (Strategy, error) {
	switch name {
	case BreakoutStrategyName:
		return NewBreakoutStrategy(), nil
	case BuyAndHoldStrategyName:
		return NewBuyAndHoldStrategy(), nil
	default:
		return nil, fmt.Errorf("strategy.New: found %q: %w", name, models.ErrUnknownStrategy)
	}
}
