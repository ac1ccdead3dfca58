// Package data supplies historical bars to the engine. Acquisition from a
// live provider is a collaborator concern; the engine only depends on the
// BarLoader interface.
package data

import (
	"context"

	"github.com/jiaming2012/breakout-backtest/src/eventmodels"
)

type BarLoader interface {
	Load(ctx context.Context, symbol string) (*eventmodels.BarSeries, error)
}
