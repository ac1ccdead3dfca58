// Package services contains the simulation loop and performance analysis
// that turn a bar series plus a strategy into a trade log, an equity curve,
// and a performance report.
package services

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/breakout-backtest/src/backtester/models"
	"github.com/jiaming2012/breakout-backtest/src/eventmodels"
	"github.com/jiaming2012/breakout-backtest/src/indicators"
	"github.com/jiaming2012/breakout-backtest/src/strategy"
)

// Backtest is the per-run context. It exclusively owns the live position,
// the trade log, and the equity curve; nothing else mutates them. A Backtest
// is single-use: construct one per run.
type Backtest struct {
	ID          uuid.UUID
	cfg         models.StrategyConfig
	initialCash float64
	cash        float64
	position    *models.Position
	trades      []*models.Trade
	equityCurve []models.EquityPlotRecord
}

// BacktestResult is the full output of one completed run.
type BacktestResult struct {
	ID           uuid.UUID                 `json:"id"`
	StrategyName string                    `json:"strategy_name"`
	Symbol       string                    `json:"symbol"`
	InitialCash  float64                   `json:"initial_cash"`
	FinalValue   float64                   `json:"final_value"`
	Trades       []*models.Trade           `json:"trades"`
	EquityCurve  []models.EquityPlotRecord `json:"equity_curve"`
}

func NewBacktest(cfg models.StrategyConfig, initialCash float64) (*Backtest, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewBacktest: %w", err)
	}

	if initialCash <= 0 {
		return nil, fmt.Errorf("NewBacktest: found %v: %w", initialCash, models.ErrInvalidInitialCash)
	}

	return &Backtest{
		ID:          uuid.New(),
		cfg:         cfg,
		initialCash: initialCash,
		cash:        initialCash,
		position:    models.NewPosition(),
		trades:      make([]*models.Trade, 0),
		equityCurve: make([]models.EquityPlotRecord, 0),
	}, nil
}

// Run replays the series through the strategy, bar by bar. All validation
// failures surface before the first bar is processed; a run either completes
// or fails without partial output.
func (b *Backtest) Run(ctx context.Context, series *eventmodels.BarSeries, strat strategy.Strategy) (*BacktestResult, error) {
	if series.Len() < b.cfg.LookbackPeriod+1 {
		return nil, fmt.Errorf("Backtest.Run: found %d bars for lookback %d: %w", series.Len(), b.cfg.LookbackPeriod, models.ErrBarSeriesTooShort)
	}

	extremes := indicators.NewRollingExtremes(b.cfg.LookbackPeriod)

	log.WithFields(log.Fields{
		"id":       b.ID,
		"strategy": strat.Name(),
		"symbol":   series.Symbol,
		"bars":     series.Len(),
	}).Info("starting backtest")

	for i := 0; i < series.Len(); i++ {
		bar := series.Bar(i)

		ready, ext, err := extremes.Update(bar)
		if err != nil {
			return nil, fmt.Errorf("Backtest.Run: failed to update rolling extremes at bar %d: %w", i, err)
		}

		action, err := strat.OnBar(ctx, bar, ext, ready, b.position, b.cfg)
		if err != nil {
			return nil, fmt.Errorf("Backtest.Run: strategy %s failed at bar %d: %w", strat.Name(), i, err)
		}

		isFinalBar := i == series.Len()-1

		switch action.Type {
		case models.ActionTypeEnterLong:
			if b.position.IsLong() {
				return nil, fmt.Errorf("Backtest.Run: enter long while long at bar %d: %w", i, models.ErrUnsupportedActionTransition)
			}

			// Entries on the final bar are skipped: the terminal force-close
			// would otherwise produce a second transition on the same bar.
			if isFinalBar {
				break
			}

			if err := b.enterLong(bar); err != nil {
				return nil, fmt.Errorf("Backtest.Run: bar %d: %w", i, err)
			}

		case models.ActionTypeExitLong:
			if !b.position.IsLong() {
				return nil, fmt.Errorf("Backtest.Run: exit long while flat at bar %d: %w", i, models.ErrUnsupportedActionTransition)
			}

			if err := b.exitLong(bar, action.Reason); err != nil {
				return nil, fmt.Errorf("Backtest.Run: bar %d: %w", i, err)
			}

		case models.ActionTypeNone:
			if isFinalBar && b.position.IsLong() {
				if err := b.exitLong(bar, models.ExitReasonEndOfPeriod); err != nil {
					return nil, fmt.Errorf("Backtest.Run: bar %d: %w", i, err)
				}
			}
		}

		b.equityCurve = append(b.equityCurve, models.EquityPlotRecord{
			Timestamp: bar.Date,
			Equity:    b.portfolioValue(bar.Close),
		})
	}

	result := &BacktestResult{
		ID:           b.ID,
		StrategyName: strat.Name(),
		Symbol:       series.Symbol,
		InitialCash:  b.initialCash,
		FinalValue:   b.equityCurve[len(b.equityCurve)-1].Equity,
		Trades:       b.trades,
		EquityCurve:  b.equityCurve,
	}

	log.WithFields(log.Fields{
		"id":          b.ID,
		"strategy":    strat.Name(),
		"trades":      len(result.Trades),
		"final_value": result.FinalValue,
	}).Info("backtest complete")

	return result, nil
}

// enterLong fills at the bar's close with a whole-share size carved out of
// the configured cash fraction. Commission is charged on the notional.
func (b *Backtest) enterLong(bar eventmodels.Bar) error {
	size := int64(math.Floor(b.cfg.PositionFraction * b.cash / bar.Close))
	if size <= 0 {
		log.WithFields(log.Fields{
			"id":   b.ID,
			"date": bar.Date.Format("2006-01-02"),
			"cash": b.cash,
		}).Warn("skipping entry: insufficient cash for a single share")
		return nil
	}

	notional := float64(size) * bar.Close
	commission := notional * b.cfg.CommissionRate

	if err := b.position.Open(bar.Close, bar.Date, size, b.cfg); err != nil {
		return err
	}

	b.cash -= notional + commission

	log.Debugf("BUY %d at %.2f on %s", size, bar.Close, bar.Date.Format("2006-01-02"))

	return nil
}

func (b *Backtest) exitLong(bar eventmodels.Bar, reason models.ExitReason) error {
	proceeds := float64(b.position.Size) * bar.Close
	commission := proceeds * b.cfg.CommissionRate

	trade, err := b.position.Close(bar.Close, bar.Date, reason, b.cfg.CommissionRate)
	if err != nil {
		return err
	}

	b.cash += proceeds - commission
	b.trades = append(b.trades, trade)

	log.Debugf("SELL %d at %.2f on %s - %s - P&L: %.2f%%", trade.Size, bar.Close, bar.Date.Format("2006-01-02"), reason, trade.PnlPct*100)

	return nil
}

func (b *Backtest) portfolioValue(closePrice float64) float64 {
	if b.position.IsLong() {
		return b.cash + float64(b.position.Size)*closePrice
	}

	return b.cash
}
