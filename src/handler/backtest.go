// Package handler exposes the backtesting engine over HTTP. It is a thin
// downstream consumer: all simulation and analysis lives in the backtester
// packages.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/breakout-backtest/src/backtester/models"
	"github.com/jiaming2012/breakout-backtest/src/backtester/services"
	"github.com/jiaming2012/breakout-backtest/src/eventmodels"
	"github.com/jiaming2012/breakout-backtest/src/strategy"
)

type RunBacktestRequest struct {
	Symbol       string                `json:"symbol"`
	Bars         []eventmodels.Bar     `json:"bars"`
	InitialCash  float64               `json:"initial_cash"`
	RiskFreeRate float64               `json:"risk_free_rate"`
	Config       models.StrategyConfig `json:"config"`
	Strategies   []string              `json:"strategies"`
}

type StrategyRunResult struct {
	Strategy string                    `json:"strategy"`
	RunID    string                    `json:"run_id"`
	Report   *models.PerformanceReport `json:"report"`
	Trades   []*models.Trade           `json:"trades"`
}

type RunBacktestResponse struct {
	Symbol  string              `json:"symbol"`
	Results []StrategyRunResult `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// RunBacktest runs the requested strategies over the posted bars. Each
// strategy gets its own run context, so the runs execute concurrently over
// the shared immutable series.
func RunBacktest(w http.ResponseWriter, r *http.Request) {
	var req RunBacktestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if len(req.Strategies) == 0 {
		req.Strategies = []string{strategy.BreakoutStrategyName, strategy.BuyAndHoldStrategyName}
	}

	series, err := eventmodels.NewBarSeries(req.Symbol, req.Bars)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	results, err := runAll(r.Context(), series, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(RunBacktestResponse{
		Symbol:  req.Symbol,
		Results: results,
	})
}

func runAll(ctx context.Context, series *eventmodels.BarSeries, req RunBacktestRequest) ([]StrategyRunResult, error) {
	results := make([]StrategyRunResult, len(req.Strategies))
	errs := make([]error, len(req.Strategies))

	var wg sync.WaitGroup
	for i, name := range req.Strategies {
		wg.Add(1)

		go func(i int, name string) {
			defer wg.Done()

			result, report, err := runOne(ctx, series, name, req)
			if err != nil {
				errs[i] = err
				return
			}

			results[i] = StrategyRunResult{
				Strategy: name,
				RunID:    result.ID.String(),
				Report:   report,
				Trades:   result.Trades,
			}
		}(i, name)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

func runOne(ctx context.Context, series *eventmodels.BarSeries, name string, req RunBacktestRequest) (*services.BacktestResult, *models.PerformanceReport, error) {
	strat, err := strategy.New(name)
	if err != nil {
		return nil, nil, err
	}

	backtest, err := services.NewBacktest(req.Config, req.InitialCash)
	if err != nil {
		return nil, nil, err
	}

	result, err := backtest.Run(ctx, series, strat)
	if err != nil {
		return nil, nil, err
	}

	report, err := services.NewPerformanceAnalyzer(req.RiskFreeRate).Analyze(result.EquityCurve, req.InitialCash)
	if err != nil {
		return nil, nil, err
	}

	return result, report, nil
}

func writeError(w http.ResponseWriter, status int, err error) {
	log.Errorf("handler: %v", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}
