package services

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/jiaming2012/breakout-backtest/src/backtester/models"
)

const tradingDaysPerYear = 252

// PerformanceAnalyzer computes summary metrics from a stored equity curve.
// It is decoupled from the simulation loop: the curve alone is enough.
type PerformanceAnalyzer struct {
	RiskFreeRate float64
}

func NewPerformanceAnalyzer(riskFreeRate float64) *PerformanceAnalyzer {
	return &PerformanceAnalyzer{
		RiskFreeRate: riskFreeRate,
	}
}

func (a *PerformanceAnalyzer) Analyze(equityCurve []models.EquityPlotRecord, initialCash float64) (*models.PerformanceReport, error) {
	if len(equityCurve) == 0 {
		return nil, fmt.Errorf("PerformanceAnalyzer.Analyze: %w", models.ErrEquityCurveTooShort)
	}

	if initialCash <= 0 {
		return nil, fmt.Errorf("PerformanceAnalyzer.Analyze: found %v: %w", initialCash, models.ErrInvalidInitialCash)
	}

	finalValue := equityCurve[len(equityCurve)-1].Equity

	dailyReturns := make([]float64, 0, len(equityCurve)-1)
	for i := 1; i < len(equityCurve); i++ {
		dailyReturns = append(dailyReturns, equityCurve[i].Equity/equityCurve[i-1].Equity-1)
	}

	sharpe, err := a.sharpeRatio(dailyReturns)
	if err != nil {
		return nil, fmt.Errorf("PerformanceAnalyzer.Analyze: %w", err)
	}

	return &models.PerformanceReport{
		StartingValue: initialCash,
		FinalValue:    finalValue,
		TotalReturn:   (finalValue - initialCash) / initialCash,
		SharpeRatio:   sharpe,
		MaxDrawdown:   maxDrawdown(equityCurve),
	}, nil
}

// sharpeRatio annualizes the mean excess daily return over its sample
// standard deviation. A flat curve or a single return has no defined ratio;
// that is reported as NaN rather than an error.
func (a *PerformanceAnalyzer) sharpeRatio(dailyReturns []float64) (float64, error) {
	if len(dailyReturns) < 2 {
		return math.NaN(), nil
	}

	dailyRiskFree := a.RiskFreeRate / tradingDaysPerYear

	excess := make([]float64, len(dailyReturns))
	for i, r := range dailyReturns {
		excess[i] = r - dailyRiskFree
	}

	mean, err := stats.Mean(excess)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate mean excess return: %v", err)
	}

	stdev, err := stats.StandardDeviationSample(dailyReturns)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate the standard deviation: %v", err)
	}

	if stdev == 0 {
		return math.NaN(), nil
	}

	return mean / stdev * math.Sqrt(tradingDaysPerYear), nil
}

// maxDrawdown is the largest peak-to-trough decline, as a fraction of the
// running peak. It is 0 for a non-decreasing curve and never exceeds 1 for
// non-negative equity.
func maxDrawdown(equityCurve []models.EquityPlotRecord) float64 {
	peak := equityCurve[0].Equity
	maxDD := 0.0

	for _, point := range equityCurve {
		if point.Equity > peak {
			peak = point.Equity
		}

		if peak > 0 {
			if dd := (peak - point.Equity) / peak; dd > maxDD {
				maxDD = dd
			}
		}
	}

	return maxDD
}
