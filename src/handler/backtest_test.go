package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/breakout-backtest/src/backtester/models"
	"github.com/jiaming2012/breakout-backtest/src/eventmodels"
)

func newRequestBars(closes []float64) []eventmodels.Bar {
	bars := make([]eventmodels.Bar, 0, len(closes))
	for i, close := range closes {
		bars = append(bars, eventmodels.Bar{
			Date:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Open:   close,
			High:   close,
			Low:    close,
			Close:  close,
			Volume: 1000,
		})
	}
	return bars
}

func postBacktest(t *testing.T, req RunBacktestRequest) *httptest.ResponseRecorder {
	body, err := json.Marshal(req)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	RunBacktest(recorder, httptest.NewRequest(http.MethodPost, "/backtest", bytes.NewReader(body)))
	return recorder
}

func TestRunBacktest(t *testing.T) {
	validConfig := models.StrategyConfig{
		LookbackPeriod:   3,
		StopLoss:         0.05,
		TakeProfit:       0.15,
		PositionFraction: 0.95,
		CommissionRate:   0.001,
	}

	t.Run("runs both strategies by default", func(t *testing.T) {
		recorder := postBacktest(t, RunBacktestRequest{
			Symbol:      "SPY",
			Bars:        newRequestBars([]float64{100, 101, 102, 103, 80}),
			InitialCash: 100000,
			Config:      validConfig,
		})

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp RunBacktestResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))

		require.Len(t, resp.Results, 2)
		assert.Equal(t, "SPY", resp.Symbol)

		for _, result := range resp.Results {
			assert.NotEmpty(t, result.RunID)
			require.NotNil(t, result.Report)
			assert.Equal(t, 100000.0, result.Report.StartingValue)
			assert.Len(t, result.Trades, 1)
		}
	})

	t.Run("invalid config returns 400", func(t *testing.T) {
		invalid := validConfig
		invalid.StopLoss = 0

		recorder := postBacktest(t, RunBacktestRequest{
			Symbol:      "SPY",
			Bars:        newRequestBars([]float64{100, 101, 102, 103, 80}),
			InitialCash: 100000,
			Config:      invalid,
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("unordered bars return 400", func(t *testing.T) {
		bars := newRequestBars([]float64{100, 101})
		bars[0].Date, bars[1].Date = bars[1].Date, bars[0].Date

		recorder := postBacktest(t, RunBacktestRequest{
			Symbol:      "SPY",
			Bars:        bars,
			InitialCash: 100000,
			Config:      validConfig,
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("unknown strategy returns 400", func(t *testing.T) {
		recorder := postBacktest(t, RunBacktestRequest{
			Symbol:      "SPY",
			Bars:        newRequestBars([]float64{100, 101, 102, 103, 80}),
			InitialCash: 100000,
			Config:      validConfig,
			Strategies:  []string{"martingale"},
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
