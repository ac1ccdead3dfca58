// Package reports renders trade logs and performance comparisons for human
// consumption. The engine itself never depends on this package.
package reports

import (
	"fmt"
	"math"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jiaming2012/breakout-backtest/src/backtester/models"
	"github.com/jiaming2012/breakout-backtest/src/backtester/services"
)

// StrategyPerformance pairs a completed run with its analyzed report.
type StrategyPerformance struct {
	Result *services.BacktestResult
	Report *models.PerformanceReport
}

func RenderTrades(result *services.BacktestResult) string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)
	table.SetHeader([]string{"Entry Date", "Entry Price", "Exit Date", "Exit Price", "Size", "Exit Reason", "P&L %"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	display.WriteString(fmt.Sprintf("Trades (%s):\n", result.StrategyName))

	for _, trade := range result.Trades {
		table.Append([]string{
			trade.EntryDate.Format("2006-01-02"),
			fmt.Sprintf("$%s", p.Sprintf("%.2f", trade.EntryPrice)),
			trade.ExitDate.Format("2006-01-02"),
			fmt.Sprintf("$%s", p.Sprintf("%.2f", trade.ExitPrice)),
			fmt.Sprintf("%d", trade.Size),
			string(trade.ExitReason),
			fmt.Sprintf("%.2f%%", trade.PnlPct*100),
		})
	}

	table.Render()
	return display.String()
}

func RenderComparison(performances []StrategyPerformance) string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)
	header := []string{"Metric"}
	for _, perf := range performances {
		header = append(header, perf.Result.StrategyName)
	}
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	display.WriteString("Backtest Results Comparison:\n")

	rows := []struct {
		label  string
		format func(perf StrategyPerformance) string
	}{
		{"Starting Value", func(perf StrategyPerformance) string {
			return fmt.Sprintf("$%s", p.Sprintf("%.2f", perf.Report.StartingValue))
		}},
		{"Final Value", func(perf StrategyPerformance) string {
			return fmt.Sprintf("$%s", p.Sprintf("%.2f", perf.Report.FinalValue))
		}},
		{"Total Return", func(perf StrategyPerformance) string {
			return fmt.Sprintf("%.2f%%", perf.Report.TotalReturn*100)
		}},
		{"Sharpe Ratio", func(perf StrategyPerformance) string {
			if math.IsNaN(perf.Report.SharpeRatio) {
				return "N/A"
			}
			return fmt.Sprintf("%.2f", perf.Report.SharpeRatio)
		}},
		{"Max Drawdown", func(perf StrategyPerformance) string {
			return fmt.Sprintf("%.2f%%", perf.Report.MaxDrawdown*100)
		}},
		{"Trades", func(perf StrategyPerformance) string {
			return fmt.Sprintf("%d", len(perf.Result.Trades))
		}},
	}

	for _, row := range rows {
		cells := []string{row.label}
		for _, perf := range performances {
			cells = append(cells, row.format(perf))
		}
		table.Append(cells)
	}

	table.Render()
	return display.String()
}
