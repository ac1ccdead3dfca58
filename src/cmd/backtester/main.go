package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jiaming2012/breakout-backtest/src/backtester/models"
	"github.com/jiaming2012/breakout-backtest/src/backtester/services"
	"github.com/jiaming2012/breakout-backtest/src/data"
	"github.com/jiaming2012/breakout-backtest/src/eventmodels"
	"github.com/jiaming2012/breakout-backtest/src/reports"
	"github.com/jiaming2012/breakout-backtest/src/strategy"
)

type RunArgs struct {
	ConfigFile string
}

type RunResults struct {
	Performances []reports.StrategyPerformance
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/backtester/main.go --config backtest.yaml",
	Short: "Runs the configured strategies over a CSV bar file and prints a comparison report.",
	Run: func(cmd *cobra.Command, args []string) {
		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		result, err := Run(RunArgs{
			ConfigFile: configFile,
		})
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		for _, perf := range result.Performances {
			fmt.Println(reports.RenderTrades(perf.Result))
		}

		fmt.Println(reports.RenderComparison(result.Performances))
	},
}

func Run(args RunArgs) (RunResults, error) {
	ctx := context.Background()

	cfgBytes, err := os.ReadFile(args.ConfigFile)
	if err != nil {
		return RunResults{}, fmt.Errorf("failed to read config file %s: %w", args.ConfigFile, err)
	}

	var cfg eventmodels.BacktestConfigYAML
	if err := yaml.Unmarshal(cfgBytes, &cfg); err != nil {
		return RunResults{}, fmt.Errorf("failed to parse config file %s: %w", args.ConfigFile, err)
	}

	strategyConfig := models.NewDefaultStrategyConfig()
	if cfg.Breakout != nil {
		strategyConfig.LookbackPeriod = cfg.Breakout.LookbackPeriod
		strategyConfig.StopLoss = cfg.Breakout.StopLoss
		strategyConfig.TakeProfit = cfg.Breakout.TakeProfit
		strategyConfig.PositionFraction = cfg.Breakout.PositionFraction
	}
	strategyConfig.CommissionRate = cfg.CommissionRate

	// dataFile is resolved relative to the config file, so the CLI works
	// from any working directory
	dataFile := cfg.DataFile
	if !filepath.IsAbs(dataFile) {
		dataFile = filepath.Join(filepath.Dir(args.ConfigFile), dataFile)
	}

	series, err := data.NewCsvBarLoader(dataFile).Load(ctx, cfg.Symbol)
	if err != nil {
		return RunResults{}, fmt.Errorf("failed to load bars: %w", err)
	}

	strategyNames := make([]string, 0, len(cfg.Strategies))
	for _, s := range cfg.Strategies {
		strategyNames = append(strategyNames, s.Name)
	}

	if len(strategyNames) == 0 {
		strategyNames = []string{strategy.BreakoutStrategyName, strategy.BuyAndHoldStrategyName}
	}

	// Each run owns its position, trade log, and equity curve; the series is
	// immutable, so the runs can execute concurrently.
	performances := make([]reports.StrategyPerformance, len(strategyNames))
	errs := make([]error, len(strategyNames))

	var wg sync.WaitGroup
	for i, name := range strategyNames {
		wg.Add(1)

		go func(i int, name string) {
			defer wg.Done()

			strat, err := strategy.New(name)
			if err != nil {
				errs[i] = err
				return
			}

			backtest, err := services.NewBacktest(strategyConfig, cfg.InitialCash)
			if err != nil {
				errs[i] = err
				return
			}

			result, err := backtest.Run(ctx, series, strat)
			if err != nil {
				errs[i] = err
				return
			}

			report, err := services.NewPerformanceAnalyzer(cfg.RiskFreeRate).Analyze(result.EquityCurve, cfg.InitialCash)
			if err != nil {
				errs[i] = err
				return
			}

			performances[i] = reports.StrategyPerformance{
				Result: result,
				Report: report,
			}
		}(i, name)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return RunResults{}, err
		}
	}

	return RunResults{Performances: performances}, nil
}

func main() {
	runCmd.PersistentFlags().String("config", "backtest.yaml", "Path to the backtest YAML config file.")

	if err := runCmd.Execute(); err != nil {
		log.Fatalf("error executing command: %v", err)
	}
}
