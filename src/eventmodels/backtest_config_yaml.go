package eventmodels

type BacktestConfigYAML struct {
	Symbol         string              `yaml:"symbol"`
	DataFile       string              `yaml:"dataFile"`
	InitialCash    float64             `yaml:"initialCash"`
	RiskFreeRate   float64             `yaml:"riskFreeRate,omitempty"`
	CommissionRate float64             `yaml:"commissionRate"`
	Strategies     []StrategyYAML      `yaml:"strategies"`
	Breakout       *BreakoutParamsYAML `yaml:"breakout,omitempty"`
}

type StrategyYAML struct {
	Name string `yaml:"name"`
}

type BreakoutParamsYAML struct {
	LookbackPeriod   int     `yaml:"lookbackPeriod"`
	StopLoss         float64 `yaml:"stopLoss"`
	TakeProfit       float64 `yaml:"takeProfit"`
	PositionFraction float64 `yaml:"positionFraction"`
}
