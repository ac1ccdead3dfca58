package data

import (
	"context"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/jiaming2012/breakout-backtest/src/eventmodels"
)

// CsvBarLoader reads daily bars from a CSV export with Date, Open, High,
// Low, Close, Volume columns.
type CsvBarLoader struct {
	Path string
}

func NewCsvBarLoader(path string) *CsvBarLoader {
	return &CsvBarLoader{
		Path: path,
	}
}

func (l *CsvBarLoader) Load(_ context.Context, symbol string) (*eventmodels.BarSeries, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("CsvBarLoader.Load: failed to open %s: %w", l.Path, err)
	}

	defer f.Close()

	var dtos []*eventmodels.CsvBarDTO
	if err := gocsv.UnmarshalFile(f, &dtos); err != nil {
		return nil, fmt.Errorf("CsvBarLoader.Load: failed to unmarshal %s: %w", l.Path, err)
	}

	bars := make([]eventmodels.Bar, 0, len(dtos))
	for i, dto := range dtos {
		bar, err := dto.ToModel()
		if err != nil {
			return nil, fmt.Errorf("CsvBarLoader.Load: row %d: %w", i, err)
		}

		bars = append(bars, bar)
	}

	return eventmodels.NewBarSeries(symbol, bars)
}
