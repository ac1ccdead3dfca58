package eventmodels

import (
	"time"
)

// Bar is one trading period's OHLCV summary.
type Bar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

func (b Bar) GetDate() time.Time {
	return b.Date
}

func (b Bar) GetOpen() float64 {
	return b.Open
}

func (b Bar) GetHigh() float64 {
	return b.High
}

func (b Bar) GetLow() float64 {
	return b.Low
}

func (b Bar) GetClose() float64 {
	return b.Close
}

func (b Bar) GetVolume() int64 {
	return b.Volume
}
