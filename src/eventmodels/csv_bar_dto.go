package eventmodels

import (
	"fmt"
	"time"
)

type CsvBarDTO struct {
	Date   string  `csv:"Date"`
	Open   float64 `csv:"Open"`
	High   float64 `csv:"High"`
	Low    float64 `csv:"Low"`
	Close  float64 `csv:"Close"`
	Volume int64   `csv:"Volume"`
}

func (dto *CsvBarDTO) ToModel() (Bar, error) {
	t, err := time.Parse(time.RFC3339, dto.Date)
	if err != nil {
		t, err = time.Parse("2006-01-02", dto.Date)
		if err != nil {
			return Bar{}, fmt.Errorf("CsvBarDTO.ToModel: error parsing date %q: %w", dto.Date, err)
		}
	}

	return Bar{
		Date:   t,
		Open:   dto.Open,
		High:   dto.High,
		Low:    dto.Low,
		Close:  dto.Close,
		Volume: dto.Volume,
	}, nil
}
