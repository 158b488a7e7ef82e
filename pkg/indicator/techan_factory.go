package indicator

import (
	"fmt"
	"time"

	"github.com/sdcoffey/techan"
)

// CreateTechanEMA returns a factory for a techan-backed EMA over closing prices
func CreateTechanEMA(period int, resolution time.Duration) Factory {
	return func() (WindowedCalculator, error) {
		if period < 1 {
			return nil, fmt.Errorf("EMA period must be at least 1, got %d", period)
		}
		calc := newTechanCalculator(
			fmt.Sprintf("ema_%d", period),
			period,
			resolution,
			func(series *techan.TimeSeries) techan.Indicator {
				return techan.NewEMAIndicator(techan.NewClosePriceIndicator(series), period)
			},
		)
		return calc, nil
	}
}

// CreateTechanSMA returns a factory for a techan-backed SMA over closing prices
func CreateTechanSMA(period int, resolution time.Duration) Factory {
	return func() (WindowedCalculator, error) {
		if period < 1 {
			return nil, fmt.Errorf("SMA period must be at least 1, got %d", period)
		}
		calc := newTechanCalculator(
			fmt.Sprintf("sma_%d", period),
			period,
			resolution,
			func(series *techan.TimeSeries) techan.Indicator {
				return techan.NewSimpleMovingAverage(techan.NewClosePriceIndicator(series), period)
			},
		)
		return calc, nil
	}
}
