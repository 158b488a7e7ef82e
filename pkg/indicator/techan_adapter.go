package indicator

import (
	"math"
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"

	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/models"
)

// TechanCalculator wraps a techan indicator behind the Calculator interface so
// additional overlays can be added without hand-rolling the math
type TechanCalculator struct {
	name       string
	resolution time.Duration
	series     *techan.TimeSeries
	indicator  techan.Indicator
	build      func(*techan.TimeSeries) techan.Indicator
	period     int
	processed  int
	ready      bool
}

// newTechanCalculator wires an indicator to the time series it reads from.
// build receives the series the candles will be appended to.
func newTechanCalculator(name string, period int, resolution time.Duration, build func(*techan.TimeSeries) techan.Indicator) *TechanCalculator {
	series := techan.NewTimeSeries()
	return &TechanCalculator{
		name:       name,
		resolution: resolution,
		series:     series,
		indicator:  build(series),
		build:      build,
		period:     period,
	}
}

// Name returns the indicator name
func (t *TechanCalculator) Name() string {
	return t.name
}

// Update appends the bar as a candle and reports the indicator value. Values
// are reported defined only once `period` bars have been processed, matching
// the windowing of the native calculators.
func (t *TechanCalculator) Update(bar models.Bar) (float64, bool) {
	period := techan.NewTimePeriod(bar.Timestamp, t.resolution)
	candle := techan.NewCandle(period)
	candle.OpenPrice = big.NewDecimal(bar.Open)
	candle.MaxPrice = big.NewDecimal(bar.High)
	candle.MinPrice = big.NewDecimal(bar.Low)
	candle.ClosePrice = big.NewDecimal(bar.Close)
	candle.Volume = big.NewDecimal(bar.Volume)

	t.series.AddCandle(candle)
	t.processed++

	if t.processed < t.period {
		return 0, false
	}

	value := t.indicator.Calculate(t.series.LastIndex()).Float()
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	t.ready = true
	return value, true
}

// Reset clears all accumulated candles
func (t *TechanCalculator) Reset() {
	t.series = techan.NewTimeSeries()
	t.indicator = t.build(t.series)
	t.processed = 0
	t.ready = false
}

// IsReady returns true once the window is populated
func (t *TechanCalculator) IsReady() bool {
	return t.ready
}

// WindowSize returns the number of bars required before values are defined
func (t *TechanCalculator) WindowSize() int {
	return t.period
}

// BarsProcessed returns the number of bars processed
func (t *TechanCalculator) BarsProcessed() int {
	return t.processed
}
