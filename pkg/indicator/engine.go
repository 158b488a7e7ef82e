package indicator

import (
	"fmt"

	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/models"
)

// MinBars is the minimum series length before any indicator is attempted.
// Below this threshold every indicator series is attached empty.
const MinBars = 15

// Engine evaluates a set of indicator calculators over a canonical series,
// producing parallel indicator series aligned by position. Calculators are
// instantiated fresh per evaluation, so an Engine is safe to share across
// concurrent requests.
type Engine struct {
	factories []Factory
}

// NewEngine creates an engine that evaluates the given calculator factories
func NewEngine(factories ...Factory) *Engine {
	return &Engine{factories: factories}
}

// DefaultFactories returns the factories for the standard overlay set:
// the 20-period simple moving average and the 14-period RSI
func DefaultFactories() []Factory {
	return []Factory{
		func() (WindowedCalculator, error) { return NewSMA(SMAWindow) },
		func() (WindowedCalculator, error) { return NewRSI(RSIWindow) },
	}
}

// Compute evaluates every registered indicator over the series. The input
// series is never modified.
func (e *Engine) Compute(series *models.Series) (map[string]models.IndicatorSeries, error) {
	result := make(map[string]models.IndicatorSeries, len(e.factories))
	for _, factory := range e.factories {
		calc, err := factory()
		if err != nil {
			return nil, fmt.Errorf("create calculator: %w", err)
		}
		out := evaluate(calc, series)
		result[out.Name] = out
	}
	return result, nil
}

// evaluate runs one calculator across the series. Positions before the
// calculator's window is populated are undefined.
func evaluate(calc WindowedCalculator, series *models.Series) models.IndicatorSeries {
	out := models.IndicatorSeries{
		Name:   calc.Name(),
		Values: []models.IndicatorValue{},
	}

	// Not enough data: attach an empty indicator series, leave the bars alone
	if series.Len() < MinBars {
		return out
	}

	out.Values = make([]models.IndicatorValue, 0, series.Len())
	for _, bar := range series.Bars {
		value, ok := calc.Update(bar)
		out.Values = append(out.Values, models.IndicatorValue{Value: value, Defined: ok})
	}
	return out
}
