package data

import (
	"sort"

	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/models"
	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/timeframe"
	"github.com/sakshikhedkar45-commits/Stockanalysis/pkg/logger"
)

// Normalizer converts raw provider bars into a canonical Series: validated,
// sorted ascending, strictly increasing timestamps. Gaps are preserved as-is,
// never interpolated.
type Normalizer struct{}

// NewNormalizer creates a new normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize builds the canonical series for a request. Malformed bars are
// dropped and counted; an empty result is a first-class state, not an error,
// so callers can render a "no data" outcome without special-casing failures.
func (n *Normalizer) Normalize(symbol string, params timeframe.Params, raw []RawBar) *models.Series {
	series := &models.Series{
		Symbol:     symbol,
		Resolution: params.Resolution,
		Bars:       make([]models.Bar, 0, len(raw)),
	}

	var dropped int
	for _, rb := range raw {
		bar := models.Bar{
			Timestamp: rb.Timestamp,
			Open:      rb.Open,
			High:      rb.High,
			Low:       rb.Low,
			Close:     rb.Close,
			Volume:    rb.Volume,
		}
		if err := bar.Validate(); err != nil {
			dropped++
			continue
		}
		series.Bars = append(series.Bars, bar)
	}

	sort.Slice(series.Bars, func(i, j int) bool {
		return series.Bars[i].Timestamp.Before(series.Bars[j].Timestamp)
	})

	// Enforce strict timestamp ordering: keep the first bar per instant
	deduped := series.Bars[:0]
	for i, bar := range series.Bars {
		if i > 0 && !bar.Timestamp.After(deduped[len(deduped)-1].Timestamp) {
			dropped++
			continue
		}
		deduped = append(deduped, bar)
	}
	series.Bars = deduped

	if dropped > 0 {
		logger.Warn("Dropped malformed or duplicate bars during normalization",
			logger.String("symbol", symbol),
			logger.Int("dropped", dropped),
			logger.Int("kept", len(series.Bars)),
		)
	}

	return series
}
