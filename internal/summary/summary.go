package summary

import (
	"math"

	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/models"
)

// Summarize derives the scalar summary metrics from a canonical series.
//
// The previous close is the close of the second-to-last bar when at least two
// bars exist; with a single bar it falls back to that bar's open. A zero
// previous close fails with models.ErrZeroPreviousClose rather than producing
// an infinite percent change.
func Summarize(series *models.Series) (*models.SummaryMetrics, error) {
	if series.IsEmpty() {
		return nil, models.ErrEmptySeries
	}

	bars := series.Bars
	latest := bars[len(bars)-1].Close

	var previousClose float64
	if len(bars) >= 2 {
		previousClose = bars[len(bars)-2].Close
	} else {
		previousClose = bars[0].Open
	}
	if previousClose == 0 {
		return nil, models.ErrZeroPreviousClose
	}

	high := math.Inf(-1)
	low := math.Inf(1)
	for i := range bars {
		if bars[i].High > high {
			high = bars[i].High
		}
		if bars[i].Low < low {
			low = bars[i].Low
		}
	}

	change := latest - previousClose

	return &models.SummaryMetrics{
		LatestPrice:           latest,
		PreviousClose:         previousClose,
		PeriodHigh:            high,
		PeriodLow:             low,
		SessionChangeAbsolute: change,
		SessionChangePercent:  change / previousClose * 100,
	}, nil
}
