package indicator

import (
	"fmt"

	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/models"
)

// RSI calculates the Relative Strength Index
// RSI = 100 - (100 / (1 + RS)) where RS = Average Gain / Average Loss
//
// The averages are simple rolling means of the trailing `period` gains and
// losses. A value is defined once `period` close-to-close deltas exist, so the
// first defined position is bar index `period`.
type RSI struct {
	period    int
	name      string
	gains     []float64 // Rolling window of gains
	losses    []float64 // Rolling window of losses
	prevClose float64
	hasPrev   bool
	ready     bool
	processed int
}

// NewRSI creates a new RSI calculator with the specified period (typically 14)
func NewRSI(period int) (*RSI, error) {
	if period < 2 {
		return nil, fmt.Errorf("RSI period must be at least 2, got %d", period)
	}

	return &RSI{
		period: period,
		name:   fmt.Sprintf("rsi_%d", period),
		gains:  make([]float64, 0, period),
		losses: make([]float64, 0, period),
	}, nil
}

// Name returns the indicator name
func (r *RSI) Name() string {
	return r.name
}

// Update processes a new bar. ok is false until `period` deltas have been seen.
func (r *RSI) Update(bar models.Bar) (float64, bool) {
	r.processed++

	// First bar only seeds the previous close
	if !r.hasPrev {
		r.prevClose = bar.Close
		r.hasPrev = true
		return 0, false
	}

	change := bar.Close - r.prevClose
	r.prevClose = bar.Close

	var gain, loss float64
	if change > 0 {
		gain = change
	} else {
		loss = -change // Loss is positive
	}

	r.gains = append(r.gains, gain)
	r.losses = append(r.losses, loss)

	// Slide the windows
	if len(r.gains) > r.period {
		copy(r.gains, r.gains[1:])
		r.gains = r.gains[:len(r.gains)-1]
		copy(r.losses, r.losses[1:])
		r.losses = r.losses[:len(r.losses)-1]
	}

	if len(r.gains) < r.period {
		return 0, false
	}

	r.ready = true
	return r.value(), true
}

// value computes the RSI from the current windows. The zero-loss and flat
// cases are explicit branches rather than incidental floating-point results.
func (r *RSI) value() float64 {
	var sumGain, sumLoss float64
	for i := range r.gains {
		sumGain += r.gains[i]
		sumLoss += r.losses[i]
	}
	avgGain := sumGain / float64(r.period)
	avgLoss := sumLoss / float64(r.period)

	switch {
	case avgLoss == 0 && avgGain > 0:
		// All upward movement, maximal reading
		return 100.0
	case avgGain == 0 && avgLoss == 0:
		// Flat series, neutral reading
		return 50.0
	default:
		rs := avgGain / avgLoss
		return 100.0 - (100.0 / (1.0 + rs))
	}
}

// Reset clears the RSI state
func (r *RSI) Reset() {
	r.gains = r.gains[:0]
	r.losses = r.losses[:0]
	r.prevClose = 0
	r.hasPrev = false
	r.ready = false
	r.processed = 0
}

// IsReady returns true if the RSI windows are populated
func (r *RSI) IsReady() bool {
	return r.ready
}

// WindowSize returns the number of bars required (period + 1 for the first delta)
func (r *RSI) WindowSize() int {
	return r.period + 1
}

// BarsProcessed returns the number of bars processed
func (r *RSI) BarsProcessed() int {
	return r.processed
}
