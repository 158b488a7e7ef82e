package indicator

import (
	"fmt"

	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/models"
)

// SMA calculates the Simple Moving Average of closing prices
// SMA = Sum of the most recent `period` closes / period
type SMA struct {
	period    int
	name      string
	prices    []float64 // Rolling window of closes
	ready     bool
	processed int
}

// NewSMA creates a new SMA calculator with the specified period
func NewSMA(period int) (*SMA, error) {
	if period < 1 {
		return nil, fmt.Errorf("SMA period must be at least 1, got %d", period)
	}

	return &SMA{
		period: period,
		name:   fmt.Sprintf("sma_%d", period),
		prices: make([]float64, 0, period),
	}, nil
}

// Name returns the indicator name
func (s *SMA) Name() string {
	return s.name
}

// Update processes a new bar. ok is false until `period` closes have been seen.
func (s *SMA) Update(bar models.Bar) (float64, bool) {
	s.prices = append(s.prices, bar.Close)
	s.processed++

	// Slide the window
	if len(s.prices) > s.period {
		copy(s.prices, s.prices[1:])
		s.prices = s.prices[:len(s.prices)-1]
	}

	if len(s.prices) < s.period {
		return 0, false
	}

	s.ready = true
	return s.mean(), true
}

func (s *SMA) mean() float64 {
	var sum float64
	for _, price := range s.prices {
		sum += price
	}
	return sum / float64(len(s.prices))
}

// Reset clears the SMA state
func (s *SMA) Reset() {
	s.prices = s.prices[:0]
	s.ready = false
	s.processed = 0
}

// IsReady returns true if the SMA window is populated
func (s *SMA) IsReady() bool {
	return s.ready
}

// WindowSize returns the period (number of bars required)
func (s *SMA) WindowSize() int {
	return s.period
}

// BarsProcessed returns the number of bars processed
func (s *SMA) BarsProcessed() int {
	return s.processed
}
