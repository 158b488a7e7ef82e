package data

import (
	"context"
	"time"

	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/timeframe"
)

// barsPerRange approximates trading periods per lookback range token
var barsPerRange = map[string]int{
	"1d":  390, // minutes in a regular session
	"5d":  5,
	"1mo": 22,
	"3mo": 66,
	"6mo": 126,
	"1y":  252,
}

// MockProvider returns deterministic synthetic data for development and testing
type MockProvider struct {
	// Bars overrides generation when set
	Bars []RawBar
	// Err is returned from FetchBars when set
	Err error
	// BasePrice anchors the synthetic walk; derived from the symbol when zero
	BasePrice float64
}

// NewMockProvider creates a mock provider
func NewMockProvider(_ ProviderConfig) (Provider, error) {
	return &MockProvider{}, nil
}

// Name returns the provider type
func (m *MockProvider) Name() string {
	return "mock"
}

// FetchBars generates a deterministic bar walk for the symbol. The same
// (symbol, params) input always yields the same bars.
func (m *MockProvider) FetchBars(_ context.Context, symbol string, params timeframe.Params) ([]RawBar, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}

	count, ok := barsPerRange[params.Range]
	if !ok {
		count = 30
	}

	base := m.BasePrice
	if base == 0 {
		base = basePriceFor(symbol)
	}

	// Anchor the series at a fixed instant so output is reproducible
	start := time.Date(2024, 1, 2, 14, 30, 0, 0, time.UTC)
	bars := make([]RawBar, count)
	for i := 0; i < count; i++ {
		p := base * (1 + float64(i-count/2)*0.001)
		bars[i] = RawBar{
			Timestamp: start.Add(time.Duration(i) * params.Resolution),
			Open:      p * 0.999,
			High:      p * 1.005,
			Low:       p * 0.995,
			Close:     p,
			Volume:    1000000,
		}
	}
	return bars, nil
}

// basePriceFor derives a stable price anchor from the symbol text
func basePriceFor(symbol string) float64 {
	var sum int
	for _, r := range symbol {
		sum += int(r)
	}
	return 50.0 + float64(sum%400)
}
