package indicator

import (
	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/models"
)

// Default windows for the indicators the analysis pipeline computes
const (
	SMAWindow = 20
	RSIWindow = 14
)

// Canonical names of the default indicator series as attached to bundles
const (
	SMADefaultName = "sma_20"
	RSIDefaultName = "rsi_14"
)

// Calculator is the interface for streaming technical indicator computation.
// Calculators consume bars in timestamp order and report a value per position;
// leading positions where the window is not yet populated are undefined.
type Calculator interface {
	// Name returns the unique name of this indicator (e.g., "rsi_14", "sma_20")
	Name() string

	// Update processes a new bar and returns the indicator value at that
	// position. ok is false while the window is not yet populated.
	Update(bar models.Bar) (value float64, ok bool)

	// Reset clears the calculator state
	Reset()

	// IsReady returns true once the calculator has enough data to produce values
	IsReady() bool
}

// WindowedCalculator extends Calculator for indicators with a fixed bar window
type WindowedCalculator interface {
	Calculator

	// WindowSize returns the number of bars required before values are defined
	WindowSize() int

	// BarsProcessed returns the number of bars processed so far
	BarsProcessed() int
}

// Factory constructs a fresh calculator instance. The engine instantiates
// calculators per evaluation so no state leaks between requests.
type Factory func() (WindowedCalculator, error)
