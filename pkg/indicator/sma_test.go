package indicator

import (
	"testing"
	"time"

	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/models"
)

// barAt builds a bar with the given close at a deterministic timestamp
func barAt(i int, close float64) models.Bar {
	base := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
	return models.Bar{
		Timestamp: base.Add(time.Duration(i) * time.Minute),
		Open:      close,
		High:      close,
		Low:       close,
		Close:     close,
		Volume:    1000,
	}
}

func TestSMA_NewSMA(t *testing.T) {
	sma, err := NewSMA(20)
	if err != nil {
		t.Fatalf("Failed to create SMA: %v", err)
	}
	if sma.Name() != "sma_20" {
		t.Errorf("Expected name 'sma_20', got '%s'", sma.Name())
	}

	if _, err = NewSMA(0); err == nil {
		t.Error("Expected error for period < 1")
	}
}

func TestSMA_Update(t *testing.T) {
	sma, _ := NewSMA(5)

	for i := 0; i < 4; i++ {
		_, ok := sma.Update(barAt(i, 100.0+float64(i)))
		if ok {
			t.Errorf("SMA should be undefined after %d bars", i+1)
		}
		if sma.IsReady() {
			t.Errorf("SMA should not be ready after %d bars", i+1)
		}
	}

	// 5th bar populates the window
	val, ok := sma.Update(barAt(4, 104.0))
	if !ok {
		t.Fatal("SMA should be defined after 5 bars")
	}
	if !sma.IsReady() {
		t.Error("SMA should be ready after 5 bars")
	}
	expected := (100.0 + 101.0 + 102.0 + 103.0 + 104.0) / 5.0
	if val != expected {
		t.Errorf("Expected SMA %f, got %f", expected, val)
	}
}

func TestSMA_RollingWindow(t *testing.T) {
	sma, _ := NewSMA(5)

	var val float64
	for i := 0; i < 10; i++ {
		val, _ = sma.Update(barAt(i, 100.0+float64(i)))
	}

	// Average of the last 5 closes: 105..109
	expected := (105.0 + 106.0 + 107.0 + 108.0 + 109.0) / 5.0
	if val != expected {
		t.Errorf("Expected SMA %f, got %f", expected, val)
	}
}

func TestSMA_ConstantPrice(t *testing.T) {
	sma, _ := NewSMA(20)

	price := 100.0
	for i := 0; i < 30; i++ {
		val, ok := sma.Update(barAt(i, price))
		if ok && val != price {
			t.Errorf("Position %d: expected SMA %f for constant price, got %f", i, price, val)
		}
	}
}

func TestSMA_UnitIncrements(t *testing.T) {
	// Closes 100..119: SMA at the last bar is mean(100..119) = 109.5
	sma, _ := NewSMA(20)

	var val float64
	var ok bool
	for i := 0; i < 20; i++ {
		val, ok = sma.Update(barAt(i, 100.0+float64(i)))
	}
	if !ok {
		t.Fatal("SMA should be defined at bar 20")
	}
	if val != 109.5 {
		t.Errorf("Expected SMA 109.5, got %f", val)
	}
}

func TestSMA_Reset(t *testing.T) {
	sma, _ := NewSMA(5)

	for i := 0; i < 10; i++ {
		sma.Update(barAt(i, 100.0+float64(i)))
	}

	sma.Reset()

	if sma.IsReady() {
		t.Error("SMA should not be ready after reset")
	}
	if sma.BarsProcessed() != 0 {
		t.Errorf("Expected 0 bars processed after reset, got %d", sma.BarsProcessed())
	}
	if _, ok := sma.Update(barAt(0, 100.0)); ok {
		t.Error("SMA should be undefined on first bar after reset")
	}
}
