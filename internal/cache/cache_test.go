package cache

import (
	"context"
	"testing"
	"time"

	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/models"
)

func TestKey(t *testing.T) {
	got := Key("AAPL", "1 Day")
	want := "analysis:AAPL:1 Day"
	if got != want {
		t.Errorf("Key() = %q, want %q", got, want)
	}

	// Distinct timeframes for the same symbol must never collide
	if Key("AAPL", "1 Day") == Key("AAPL", "1 Month") {
		t.Error("expected distinct keys for distinct timeframes")
	}
}

func TestNoopAlwaysMisses(t *testing.T) {
	c := NewNoop()
	ctx := context.Background()

	bundle := models.NewNoDataBundle("AAPL", "1 Day")
	if err := c.Set(ctx, Key("AAPL", "1 Day"), bundle, time.Minute); err != nil {
		t.Fatalf("Set() returned error: %v", err)
	}

	got, hit, err := c.Get(ctx, Key("AAPL", "1 Day"))
	if err != nil {
		t.Fatalf("Get() returned error: %v", err)
	}
	if hit {
		t.Error("expected a miss from the noop cache")
	}
	if got != nil {
		t.Errorf("expected nil bundle, got %+v", got)
	}

	if err := c.Close(); err != nil {
		t.Errorf("Close() returned error: %v", err)
	}
}
