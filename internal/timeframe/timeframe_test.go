package timeframe

import (
	"errors"
	"testing"
	"time"

	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/models"
)

func TestResolve_FullTable(t *testing.T) {
	cases := []struct {
		label      string
		rng        string
		interval   string
		resolution time.Duration
	}{
		{"1 Day", "1d", "1m", time.Minute},
		{"1 Week", "5d", "1d", 24 * time.Hour},
		{"1 Month", "1mo", "1d", 24 * time.Hour},
		{"3 Months", "3mo", "1d", 24 * time.Hour},
		{"6 Months", "6mo", "1d", 24 * time.Hour},
		{"1 Year", "1y", "1d", 24 * time.Hour},
	}

	for _, tc := range cases {
		params, err := Resolve(tc.label)
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", tc.label, err)
		}
		if params.Range != tc.rng {
			t.Errorf("Resolve(%q): expected range %q, got %q", tc.label, tc.rng, params.Range)
		}
		if params.Interval != tc.interval {
			t.Errorf("Resolve(%q): expected interval %q, got %q", tc.label, tc.interval, params.Interval)
		}
		if params.Resolution != tc.resolution {
			t.Errorf("Resolve(%q): expected resolution %v, got %v", tc.label, tc.resolution, params.Resolution)
		}
	}

	if len(cases) != len(All()) {
		t.Errorf("Table test covers %d labels but All() lists %d", len(cases), len(All()))
	}
}

func TestResolve_Deterministic(t *testing.T) {
	for _, tf := range All() {
		first, err := Resolve(tf.String())
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", tf, err)
		}
		second, err := Resolve(tf.String())
		if err != nil {
			t.Fatalf("Resolve(%q) failed on second call: %v", tf, err)
		}
		if first != second {
			t.Errorf("Resolve(%q) not deterministic: %+v vs %+v", tf, first, second)
		}
	}
}

func TestResolve_UnknownLabel(t *testing.T) {
	for _, label := range []string{"", "2 Weeks", "1 day", "YTD"} {
		_, err := Resolve(label)
		if !errors.Is(err, models.ErrInvalidTimeframe) {
			t.Errorf("Resolve(%q): expected ErrInvalidTimeframe, got %v", label, err)
		}
	}
}

func TestAll_Order(t *testing.T) {
	expected := []Timeframe{OneDay, OneWeek, OneMonth, ThreeMonths, SixMonths, OneYear}
	all := All()
	if len(all) != len(expected) {
		t.Fatalf("Expected %d timeframes, got %d", len(expected), len(all))
	}
	for i, tf := range expected {
		if all[i] != tf {
			t.Errorf("Position %d: expected %q, got %q", i, tf, all[i])
		}
	}

	// Callers must not be able to mutate the shared order
	all[0] = "mutated"
	if All()[0] != OneDay {
		t.Error("All() returned a shared slice")
	}
}
