package timeframe

import (
	"fmt"
	"time"

	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/models"
)

// Timeframe is a user-facing lookback label from a closed enumeration
type Timeframe string

const (
	OneDay      Timeframe = "1 Day"
	OneWeek     Timeframe = "1 Week"
	OneMonth    Timeframe = "1 Month"
	ThreeMonths Timeframe = "3 Months"
	SixMonths   Timeframe = "6 Months"
	OneYear     Timeframe = "1 Year"
)

// Params are the concrete fetch parameters a data provider understands:
// a lookback range token, a sampling interval token, and the canonical
// resolution that tags the resulting series
type Params struct {
	Range      string        `json:"range"`
	Interval   string        `json:"interval"`
	Resolution time.Duration `json:"resolution"`
}

// table maps every supported label to its fetch parameters. Adding a new
// timeframe is a data change here, not a code change.
var table = map[Timeframe]Params{
	OneDay:      {Range: "1d", Interval: "1m", Resolution: time.Minute},
	OneWeek:     {Range: "5d", Interval: "1d", Resolution: 24 * time.Hour},
	OneMonth:    {Range: "1mo", Interval: "1d", Resolution: 24 * time.Hour},
	ThreeMonths: {Range: "3mo", Interval: "1d", Resolution: 24 * time.Hour},
	SixMonths:   {Range: "6mo", Interval: "1d", Resolution: 24 * time.Hour},
	OneYear:     {Range: "1y", Interval: "1d", Resolution: 24 * time.Hour},
}

// order preserves the presentation order of the labels
var order = []Timeframe{OneDay, OneWeek, OneMonth, ThreeMonths, SixMonths, OneYear}

// Resolve maps a lookback label to fetch parameters. Unknown labels fail with
// models.ErrInvalidTimeframe.
func Resolve(label string) (Params, error) {
	params, ok := table[Timeframe(label)]
	if !ok {
		return Params{}, fmt.Errorf("%w: %q", models.ErrInvalidTimeframe, label)
	}
	return params, nil
}

// All returns every supported timeframe in presentation order
func All() []Timeframe {
	result := make([]Timeframe, len(order))
	copy(result, order)
	return result
}

// String returns the label
func (t Timeframe) String() string {
	return string(t)
}
