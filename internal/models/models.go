package models

import (
	"encoding/json"
	"time"
)

// Bar represents a single sampled OHLCV observation
type Bar struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    float64   `json:"volume"`
}

// Validate validates a Bar
// A zero-volume bar with open == high == low == close is a valid inactive period
func (b *Bar) Validate() error {
	if b.Timestamp.IsZero() {
		return ErrInvalidTimestamp
	}
	if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
		return ErrInvalidPrice
	}
	if b.High < b.Low {
		return ErrInvalidBar
	}
	if b.Open < b.Low || b.Open > b.High || b.Close < b.Low || b.Close > b.High {
		return ErrInvalidBar
	}
	if b.Volume < 0 {
		return ErrInvalidVolume
	}
	return nil
}

// Series is a canonical ordered bar sequence, strictly increasing in timestamp,
// tagged with the resolution it was sampled at. It is constructed once by the
// normalizer and never mutated afterwards.
type Series struct {
	Symbol     string        `json:"symbol"`
	Resolution time.Duration `json:"resolution"`
	Bars       []Bar         `json:"bars"`
}

// Len returns the number of bars in the series
func (s *Series) Len() int {
	return len(s.Bars)
}

// IsEmpty returns true if the series holds no bars
func (s *Series) IsEmpty() bool {
	return len(s.Bars) == 0
}

// LastBar returns the most recent bar
func (s *Series) LastBar() (Bar, bool) {
	if len(s.Bars) == 0 {
		return Bar{}, false
	}
	return s.Bars[len(s.Bars)-1], true
}

// Validate validates the series ordering invariant and every bar in it
func (s *Series) Validate() error {
	for i := range s.Bars {
		if err := s.Bars[i].Validate(); err != nil {
			return err
		}
		if i > 0 && !s.Bars[i].Timestamp.After(s.Bars[i-1].Timestamp) {
			return ErrOutOfOrderBar
		}
	}
	return nil
}

// IndicatorValue is one position of an indicator series. Defined is false for
// leading positions where the indicator window is not yet populated; that is a
// first-class state, not an error, and marshals as JSON null.
type IndicatorValue struct {
	Value   float64
	Defined bool
}

// MarshalJSON marshals undefined positions as null
func (v IndicatorValue) MarshalJSON() ([]byte, error) {
	if !v.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(v.Value)
}

// UnmarshalJSON unmarshals null as an undefined position
func (v *IndicatorValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = IndicatorValue{}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	v.Value = f
	v.Defined = true
	return nil
}

// IndicatorSeries maps series positions to optional indicator values. Values
// shares the index domain of the source Series, except for the
// insufficient-history case where it is empty.
type IndicatorSeries struct {
	Name   string           `json:"name"`
	Values []IndicatorValue `json:"values"`
}

// Last returns the value at the final position and whether it is defined
func (s *IndicatorSeries) Last() (float64, bool) {
	if len(s.Values) == 0 {
		return 0, false
	}
	last := s.Values[len(s.Values)-1]
	return last.Value, last.Defined
}

// SummaryMetrics holds the scalar summary statistics derived once per series
type SummaryMetrics struct {
	LatestPrice           float64 `json:"latest_price"`
	PreviousClose         float64 `json:"previous_close"`
	PeriodHigh            float64 `json:"period_high"`
	PeriodLow             float64 `json:"period_low"`
	SessionChangeAbsolute float64 `json:"session_change_absolute"`
	SessionChangePercent  float64 `json:"session_change_percent"`
}

// Polarity is the qualitative direction that produced a statement
type Polarity string

const (
	PolarityBullish Polarity = "bullish"
	PolarityBearish Polarity = "bearish"
	PolarityNeutral Polarity = "neutral"
)

// StatementKind identifies which rule produced a statement
type StatementKind string

const (
	StatementTrend            StatementKind = "trend"
	StatementOscillator       StatementKind = "oscillator"
	StatementMovingAverage    StatementKind = "moving_average"
	StatementInsufficientData StatementKind = "insufficient_data"
)

// Statement is one narrative sentence with its polarity exposed as data so
// consumers can assert on direction without string matching
type Statement struct {
	Kind     StatementKind `json:"kind"`
	Text     string        `json:"text"`
	Polarity Polarity      `json:"polarity"`
}

// BundleStatus distinguishes a usable analysis from the no-data outcome
type BundleStatus string

const (
	BundleStatusOK     BundleStatus = "ok"
	BundleStatusNoData BundleStatus = "no_data"
)

// Bundle is the full output of one (symbol, timeframe) pipeline invocation
type Bundle struct {
	Symbol         string                      `json:"symbol"`
	Timeframe      string                      `json:"timeframe"`
	Status         BundleStatus                `json:"status"`
	Message        string                      `json:"message,omitempty"`
	Bars           []Bar                       `json:"bars"`
	Indicators     map[string][]IndicatorValue `json:"indicators"`
	Metrics        *SummaryMetrics             `json:"metrics,omitempty"`
	Interpretation []Statement                 `json:"interpretation"`
}

// NewNoDataBundle builds the distinguished unavailable result for a request
func NewNoDataBundle(symbol, timeframe string) *Bundle {
	return &Bundle{
		Symbol:         symbol,
		Timeframe:      timeframe,
		Status:         BundleStatusNoData,
		Message:        "Data not available. Please check the ticker symbol.",
		Bars:           []Bar{},
		Indicators:     map[string][]IndicatorValue{},
		Interpretation: []Statement{},
	}
}
