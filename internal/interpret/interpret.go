package interpret

import (
	"fmt"

	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/models"
	"github.com/sakshikhedkar45-commits/Stockanalysis/pkg/indicator"
)

// Oscillator classification thresholds. The boundary values themselves are
// neutral: only readings strictly above or strictly below classify.
const (
	OverboughtThreshold = 70.0
	OversoldThreshold   = 30.0
)

// Engine applies a fixed, deterministic rule set over the latest indicator
// values and the series price action to produce narrative statements. Rules
// whose inputs are undefined contribute nothing; omission is not an error.
type Engine struct{}

// NewEngine creates a new interpretation engine
func NewEngine() *Engine {
	return &Engine{}
}

// Interpret produces the ordered statement list for one analyzed series.
// timeframeLabel is the user-facing lookback label used in the trend text.
func (e *Engine) Interpret(timeframeLabel string, series *models.Series, indicators map[string]models.IndicatorSeries) []models.Statement {
	statements := make([]models.Statement, 0, 3)

	if stmt, ok := trendStatement(timeframeLabel, series); ok {
		statements = append(statements, stmt)
	}
	if rsiSeries, exists := indicators[indicator.RSIDefaultName]; exists {
		if stmt, ok := oscillatorStatement(&rsiSeries); ok {
			statements = append(statements, stmt)
		}
	}
	if smaSeries, exists := indicators[indicator.SMADefaultName]; exists {
		if stmt, ok := movingAverageStatement(series, &smaSeries); ok {
			statements = append(statements, stmt)
		}
	}

	// Nothing derivable at all: say so explicitly instead of returning silence
	if len(statements) == 0 {
		statements = append(statements, models.Statement{
			Kind:     models.StatementInsufficientData,
			Text:     "Not enough data to generate an interpretation.",
			Polarity: models.PolarityNeutral,
		})
	}

	return statements
}

// trendStatement classifies the move over the full requested period, first
// close against last close. Requires at least two bars.
func trendStatement(timeframeLabel string, series *models.Series) (models.Statement, bool) {
	if series.Len() < 2 {
		return models.Statement{}, false
	}

	start := series.Bars[0].Close
	end := series.Bars[len(series.Bars)-1].Close
	if start == 0 {
		return models.Statement{}, false
	}
	changePct := (end - start) / start * 100

	polarity := models.PolarityBearish
	trend := "Bearish (Downward)"
	if changePct > 0 {
		polarity = models.PolarityBullish
		trend = "Bullish (Upward)"
	}

	return models.Statement{
		Kind: models.StatementTrend,
		Text: fmt.Sprintf("Over the last %s, the price action is %s, moving from %.2f to %.2f (%+.2f%%).",
			timeframeLabel, trend, start, end, changePct),
		Polarity: polarity,
	}, true
}

// oscillatorStatement classifies the RSI at the last position, when defined
func oscillatorStatement(rsiSeries *models.IndicatorSeries) (models.Statement, bool) {
	rsi, defined := rsiSeries.Last()
	if !defined {
		return models.Statement{}, false
	}

	var text string
	var polarity models.Polarity
	switch {
	case rsi > OverboughtThreshold:
		polarity = models.PolarityBearish
		text = fmt.Sprintf("The RSI (%.0f) indicates the stock is currently Overbought (>70). The price may be too high and could correct downwards soon.", rsi)
	case rsi < OversoldThreshold:
		polarity = models.PolarityBullish
		text = fmt.Sprintf("The RSI (%.0f) indicates the stock is currently Oversold (<30). The price may be undervalued and could bounce back.", rsi)
	default:
		polarity = models.PolarityNeutral
		text = fmt.Sprintf("The RSI (%.0f) is in the Neutral zone (30-70), indicating a stable trend.", rsi)
	}

	return models.Statement{
		Kind:     models.StatementOscillator,
		Text:     text,
		Polarity: polarity,
	}, true
}

// movingAverageStatement compares the latest close against the 20-period
// moving average at the last position, when defined
func movingAverageStatement(series *models.Series, smaSeries *models.IndicatorSeries) (models.Statement, bool) {
	sma, defined := smaSeries.Last()
	if !defined {
		return models.Statement{}, false
	}
	lastBar, ok := series.LastBar()
	if !ok {
		return models.Statement{}, false
	}

	if lastBar.Close > sma {
		return models.Statement{
			Kind:     models.StatementMovingAverage,
			Text:     fmt.Sprintf("The stock is trading above its 20-period average (%.2f). Trading above the average typically confirms a short-term uptrend.", sma),
			Polarity: models.PolarityBullish,
		}, true
	}

	return models.Statement{
		Kind:     models.StatementMovingAverage,
		Text:     fmt.Sprintf("The stock is trading below its 20-period average (%.2f). Trading below the average often indicates weakness.", sma),
		Polarity: models.PolarityBearish,
	}, true
}
