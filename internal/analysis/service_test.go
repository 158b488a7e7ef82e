package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/cache"
	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/data"
	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/models"
	"github.com/sakshikhedkar45-commits/Stockanalysis/pkg/indicator"
)

// recordingCache is an in-memory Cache that records the TTL of the last Set
type recordingCache struct {
	store   map[string]*models.Bundle
	lastTTL time.Duration
}

func newRecordingCache() *recordingCache {
	return &recordingCache{store: make(map[string]*models.Bundle)}
}

func (c *recordingCache) Get(_ context.Context, key string) (*models.Bundle, bool, error) {
	bundle, ok := c.store[key]
	return bundle, ok, nil
}

func (c *recordingCache) Set(_ context.Context, key string, bundle *models.Bundle, ttl time.Duration) error {
	c.store[key] = bundle
	c.lastTTL = ttl
	return nil
}

func (c *recordingCache) Close() error { return nil }

// rampBars builds n flat bars whose closes climb by one point per bar
func rampBars(n int) []data.RawBar {
	bars := make([]data.RawBar, n)
	start := time.Date(2024, 1, 2, 14, 30, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		price := 100.0 + float64(i)
		bars[i] = data.RawBar{
			Timestamp: start.Add(time.Duration(i) * 24 * time.Hour),
			Open:      price,
			High:      price,
			Low:       price,
			Close:     price,
			Volume:    1000,
		}
	}
	return bars
}

func newTestService(provider data.Provider, bundleCache cache.Cache) *Service {
	return NewService(provider, bundleCache, Options{
		IntradayTTL: time.Minute,
		DailyTTL:    15 * time.Minute,
	})
}

func TestAnalyzeFullPipeline(t *testing.T) {
	provider := &data.MockProvider{Bars: rampBars(20)}
	svc := newTestService(provider, cache.NewNoop())

	bundle, err := svc.Analyze(context.Background(), "AAPL", "1 Month")
	require.NoError(t, err)
	require.NotNil(t, bundle)

	assert.Equal(t, "AAPL", bundle.Symbol)
	assert.Equal(t, "1 Month", bundle.Timeframe)
	assert.Equal(t, models.BundleStatusOK, bundle.Status)
	assert.Len(t, bundle.Bars, 20)

	sma := bundle.Indicators[indicator.SMADefaultName]
	require.Len(t, sma, 20)
	assert.False(t, sma[18].Defined)
	require.True(t, sma[19].Defined)
	assert.InDelta(t, 109.5, sma[19].Value, 1e-9)

	rsi := bundle.Indicators[indicator.RSIDefaultName]
	require.Len(t, rsi, 20)
	require.True(t, rsi[19].Defined)
	assert.InDelta(t, 100.0, rsi[19].Value, 1e-9)

	require.NotNil(t, bundle.Metrics)
	assert.InDelta(t, 119.0, bundle.Metrics.LatestPrice, 1e-9)
	assert.InDelta(t, 118.0, bundle.Metrics.PreviousClose, 1e-9)
	assert.InDelta(t, 119.0, bundle.Metrics.PeriodHigh, 1e-9)
	assert.InDelta(t, 100.0, bundle.Metrics.PeriodLow, 1e-9)
	assert.InDelta(t, 1.0, bundle.Metrics.SessionChangeAbsolute, 1e-9)

	require.Len(t, bundle.Interpretation, 3)
	assert.Equal(t, models.StatementTrend, bundle.Interpretation[0].Kind)
	assert.Equal(t, models.PolarityBullish, bundle.Interpretation[0].Polarity)
	assert.Equal(t, models.StatementOscillator, bundle.Interpretation[1].Kind)
	assert.Equal(t, models.PolarityBearish, bundle.Interpretation[1].Polarity) // RSI 100 is overbought
	assert.Equal(t, models.StatementMovingAverage, bundle.Interpretation[2].Kind)
	assert.Equal(t, models.PolarityBullish, bundle.Interpretation[2].Polarity)
}

func TestAnalyzeProviderFailureYieldsNoData(t *testing.T) {
	provider := &data.MockProvider{Err: errors.New("upstream unreachable")}
	svc := newTestService(provider, cache.NewNoop())

	bundle, err := svc.Analyze(context.Background(), "AAPL", "1 Day")
	require.NoError(t, err)
	require.NotNil(t, bundle)

	assert.Equal(t, models.BundleStatusNoData, bundle.Status)
	assert.NotEmpty(t, bundle.Message)
	assert.Empty(t, bundle.Bars)
	assert.Empty(t, bundle.Indicators)
	assert.Nil(t, bundle.Metrics)
}

func TestAnalyzeNoDataIsNotCached(t *testing.T) {
	provider := &data.MockProvider{Err: errors.New("upstream unreachable")}
	rc := newRecordingCache()
	svc := newTestService(provider, rc)

	_, err := svc.Analyze(context.Background(), "AAPL", "1 Day")
	require.NoError(t, err)
	assert.Empty(t, rc.store)
}

func TestAnalyzeShortHistory(t *testing.T) {
	provider := &data.MockProvider{Bars: rampBars(10)}
	svc := newTestService(provider, cache.NewNoop())

	bundle, err := svc.Analyze(context.Background(), "AAPL", "1 Month")
	require.NoError(t, err)

	assert.Equal(t, models.BundleStatusOK, bundle.Status)
	assert.Len(t, bundle.Bars, 10)
	assert.Empty(t, bundle.Indicators[indicator.SMADefaultName])
	assert.Empty(t, bundle.Indicators[indicator.RSIDefaultName])
	require.NotNil(t, bundle.Metrics)

	// Only the trend rule can fire without indicator values
	require.Len(t, bundle.Interpretation, 1)
	assert.Equal(t, models.StatementTrend, bundle.Interpretation[0].Kind)
}

func TestAnalyzeInvalidInputs(t *testing.T) {
	svc := newTestService(&data.MockProvider{}, cache.NewNoop())

	_, err := svc.Analyze(context.Background(), "AAPL", "2 Weeks")
	assert.ErrorIs(t, err, models.ErrInvalidTimeframe)

	_, err = svc.Analyze(context.Background(), "   ", "1 Day")
	assert.ErrorIs(t, err, models.ErrInvalidSymbol)
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	svc := newTestService(&data.MockProvider{}, cache.NewNoop())

	first, err := svc.Analyze(context.Background(), "MSFT", "3 Months")
	require.NoError(t, err)
	second, err := svc.Analyze(context.Background(), "MSFT", "3 Months")
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestAnalyzeCacheHitSkipsProvider(t *testing.T) {
	rc := newRecordingCache()
	cached := models.NewNoDataBundle("AAPL", "1 Day")
	cached.Status = models.BundleStatusOK
	cached.Message = ""
	rc.store[cache.Key("AAPL", "1 Day")] = cached

	// A provider that would fail proves the hit short-circuits the fetch
	provider := &data.MockProvider{Err: errors.New("should not be called")}
	svc := newTestService(provider, rc)

	bundle, err := svc.Analyze(context.Background(), "AAPL", "1 Day")
	require.NoError(t, err)
	assert.Same(t, cached, bundle)
}

func TestAnalyzeCacheTTLByResolution(t *testing.T) {
	rc := newRecordingCache()
	svc := newTestService(&data.MockProvider{}, rc)

	_, err := svc.Analyze(context.Background(), "AAPL", "1 Day")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, rc.lastTTL)

	_, err = svc.Analyze(context.Background(), "AAPL", "1 Year")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, rc.lastTTL)
}

func TestAnalyzeNormalizesSymbol(t *testing.T) {
	svc := newTestService(&data.MockProvider{}, cache.NewNoop())

	bundle, err := svc.Analyze(context.Background(), " aapl ", "1 Day")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", bundle.Symbol)
}

func TestAnalyzeEMAOverlay(t *testing.T) {
	provider := &data.MockProvider{Bars: rampBars(30)}
	svc := NewService(provider, cache.NewNoop(), Options{
		EnableEMAOverlay: true,
		EMAPeriod:        20,
		IntradayTTL:      time.Minute,
		DailyTTL:         15 * time.Minute,
	})

	bundle, err := svc.Analyze(context.Background(), "AAPL", "1 Month")
	require.NoError(t, err)

	ema := bundle.Indicators["ema_20"]
	require.Len(t, ema, 30)
	assert.False(t, ema[10].Defined)
	assert.True(t, ema[29].Defined)
}
