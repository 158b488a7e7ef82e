package analysis

import (
	"context"
	"strings"
	"time"

	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/cache"
	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/data"
	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/interpret"
	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/models"
	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/summary"
	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/timeframe"
	"github.com/sakshikhedkar45-commits/Stockanalysis/pkg/indicator"
	"github.com/sakshikhedkar45-commits/Stockanalysis/pkg/logger"
)

// Options holds tunables for the analysis service
type Options struct {
	EnableEMAOverlay bool
	EMAPeriod        int

	// Cache TTLs by series resolution
	IntradayTTL time.Duration
	DailyTTL    time.Duration
}

// Service runs the full analysis pipeline for one (symbol, timeframe) request:
// fetch, normalize, compute indicators, summarize, interpret. The pipeline is
// deterministic, so two calls over the same bars produce identical bundles.
type Service struct {
	provider    data.Provider
	normalizer  *data.Normalizer
	interpreter *interpret.Engine
	cache       cache.Cache
	opts        Options
}

// NewService creates an analysis service backed by the given provider and cache
func NewService(provider data.Provider, bundleCache cache.Cache, opts Options) *Service {
	return &Service{
		provider:    provider,
		normalizer:  data.NewNormalizer(),
		interpreter: interpret.NewEngine(),
		cache:       bundleCache,
		opts:        opts,
	}
}

// Analyze produces the analysis bundle for a symbol over a timeframe label.
// Unavailable data is reported as a no-data bundle, not an error; errors are
// reserved for malformed requests and summarization failures.
func (s *Service) Analyze(ctx context.Context, symbol, timeframeLabel string) (*models.Bundle, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, models.ErrInvalidSymbol
	}

	params, err := timeframe.Resolve(timeframeLabel)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		analysisDuration.WithLabelValues(timeframeLabel).Observe(time.Since(start).Seconds())
	}()

	key := cache.Key(symbol, timeframeLabel)
	if cached, hit, cacheErr := s.cache.Get(ctx, key); cacheErr != nil {
		logger.Warn("Cache read failed, recomputing",
			logger.ErrorField(cacheErr),
			logger.String("key", key),
		)
	} else if hit {
		cacheHits.Inc()
		analysisRequests.WithLabelValues(timeframeLabel, string(cached.Status)).Inc()
		return cached, nil
	}
	cacheMisses.Inc()

	raw, err := s.provider.FetchBars(ctx, symbol, params)
	if err != nil {
		providerFetchErrors.WithLabelValues(s.provider.Name()).Inc()
		logger.Warn("Failed to fetch bars",
			logger.ErrorField(err),
			logger.String("symbol", symbol),
			logger.String("timeframe", timeframeLabel),
			logger.String("provider", s.provider.Name()),
		)
		analysisRequests.WithLabelValues(timeframeLabel, string(models.BundleStatusNoData)).Inc()
		return models.NewNoDataBundle(symbol, timeframeLabel), nil
	}

	series := s.normalizer.Normalize(symbol, params, raw)
	if series.IsEmpty() {
		analysisRequests.WithLabelValues(timeframeLabel, string(models.BundleStatusNoData)).Inc()
		return models.NewNoDataBundle(symbol, timeframeLabel), nil
	}

	indicators, err := s.buildEngine(params).Compute(series)
	if err != nil {
		analysisRequests.WithLabelValues(timeframeLabel, "error").Inc()
		return nil, err
	}

	metrics, err := summary.Summarize(series)
	if err != nil {
		analysisRequests.WithLabelValues(timeframeLabel, "error").Inc()
		return nil, err
	}

	statements := s.interpreter.Interpret(timeframeLabel, series, indicators)

	bundle := &models.Bundle{
		Symbol:         symbol,
		Timeframe:      timeframeLabel,
		Status:         models.BundleStatusOK,
		Bars:           series.Bars,
		Indicators:     indicatorValues(indicators),
		Metrics:        metrics,
		Interpretation: statements,
	}

	if cacheErr := s.cache.Set(ctx, key, bundle, s.ttlFor(params)); cacheErr != nil {
		logger.Warn("Failed to cache bundle",
			logger.ErrorField(cacheErr),
			logger.String("key", key),
		)
	}

	analysisRequests.WithLabelValues(timeframeLabel, string(models.BundleStatusOK)).Inc()
	return bundle, nil
}

// buildEngine assembles a fresh indicator engine for one request. Calculators
// carry window state, so they are never shared across invocations.
func (s *Service) buildEngine(params timeframe.Params) *indicator.Engine {
	factories := indicator.DefaultFactories()
	if s.opts.EnableEMAOverlay {
		factories = append(factories, indicator.CreateTechanEMA(s.opts.EMAPeriod, params.Resolution))
	}
	return indicator.NewEngine(factories...)
}

func (s *Service) ttlFor(params timeframe.Params) time.Duration {
	if params.Resolution == time.Minute {
		return s.opts.IntradayTTL
	}
	return s.opts.DailyTTL
}

func indicatorValues(indicators map[string]models.IndicatorSeries) map[string][]models.IndicatorValue {
	out := make(map[string][]models.IndicatorValue, len(indicators))
	for name, series := range indicators {
		out[name] = series.Values
	}
	return out
}
