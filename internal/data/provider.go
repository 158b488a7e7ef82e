package data

import (
	"context"
	"errors"
	"time"

	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/timeframe"
)

var (
	// ErrUnknownProvider is returned when a provider type is not registered
	ErrUnknownProvider = errors.New("unknown provider type")
	// ErrProviderAlreadyRegistered is returned when registering a duplicate provider type
	ErrProviderAlreadyRegistered = errors.New("provider type already registered")
	// ErrNoBars is returned when the provider response carries no usable rows
	ErrNoBars = errors.New("provider returned no bars")
)

// RawBar is one uncleaned observation as delivered by a provider. It has not
// passed validation yet; the normalizer decides what survives.
type RawBar struct {
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
}

// Provider defines the interface for market data providers
type Provider interface {
	// FetchBars returns the raw bars for a symbol over the resolved fetch
	// parameters. Any provider-level failure is treated by callers uniformly
	// as "no usable data"; retries are the caller's concern, not ours.
	FetchBars(ctx context.Context, symbol string, params timeframe.Params) ([]RawBar, error)

	// Name returns the provider type (e.g., "yahoo", "mock")
	Name() string
}

// ProviderConfig holds configuration for a provider
type ProviderConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// ProviderFactory creates provider instances by registered type
type ProviderFactory struct {
	factories map[string]func(ProviderConfig) (Provider, error)
}

// NewProviderFactory creates a factory with the built-in providers registered
func NewProviderFactory() *ProviderFactory {
	factory := &ProviderFactory{
		factories: make(map[string]func(ProviderConfig) (Provider, error)),
	}

	factory.RegisterProvider("yahoo", NewYahooProvider)
	factory.RegisterProvider("mock", NewMockProvider)

	return factory
}

// CreateProvider creates a new provider instance of the given type
func (f *ProviderFactory) CreateProvider(providerType string, config ProviderConfig) (Provider, error) {
	factoryFunc, exists := f.factories[providerType]
	if !exists {
		return nil, ErrUnknownProvider
	}
	return factoryFunc(config)
}

// RegisterProvider registers a custom provider factory function
func (f *ProviderFactory) RegisterProvider(providerType string, factoryFunc func(ProviderConfig) (Provider, error)) error {
	if _, exists := f.factories[providerType]; exists {
		return ErrProviderAlreadyRegistered
	}
	f.factories[providerType] = factoryFunc
	return nil
}

// ListProviders returns the registered provider types
func (f *ProviderFactory) ListProviders() []string {
	providers := make([]string, 0, len(f.factories))
	for providerType := range f.factories {
		providers = append(providers, providerType)
	}
	return providers
}
