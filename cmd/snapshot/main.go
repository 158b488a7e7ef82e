// cmd/snapshot renders a one-shot analysis for a symbol on the terminal,
// using the same pipeline the HTTP service runs.
//
// Usage:
//
//	go run ./cmd/snapshot -symbol AAPL -timeframe "6 Months"
//	go run ./cmd/snapshot -symbol AAPL -all -json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/analysis"
	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/cache"
	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/config"
	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/data"
	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/models"
	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/timeframe"
	"github.com/sakshikhedkar45-commits/Stockanalysis/pkg/logger"
)

func main() {
	// Flags
	symbol := flag.String("symbol", "", "Ticker symbol to analyze")
	tfLabel := flag.String("timeframe", "1 Day", "Timeframe label (e.g. \"6 Months\")")
	allTimeframes := flag.Bool("all", false, "Analyze every supported timeframe")
	asJSON := flag.Bool("json", false, "Emit raw bundle JSON instead of a narrative")
	providerName := flag.String("provider", "", "Override the configured data provider")
	flag.Parse()

	if *symbol == "" {
		fmt.Fprintln(os.Stderr, "Usage: snapshot -symbol SYMBOL [-timeframe LABEL] [-all] [-json]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *providerName != "" {
		cfg.Provider.Name = *providerName
	}

	// Keep the terminal clean; errors still surface
	if err := logger.Init("error", cfg.Environment); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	providerFactory := data.NewProviderFactory()
	provider, err := providerFactory.CreateProvider(cfg.Provider.Name, data.ProviderConfig{
		BaseURL:   cfg.Provider.BaseURL,
		UserAgent: cfg.Provider.UserAgent,
		Timeout:   cfg.Provider.Timeout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize provider: %v\n", err)
		os.Exit(1)
	}

	service := analysis.NewService(provider, cache.NewNoop(), analysis.Options{
		EnableEMAOverlay: cfg.Analysis.EnableEMAOverlay,
		EMAPeriod:        cfg.Analysis.EMAPeriod,
	})

	labels := []string{*tfLabel}
	if *allTimeframes {
		labels = labels[:0]
		for _, tf := range timeframe.All() {
			labels = append(labels, tf.String())
		}
	}

	ctx := context.Background()
	for _, label := range labels {
		bundle, err := service.Analyze(ctx, *symbol, label)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s (%s): %v\n", *symbol, label, err)
			os.Exit(1)
		}

		if *asJSON {
			encoded, err := json.MarshalIndent(bundle, "", "  ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to encode bundle: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(encoded))
			continue
		}

		printNarrative(bundle)
	}
}

func printNarrative(bundle *models.Bundle) {
	fmt.Printf("%s (%s)\n", bundle.Symbol, bundle.Timeframe)

	if bundle.Status == models.BundleStatusNoData {
		fmt.Printf("  %s\n\n", bundle.Message)
		return
	}

	if m := bundle.Metrics; m != nil {
		fmt.Printf("  Price %.2f  (%+.2f, %+.2f%%)\n", m.LatestPrice, m.SessionChangeAbsolute, m.SessionChangePercent)
		fmt.Printf("  Range %.2f to %.2f over %d bars\n", m.PeriodLow, m.PeriodHigh, len(bundle.Bars))
	}

	names := make([]string, 0, len(bundle.Indicators))
	for name := range bundle.Indicators {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		values := bundle.Indicators[name]
		if len(values) == 0 {
			continue
		}
		if last := values[len(values)-1]; last.Defined {
			fmt.Printf("  %s: %.2f\n", name, last.Value)
		}
	}

	for _, statement := range bundle.Interpretation {
		fmt.Printf("  [%s] %s\n", statement.Polarity, statement.Text)
	}
	fmt.Println()
}
