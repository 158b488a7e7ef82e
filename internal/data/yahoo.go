package data

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/timeframe"
)

const (
	defaultYahooBaseURL = "https://query1.finance.yahoo.com"
	defaultUserAgent    = "Mozilla/5.0"
	defaultFetchTimeout = 30 * time.Second
)

// YahooProvider fetches bars from the Yahoo Finance chart API
type YahooProvider struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewYahooProvider creates a new Yahoo Finance provider
func NewYahooProvider(config ProviderConfig) (Provider, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultYahooBaseURL
	}
	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}

	return &YahooProvider{
		client:    &http.Client{Timeout: timeout},
		baseURL:   baseURL,
		userAgent: userAgent,
	}, nil
}

// Name returns the provider type
func (p *YahooProvider) Name() string {
	return "yahoo"
}

// yahooChart is the response structure of the Yahoo Finance chart API.
// Quote arrays carry null for holiday/halted rows, hence the pointers.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchBars fetches raw bars for the symbol using the resolved range and
// interval tokens. Null rows are skipped; ordering is left to the normalizer.
func (p *YahooProvider) FetchBars(ctx context.Context, symbol string, params timeframe.Params) ([]RawBar, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		p.baseURL, url.PathEscape(symbol), params.Interval, params.Range)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("yahoo request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d", resp.StatusCode)
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, ErrNoBars
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	bars := make([]RawBar, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		if i >= len(quote.Open) || i >= len(quote.High) || i >= len(quote.Low) || i >= len(quote.Close) {
			break
		}
		if quote.Open[i] == nil || quote.High[i] == nil || quote.Low[i] == nil || quote.Close[i] == nil {
			continue // null rows (holidays, halts)
		}
		var volume float64
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			volume = *quote.Volume[i]
		}
		bars = append(bars, RawBar{
			Timestamp: time.Unix(ts, 0).UTC(),
			Open:      *quote.Open[i],
			High:      *quote.High[i],
			Low:       *quote.Low[i],
			Close:     *quote.Close[i],
			Volume:    volume,
		})
	}

	if len(bars) == 0 {
		return nil, ErrNoBars
	}
	return bars, nil
}
