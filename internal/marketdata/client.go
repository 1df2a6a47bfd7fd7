package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/mfalcao/payagent/internal/domain/models"
)

const (
	defaultBaseURL    = "https://api.coingecko.com/api/v3"
	defaultWindowDays = 50

	// Free tier allows ~30 calls/min; stay well under it.
	requestsPerSec = 0.4
	requestBurst   = 5
)

// Client is the market-data provider adapter. It resolves free-form asset
// names to provider ids, then fetches the spot price and the trailing price
// history concurrently and derives the moving-average baseline.
type Client struct {
	http    *http.Client
	base    string
	window  int
	limiter *rate.Limiter
}

// NewClient builds a client against the given base URL. Empty base and
// non-positive window fall back to the provider defaults.
func NewClient(baseURL string, windowDays int) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	return &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		base:    baseURL,
		window:  windowDays,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSec), requestBurst),
	}
}

type searchResponse struct {
	Coins []struct {
		ID string `json:"id"`
	} `json:"coins"`
}

type marketChartResponse struct {
	// Prices is a series of [timestamp_ms, price] pairs.
	Prices [][]float64 `json:"prices"`
}

// GetPrice returns a fresh snapshot for the asset: the current price and the
// N-day moving average baseline.
//
// Errors: models.ErrUnknownAsset when the provider cannot resolve the asset,
// models.ErrDataUnavailable on transport failures or malformed payloads.
func (c *Client) GetPrice(ctx context.Context, asset string) (models.PriceSnapshot, error) {
	id, err := c.resolveAsset(ctx, asset)
	if err != nil {
		return models.PriceSnapshot{}, err
	}

	var current float64
	var history []float64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = c.fetchSpot(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = c.fetchHistory(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.PriceSnapshot{}, err
	}

	return models.PriceSnapshot{
		Asset:      asset,
		Current:    current,
		Baseline:   movingAverage(history, c.window),
		ObservedAt: time.Now().UTC(),
	}, nil
}

// resolveAsset maps a user-facing asset name ("bitcoin", "BTC") to the
// provider's canonical id via the search endpoint.
func (c *Client) resolveAsset(ctx context.Context, asset string) (string, error) {
	var out searchResponse
	if err := c.get(ctx, "/search?query="+url.QueryEscape(asset), &out); err != nil {
		return "", err
	}
	if len(out.Coins) == 0 {
		return "", fmt.Errorf("%w: %q", models.ErrUnknownAsset, asset)
	}
	return out.Coins[0].ID, nil
}

func (c *Client) fetchSpot(ctx context.Context, id string) (float64, error) {
	var out map[string]map[string]float64
	path := "/simple/price?ids=" + url.QueryEscape(id) + "&vs_currencies=usd"
	if err := c.get(ctx, path, &out); err != nil {
		return 0, err
	}
	price, ok := out[id]["usd"]
	if !ok {
		return 0, fmt.Errorf("%w: no spot price for %q", models.ErrDataUnavailable, id)
	}
	return price, nil
}

func (c *Client) fetchHistory(ctx context.Context, id string) ([]float64, error) {
	var out marketChartResponse
	path := fmt.Sprintf("/coins/%s/market_chart?vs_currency=usd&days=%d&interval=daily",
		url.PathEscape(id), c.window)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	if len(out.Prices) == 0 {
		return nil, fmt.Errorf("%w: empty price history for %q", models.ErrDataUnavailable, id)
	}
	prices := make([]float64, 0, len(out.Prices))
	for _, point := range out.Prices {
		if len(point) < 2 {
			return nil, fmt.Errorf("%w: malformed price point for %q", models.ErrDataUnavailable, id)
		}
		prices = append(prices, point[1])
	}
	return prices, nil
}

// get performs a rate-limited GET and decodes the JSON body. Transport and
// protocol failures are reported as ErrDataUnavailable so callers can tell
// them apart from an unknown asset.
func (c *Client) get(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter: %v", models.ErrDataUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", models.ErrDataUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrDataUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: provider returned %d for %s", models.ErrDataUnavailable, resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", models.ErrDataUnavailable, err)
	}
	return nil
}

// movingAverage averages the trailing window of the series, or the whole
// series when it is shorter than the window.
func movingAverage(prices []float64, window int) float64 {
	if len(prices) == 0 {
		return 0
	}
	start := len(prices) - window
	if start < 0 {
		start = 0
	}
	sum := 0.0
	for _, p := range prices[start:] {
		sum += p
	}
	return sum / float64(len(prices)-start)
}
