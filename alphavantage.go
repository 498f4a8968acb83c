package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const alphaVantageURL = "https://www.alphavantage.co"

// AlphaVantage is a PriceSource backed by the Alpha Vantage GLOBAL_QUOTE
// endpoint. Every lookup is a single bounded HTTP call; any failure is
// reported as ErrPriceUnavailable, never masked with a made-up price.
type AlphaVantage struct {
	client *resty.Client
	apiKey string
}

// NewAlphaVantage creates a client authenticated with apiKey. The timeout
// bounds each lookup end to end.
func NewAlphaVantage(apiKey string, timeout time.Duration) *AlphaVantage {
	client := resty.New().
		SetBaseURL(alphaVantageURL).
		SetTimeout(timeout)
	return &AlphaVantage{client: client, apiKey: apiKey}
}

// SetBaseURL redirects the client to another endpoint. Used by tests.
func (av *AlphaVantage) SetBaseURL(url string) { av.client.SetBaseURL(url) }

// Price looks up the current quote for symbol.
func (av *AlphaVantage) Price(ctx context.Context, symbol string) (Money, error) {
	resp, err := av.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"function": "GLOBAL_QUOTE",
			"symbol":   symbol,
			"apikey":   av.apiKey,
		}).
		Get("/query")
	if err != nil {
		return Money{}, fmt.Errorf("%w for %q: %v", ErrPriceUnavailable, symbol, err)
	}
	if resp.StatusCode() != 200 {
		return Money{}, fmt.Errorf("%w for %q: %s", ErrPriceUnavailable, symbol, resp.Status())
	}

	var jobj any
	if err := json.Unmarshal(resp.Body(), &jobj); err != nil {
		return Money{}, fmt.Errorf("%w for %q: invalid response: %v", ErrPriceUnavailable, symbol, err)
	}

	// The API reports its own failures in-band with a 200 status.
	if msg, err := jsonpath.Get(`$["Error Message"]`, jobj); err == nil {
		return Money{}, fmt.Errorf("%w for %q: %v", ErrPriceUnavailable, symbol, msg)
	}

	jval, err := jsonpath.Get(`$["Global Quote"]["05. price"]`, jobj)
	if err != nil {
		return Money{}, fmt.Errorf("%w: no data found for symbol %q", ErrPriceUnavailable, symbol)
	}
	// The quote comes back as a string like "123.4500".
	str, ok := jval.(string)
	if !ok {
		return Money{}, fmt.Errorf("%w for %q: price is a %T, not a string", ErrPriceUnavailable, symbol, jval)
	}
	value, err := decimal.NewFromString(strings.TrimSpace(str))
	if err != nil {
		return Money{}, fmt.Errorf("%w for %q: cannot parse price %q: %v", ErrPriceUnavailable, symbol, str, err)
	}
	return M(value, USDollar), nil
}
