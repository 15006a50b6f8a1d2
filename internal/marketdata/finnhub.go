package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"ammo-agent/internal/logger"
	"ammo-agent/internal/trace"
	"ammo-agent/internal/types"
)

const compactBars = 100

var finnhubResolutions = map[types.TimeFrame]string{
	types.TimeFrameDaily:       "D",
	types.TimeFrameWeekly:      "W",
	types.TimeFrameIntraday60m: "60",
}

// Finnhub fetches historical candles from the Finnhub REST API.
type Finnhub struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewFinnhub(apiKey string) *Finnhub {
	return &Finnhub{
		apiKey:  apiKey,
		baseURL: "https://finnhub.io/api/v1",
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type candleResponse struct {
	S string    `json:"s"`
	T []int64   `json:"t"`
	O []float64 `json:"o"`
	H []float64 `json:"h"`
	L []float64 `json:"l"`
	C []float64 `json:"c"`
	V []float64 `json:"v"`
}

func (f *Finnhub) GetPriceSeries(ctx context.Context, symbol string, tf types.TimeFrame, size types.OutputSize) (types.Series, error) {
	ctx, span := trace.StartSpan(ctx, "finnhub-candles")
	defer span.End()

	resolution, ok := finnhubResolutions[tf]
	if !ok {
		return nil, fmt.Errorf("invalid time frame %q", tf)
	}

	to := time.Now()
	lookbackDays := 365
	if tf == types.TimeFrameIntraday60m {
		lookbackDays = 30
	}
	from := to.AddDate(0, 0, -lookbackDays)

	logger.Info(ctx, "Fetching candles from Finnhub", "symbol", symbol, "resolution", resolution)

	reqURL := fmt.Sprintf("%s/stock/candle?symbol=%s&resolution=%s&from=%d&to=%d&token=%s",
		f.baseURL, url.QueryEscape(symbol), resolution, from.Unix(), to.Unix(), f.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("finnhub request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("finnhub request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("finnhub http %d", resp.StatusCode)
	}

	var payload candleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("finnhub decode: %w", err)
	}
	if payload.S != "ok" || len(payload.C) == 0 {
		return nil, fmt.Errorf("finnhub returned no data for %s (status %q); the symbol may be invalid or the API key lacks access", symbol, payload.S)
	}

	series := make(types.Series, 0, len(payload.C))
	for i := range payload.C {
		series = append(series, types.Candle{
			Ts:    at64(payload.T, i),
			Open:  at(payload.O, i),
			High:  at(payload.H, i),
			Low:   at(payload.L, i),
			Close: payload.C[i],
			Vol:   at(payload.V, i),
		})
	}

	if size == types.OutputCompact && len(series) > compactBars {
		series = series[len(series)-compactBars:]
	}

	logger.Info(ctx, "Candles fetched", "symbol", symbol, "count", len(series))
	return series, nil
}

func at(vals []float64, i int) float64 {
	if i < len(vals) {
		return vals[i]
	}
	return 0
}

func at64(vals []int64, i int) int64 {
	if i < len(vals) {
		return vals[i]
	}
	return 0
}
