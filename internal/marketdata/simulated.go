package marketdata

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"ammo-agent/internal/logger"
	"ammo-agent/internal/types"
)

const simulatedBars = 100

var barIntervals = map[types.TimeFrame]time.Duration{
	types.TimeFrameDaily:       24 * time.Hour,
	types.TimeFrameWeekly:      7 * 24 * time.Hour,
	types.TimeFrameIntraday60m: time.Hour,
}

// Simulated produces a random-walk price history. Used whenever no market
// data credentials are configured, so the rest of the pipeline stays
// exercisable without network access.
type Simulated struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulated builds a simulated source. A zero seed picks a random one;
// a fixed seed makes the series reproducible.
func NewSimulated(seed int64) *Simulated {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulated{rng: rand.New(rand.NewSource(seed))}
}

func (s *Simulated) GetPriceSeries(ctx context.Context, symbol string, tf types.TimeFrame, size types.OutputSize) (types.Series, error) {
	interval, ok := barIntervals[tf]
	if !ok {
		return nil, fmt.Errorf("invalid time frame %q", tf)
	}

	logger.Info(ctx, "Generating simulated price series", "symbol", symbol, "time_frame", tf, "bars", simulatedBars)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().Truncate(time.Minute)
	price := 100.0
	series := make(types.Series, 0, simulatedBars)
	for i := 0; i < simulatedBars; i++ {
		price += s.rng.NormFloat64()
		if price < 1 {
			price = 1
		}
		c := types.Candle{
			Ts:    now.Add(-time.Duration(simulatedBars-1-i) * interval).Unix(),
			Open:  price - s.rng.Float64()*2,
			High:  price + s.rng.Float64(),
			Low:   price - s.rng.Float64(),
			Close: price,
			Vol:   1_000_000 + s.rng.Float64()*9_000_000,
		}
		series = append(series, c)
	}
	return series, nil
}
