package marketdata

import (
	"context"
	"testing"

	"ammo-agent/internal/types"
)

func TestSimulatedSeriesShape(t *testing.T) {
	ctx := context.Background()
	src := NewSimulated(42)

	series, err := src.GetPriceSeries(ctx, "SPY", types.TimeFrameDaily, types.OutputCompact)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != simulatedBars {
		t.Fatalf("expected %d bars, got %d", simulatedBars, len(series))
	}

	for i, c := range series {
		if i > 0 && c.Ts <= series[i-1].Ts {
			t.Fatalf("timestamps must strictly increase: bar %d has %d after %d", i, c.Ts, series[i-1].Ts)
		}
		if c.Close <= 0 {
			t.Errorf("bar %d: close must stay positive, got %f", i, c.Close)
		}
		if c.Vol < 1_000_000 || c.Vol > 10_000_000 {
			t.Errorf("bar %d: volume %f outside expected range", i, c.Vol)
		}
	}
}

func TestSimulatedIsReproducible(t *testing.T) {
	ctx := context.Background()

	a, err := NewSimulated(7).GetPriceSeries(ctx, "SPY", types.TimeFrameDaily, types.OutputCompact)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewSimulated(7).GetPriceSeries(ctx, "SPY", types.TimeFrameDaily, types.OutputCompact)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range a {
		if a[i].Close != b[i].Close || a[i].Open != b[i].Open {
			t.Fatalf("bar %d differs across runs with the same seed", i)
		}
	}
}

func TestSimulatedRejectsUnknownTimeFrame(t *testing.T) {
	ctx := context.Background()
	src := NewSimulated(1)

	if _, err := src.GetPriceSeries(ctx, "SPY", types.TimeFrame("Monthly"), types.OutputCompact); err == nil {
		t.Error("expected an error for an unknown time frame")
	}
}
