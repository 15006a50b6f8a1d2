package advisor

import (
	"strings"
	"testing"

	"ammo-agent/internal/types"
)

func TestSynthesizeDecisionTable(t *testing.T) {
	cases := []struct {
		name       string
		score      float64
		regime     types.Regime
		want       types.SignalKind
		actionable bool
	}{
		{"strong uptrend, strong sentiment", 0.6, types.RegimeTrendingUp, types.SignalStrongBuy, true},
		{"uptrend, mild sentiment", 0.3, types.RegimeTrendingUp, types.SignalBuy, true},
		{"strong downtrend, strong negative", -0.6, types.RegimeTrendingDown, types.SignalStrongSell, true},
		{"downtrend, mild negative", -0.2, types.RegimeTrendingDown, types.SignalSell, true},
		{"volatile market holds", 0.9, types.RegimeVolatile, types.SignalHold, false},
		{"range-bound market holds", -0.9, types.RegimeRangeBound, types.SignalHold, false},
		{"uptrend with contrary sentiment", -0.3, types.RegimeTrendingUp, types.SignalHold, false},
		{"downtrend with contrary sentiment", 0.3, types.RegimeTrendingDown, types.SignalHold, false},
		{"neutral regime holds", 0.8, types.RegimeNeutral, types.SignalHold, false},
		{"threshold is exclusive at 0.5", 0.5, types.RegimeTrendingUp, types.SignalBuy, true},
		{"threshold is exclusive at 0.15", 0.15, types.RegimeTrendingUp, types.SignalHold, false},
		{"threshold is exclusive at -0.15", -0.15, types.RegimeTrendingDown, types.SignalHold, false},
	}

	for _, tc := range cases {
		got := Synthesize(tc.score, tc.regime)
		if got.Kind != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.name, tc.want, got.Kind)
		}
		if got.Actionable != tc.actionable {
			t.Errorf("%s: expected actionable=%v, got %v", tc.name, tc.actionable, got.Actionable)
		}
	}
}

func TestSynthesizeRationaleNamesInputs(t *testing.T) {
	cases := []struct {
		score  float64
		regime types.Regime
		frag   string
	}{
		{0.6, types.RegimeTrendingUp, "0.60"},
		{-0.237, types.RegimeTrendingDown, "-0.24"},
		{0.9, types.RegimeVolatile, "0.90"},
		{0.123, types.RegimeNeutral, "0.12"},
	}

	for _, tc := range cases {
		got := Synthesize(tc.score, tc.regime)
		if got.Rationale == "" {
			t.Fatalf("regime %s: empty rationale", tc.regime)
		}
		if !strings.Contains(got.Rationale, string(tc.regime)) {
			t.Errorf("regime %s: rationale does not name the regime: %q", tc.regime, got.Rationale)
		}
		if !strings.Contains(got.Rationale, tc.frag) {
			t.Errorf("regime %s: rationale does not show score %s: %q", tc.regime, tc.frag, got.Rationale)
		}
	}
}

func TestSynthesizeIsPure(t *testing.T) {
	first := Synthesize(0.42, types.RegimeTrendingUp)
	for i := 0; i < 10; i++ {
		got := Synthesize(0.42, types.RegimeTrendingUp)
		if got != first {
			t.Fatalf("output changed across calls: %+v vs %+v", first, got)
		}
	}
}
