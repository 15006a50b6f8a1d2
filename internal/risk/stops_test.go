package risk

import (
	"math"
	"testing"

	"ammo-agent/internal/types"
)

func TestStopLossPctMode(t *testing.T) {
	p := NewStopPolicy("PCT", 0.05, 0, 0)

	if got := p.StopLoss(types.SignalBuy, 100, 0); got != 95 {
		t.Errorf("BUY stop: expected 95, got %f", got)
	}
	if got := p.StopLoss(types.SignalStrongBuy, 100, 0); got != 95 {
		t.Errorf("STRONG BUY stop: expected 95, got %f", got)
	}
	if got := p.StopLoss(types.SignalSell, 100, 0); got != 105 {
		t.Errorf("SELL stop: expected 105, got %f", got)
	}
	if got := p.StopLoss(types.SignalStrongSell, 100, 0); got != 105 {
		t.Errorf("STRONG SELL stop: expected 105, got %f", got)
	}
	if got := p.StopLoss(types.SignalHold, 100, 0); got != 0 {
		t.Errorf("HOLD stop: expected 0, got %f", got)
	}
}

func TestStopLossATRMode(t *testing.T) {
	p := NewStopPolicy("ATR", 0.05, 2.0, 14)

	if got := p.StopLoss(types.SignalBuy, 100, 2); got != 96 {
		t.Errorf("ATR BUY stop: expected 96, got %f", got)
	}
	if got := p.StopLoss(types.SignalSell, 100, 2); got != 104 {
		t.Errorf("ATR SELL stop: expected 104, got %f", got)
	}
}

func TestStopLossATRFallsBackToPct(t *testing.T) {
	p := NewStopPolicy("ATR", 0.05, 2.0, 14)

	// No ATR available (zero or NaN): fall back to the percentage stop.
	if got := p.StopLoss(types.SignalBuy, 100, 0); got != 95 {
		t.Errorf("zero ATR: expected 95, got %f", got)
	}
	if got := p.StopLoss(types.SignalBuy, 100, math.NaN()); got != 95 {
		t.Errorf("NaN ATR: expected 95, got %f", got)
	}
}

func TestNewStopPolicyNormalizes(t *testing.T) {
	p := NewStopPolicy("atr", 0, 0, 0)
	if p.Mode != "ATR" {
		t.Errorf("expected mode ATR, got %s", p.Mode)
	}
	if p.Pct != DefaultStopPct || p.ATRMult != DefaultATRMult || p.ATRPeriod != DefaultATRPeriod {
		t.Errorf("expected defaults, got %+v", p)
	}

	p = NewStopPolicy("bogus", 0.03, 1.5, 10)
	if p.Mode != "PCT" {
		t.Errorf("unknown mode should fall back to PCT, got %s", p.Mode)
	}
	if p.Pct != 0.03 {
		t.Errorf("expected pct 0.03, got %f", p.Pct)
	}
}
