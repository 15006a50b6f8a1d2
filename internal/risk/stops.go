package risk

import (
	"strings"

	"ammo-agent/internal/types"
)

const (
	DefaultStopPct     = 0.05
	DefaultRewardRatio = 2.0
	DefaultATRMult     = 2.0
	DefaultATRPeriod   = 14
)

// StopPolicy derives the protective stop for a signal.
//
// Two modes:
//   - PCT: entry +/- entry*pct
//   - ATR: entry +/- atrMult*atr, falling back to PCT when no ATR is available
//
// BUY-family signals stop below entry, SELL-family above; HOLD yields 0,
// meaning no risk parameters apply.
type StopPolicy struct {
	Mode      string
	Pct       float64
	ATRMult   float64
	ATRPeriod int
}

func NewStopPolicy(mode string, pct, atrMult float64, atrPeriod int) StopPolicy {
	mode = strings.ToUpper(strings.TrimSpace(mode))
	if mode != "ATR" {
		mode = "PCT"
	}
	if pct <= 0 {
		pct = DefaultStopPct
	}
	if atrMult <= 0 {
		atrMult = DefaultATRMult
	}
	if atrPeriod <= 0 {
		atrPeriod = DefaultATRPeriod
	}
	return StopPolicy{Mode: mode, Pct: pct, ATRMult: atrMult, ATRPeriod: atrPeriod}
}

// StopLoss returns the stop price for the given signal kind, or 0 when the
// signal does not open a position.
func (p StopPolicy) StopLoss(kind types.SignalKind, entryPrice, atr float64) float64 {
	dist := entryPrice * p.Pct
	if p.Mode == "ATR" && atr > 0 {
		dist = p.ATRMult * atr
	}

	switch {
	case kind.IsBuy():
		return entryPrice - dist
	case kind.IsSell():
		return entryPrice + dist
	default:
		return 0
	}
}
