package regime

import (
	"math"

	"ammo-agent/internal/ta"
	"ammo-agent/internal/types"
)

// Config holds the classification policy. The thresholds are tuning
// constants, not derived values; see DefaultConfig for the standard policy.
type Config struct {
	ShortWindow    int     `yaml:"short_window"`
	LongWindow     int     `yaml:"long_window"`
	MinBars        int     `yaml:"min_bars"`
	SlopeLookback  int     `yaml:"slope_lookback"`
	SlopeThreshold float64 `yaml:"slope_threshold"`
	VolThreshold   float64 `yaml:"vol_threshold"`
}

func DefaultConfig() Config {
	return Config{
		ShortWindow:    10,
		LongWindow:     30,
		MinBars:        20,
		SlopeLookback:  10,
		SlopeThreshold: 0.5,
		VolThreshold:   0.3,
	}
}

// Stats are the intermediate trend and volatility measurements a
// classification is based on. Useful for debug logging and display.
type Stats struct {
	Bars          int
	ShortMA       float64
	LongMA        float64
	Slope         float64
	AnnualizedVol float64
}

// Classifier maps a price series to a market personality. It is stateless
// and safe for concurrent use.
type Classifier struct {
	cfg Config
}

func New(cfg Config) *Classifier {
	def := DefaultConfig()
	if cfg.ShortWindow <= 0 {
		cfg.ShortWindow = def.ShortWindow
	}
	if cfg.LongWindow <= 0 {
		cfg.LongWindow = def.LongWindow
	}
	if cfg.MinBars <= 0 {
		cfg.MinBars = def.MinBars
	}
	if cfg.SlopeLookback <= 0 {
		cfg.SlopeLookback = def.SlopeLookback
	}
	if cfg.SlopeThreshold <= 0 {
		cfg.SlopeThreshold = def.SlopeThreshold
	}
	if cfg.VolThreshold <= 0 {
		cfg.VolThreshold = def.VolThreshold
	}
	return &Classifier{cfg: cfg}
}

// Stats computes the measurements used by Classify. Malformed bars are
// tolerated: zero closes are skipped in the return series and never divide.
func (c *Classifier) Stats(series types.Series) Stats {
	closes := series.Closes()
	st := Stats{Bars: len(closes)}
	if len(closes) == 0 {
		return st
	}

	if v := ta.SMA(closes, c.cfg.ShortWindow); !math.IsNaN(v) {
		st.ShortMA = v
	}

	longMA := ta.SMASeries(closes, c.cfg.LongWindow)
	if n := len(longMA); n > 0 {
		st.LongMA = longMA[n-1]
		// Slope needs lookback+1 points of long MA; otherwise it stays 0.
		if n >= c.cfg.SlopeLookback+1 {
			st.Slope = (longMA[n-1] - longMA[n-c.cfg.SlopeLookback]) / float64(c.cfg.SlopeLookback)
		}
	}

	st.AnnualizedVol = ta.AnnualizedVol(ta.PctReturns(closes))
	return st
}

// Classify returns the market personality of the series. Series shorter
// than MinBars classify as Neutral; every other input maps to exactly one
// of the four real regimes, trend taking precedence over volatility.
func (c *Classifier) Classify(series types.Series) types.Regime {
	if len(series) < c.cfg.MinBars {
		return types.RegimeNeutral
	}

	st := c.Stats(series)
	switch {
	case st.Slope > c.cfg.SlopeThreshold:
		return types.RegimeTrendingUp
	case st.Slope < -c.cfg.SlopeThreshold:
		return types.RegimeTrendingDown
	case st.AnnualizedVol > c.cfg.VolThreshold:
		return types.RegimeVolatile
	default:
		return types.RegimeRangeBound
	}
}
