package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ammo-agent/internal/types"
)

type Config struct {
	Symbol    string `yaml:"symbol"`
	TimeFrame string `yaml:"time_frame"`
	Portfolio struct {
		Value float64 `yaml:"value"`
	} `yaml:"portfolio"`
	Risk struct {
		MaxRiskPerTrade float64 `yaml:"max_risk_per_trade"`
		MaxDrawdown     float64 `yaml:"max_drawdown"`
		RewardRatio     float64 `yaml:"reward_ratio"`
	} `yaml:"risk"`
	Stop struct {
		Mode      string  `yaml:"mode"` // PCT or ATR
		Pct       float64 `yaml:"pct"`
		ATRMult   float64 `yaml:"atr_mult"`
		ATRPeriod int     `yaml:"atr_period"`
	} `yaml:"stop"`
	Regime struct {
		ShortWindow    int     `yaml:"short_window"`
		LongWindow     int     `yaml:"long_window"`
		MinBars        int     `yaml:"min_bars"`
		SlopeLookback  int     `yaml:"slope_lookback"`
		SlopeThreshold float64 `yaml:"slope_threshold"`
		VolThreshold   float64 `yaml:"vol_threshold"`
	} `yaml:"regime"`
	Sentiment struct {
		Enabled              bool `yaml:"enabled"`
		MaxArticles          int  `yaml:"max_articles"`
		CacheMinutes         int  `yaml:"cache_minutes"`
		ScrapeTimeoutSeconds int  `yaml:"scrape_timeout_seconds"`
	} `yaml:"sentiment"`
	Data struct {
		Provider  string `yaml:"provider"` // FINNHUB or SIMULATED
		APIKeyEnv string `yaml:"api_key_env"`
		SimSeed   int64  `yaml:"sim_seed"`
	} `yaml:"data"`
}

var validTimeFrames = map[string]bool{
	string(types.TimeFrameDaily):       true,
	string(types.TimeFrameWeekly):      true,
	string(types.TimeFrameIntraday60m): true,
}

func (c *Config) applyDefaults() {
	if c.Symbol == "" {
		c.Symbol = "SPY"
	}
	if c.TimeFrame == "" {
		c.TimeFrame = string(types.TimeFrameDaily)
	}
	if c.Portfolio.Value == 0 {
		c.Portfolio.Value = 100000
	}
	if c.Risk.MaxRiskPerTrade == 0 {
		c.Risk.MaxRiskPerTrade = 0.02
	}
	if c.Risk.MaxDrawdown == 0 {
		c.Risk.MaxDrawdown = 0.10
	}
	if c.Risk.RewardRatio == 0 {
		c.Risk.RewardRatio = 2.0
	}
	if c.Stop.Mode == "" {
		c.Stop.Mode = "PCT"
	}
	if c.Stop.Pct == 0 {
		c.Stop.Pct = 0.05
	}
	if c.Stop.ATRMult == 0 {
		c.Stop.ATRMult = 2.0
	}
	if c.Stop.ATRPeriod == 0 {
		c.Stop.ATRPeriod = 14
	}
	if c.Regime.ShortWindow == 0 {
		c.Regime.ShortWindow = 10
	}
	if c.Regime.LongWindow == 0 {
		c.Regime.LongWindow = 30
	}
	if c.Regime.MinBars == 0 {
		c.Regime.MinBars = 20
	}
	if c.Regime.SlopeLookback == 0 {
		c.Regime.SlopeLookback = 10
	}
	if c.Regime.SlopeThreshold == 0 {
		c.Regime.SlopeThreshold = 0.5
	}
	if c.Regime.VolThreshold == 0 {
		c.Regime.VolThreshold = 0.3
	}
	if c.Sentiment.MaxArticles == 0 {
		c.Sentiment.MaxArticles = 15
	}
	if c.Sentiment.CacheMinutes == 0 {
		c.Sentiment.CacheMinutes = 60
	}
	if c.Sentiment.ScrapeTimeoutSeconds == 0 {
		c.Sentiment.ScrapeTimeoutSeconds = 30
	}
	if c.Data.Provider == "" {
		c.Data.Provider = "SIMULATED"
	}
	if c.Data.APIKeyEnv == "" {
		c.Data.APIKeyEnv = "FINNHUB_API_KEY"
	}
}

func (c *Config) Validate() error {
	if !validTimeFrames[c.TimeFrame] {
		return fmt.Errorf("invalid time_frame '%s': must be 'Daily', 'Weekly' or 'Intraday (60min)'", c.TimeFrame)
	}
	if c.Portfolio.Value <= 0 {
		return fmt.Errorf("portfolio.value must be positive, got %.2f", c.Portfolio.Value)
	}
	if c.Risk.MaxRiskPerTrade <= 0 || c.Risk.MaxRiskPerTrade > 1 {
		return fmt.Errorf("risk.max_risk_per_trade must be in (0, 1], got %.4f", c.Risk.MaxRiskPerTrade)
	}
	if c.Risk.MaxDrawdown <= 0 || c.Risk.MaxDrawdown > 1 {
		return fmt.Errorf("risk.max_drawdown must be in (0, 1], got %.4f", c.Risk.MaxDrawdown)
	}
	if c.Risk.RewardRatio <= 0 {
		return fmt.Errorf("risk.reward_ratio must be positive, got %.2f", c.Risk.RewardRatio)
	}
	if c.Stop.Mode != "PCT" && c.Stop.Mode != "ATR" {
		return fmt.Errorf("stop.mode must be 'PCT' or 'ATR', got '%s'", c.Stop.Mode)
	}
	if c.Regime.ShortWindow >= c.Regime.LongWindow {
		return fmt.Errorf("regime.short_window (%d) must be below regime.long_window (%d)", c.Regime.ShortWindow, c.Regime.LongWindow)
	}
	if c.Data.Provider != "FINNHUB" && c.Data.Provider != "SIMULATED" {
		return fmt.Errorf("data.provider must be 'FINNHUB' or 'SIMULATED', got '%s'", c.Data.Provider)
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
