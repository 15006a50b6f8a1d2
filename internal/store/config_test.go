package store

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "symbol: AAPL\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Symbol != "AAPL" {
		t.Errorf("expected symbol AAPL, got %s", cfg.Symbol)
	}
	if cfg.TimeFrame != "Daily" {
		t.Errorf("expected default time frame Daily, got %s", cfg.TimeFrame)
	}
	if cfg.Portfolio.Value != 100000 {
		t.Errorf("expected default portfolio 100000, got %f", cfg.Portfolio.Value)
	}
	if cfg.Risk.MaxRiskPerTrade != 0.02 || cfg.Risk.MaxDrawdown != 0.10 || cfg.Risk.RewardRatio != 2.0 {
		t.Errorf("unexpected risk defaults: %+v", cfg.Risk)
	}
	if cfg.Stop.Mode != "PCT" || cfg.Stop.Pct != 0.05 {
		t.Errorf("unexpected stop defaults: %+v", cfg.Stop)
	}
	if cfg.Regime.ShortWindow != 10 || cfg.Regime.LongWindow != 30 || cfg.Regime.MinBars != 20 {
		t.Errorf("unexpected regime defaults: %+v", cfg.Regime)
	}
	if cfg.Data.Provider != "SIMULATED" || cfg.Data.APIKeyEnv != "FINNHUB_API_KEY" {
		t.Errorf("unexpected data defaults: %+v", cfg.Data)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
symbol: MSFT
time_frame: Weekly
portfolio:
  value: 250000
risk:
  max_risk_per_trade: 0.01
stop:
  mode: ATR
  atr_mult: 3.0
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Portfolio.Value != 250000 {
		t.Errorf("expected portfolio 250000, got %f", cfg.Portfolio.Value)
	}
	if cfg.Risk.MaxRiskPerTrade != 0.01 {
		t.Errorf("expected risk 0.01, got %f", cfg.Risk.MaxRiskPerTrade)
	}
	if cfg.Stop.Mode != "ATR" || cfg.Stop.ATRMult != 3.0 {
		t.Errorf("unexpected stop config: %+v", cfg.Stop)
	}
	// Unset fields still default.
	if cfg.Risk.MaxDrawdown != 0.10 {
		t.Errorf("expected default drawdown, got %f", cfg.Risk.MaxDrawdown)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"bad time frame", "time_frame: Monthly\n"},
		{"negative portfolio", "portfolio:\n  value: -5\n"},
		{"risk above one", "risk:\n  max_risk_per_trade: 1.5\n"},
		{"bad stop mode", "stop:\n  mode: TRAILING\n"},
		{"short window above long", "regime:\n  short_window: 40\n  long_window: 30\n"},
		{"unknown provider", "data:\n  provider: BLOOMBERG\n"},
	}

	for _, tc := range cases {
		if _, err := LoadConfig(writeConfig(t, tc.yaml)); err == nil {
			t.Errorf("%s: expected a validation error", tc.name)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
