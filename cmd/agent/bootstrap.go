package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"ammo-agent/internal/advisor"
	"ammo-agent/internal/interfaces"
	"ammo-agent/internal/logger"
	"ammo-agent/internal/marketdata"
	"ammo-agent/internal/news"
	"ammo-agent/internal/regime"
	"ammo-agent/internal/risk"
	"ammo-agent/internal/store"
	"ammo-agent/internal/trace"
)

// bootstrap wires logging, tracing, configuration and the data sources into
// a ready-to-run agent.
func bootstrap(ctx context.Context, cfgPath string) (*advisor.Agent, *store.Config, error) {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	cfg, err := store.LoadConfig(cfgPath)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", cfgPath)
		return nil, nil, err
	}

	agent := advisor.New(advisor.Params{
		Prices:    buildPriceSource(ctx, cfg),
		Sentiment: buildSentimentSource(cfg),
		Classifier: regime.New(regime.Config{
			ShortWindow:    cfg.Regime.ShortWindow,
			LongWindow:     cfg.Regime.LongWindow,
			MinBars:        cfg.Regime.MinBars,
			SlopeLookback:  cfg.Regime.SlopeLookback,
			SlopeThreshold: cfg.Regime.SlopeThreshold,
			VolThreshold:   cfg.Regime.VolThreshold,
		}),
		Risk:        risk.NewManager(cfg.Portfolio.Value, cfg.Risk.MaxRiskPerTrade, cfg.Risk.MaxDrawdown),
		Stops:       risk.NewStopPolicy(cfg.Stop.Mode, cfg.Stop.Pct, cfg.Stop.ATRMult, cfg.Stop.ATRPeriod),
		RewardRatio: cfg.Risk.RewardRatio,
	})

	return agent, cfg, nil
}

// buildPriceSource picks Finnhub when a key is configured and present,
// otherwise falls back to the simulated random walk.
func buildPriceSource(ctx context.Context, cfg *store.Config) interfaces.PriceSource {
	if strings.EqualFold(cfg.Data.Provider, "FINNHUB") {
		if key := os.Getenv(cfg.Data.APIKeyEnv); key != "" {
			return marketdata.NewFinnhub(key)
		}
		logger.Warn(ctx, "Market data API key missing, using simulated prices", "env", cfg.Data.APIKeyEnv)
	}
	return marketdata.NewSimulated(cfg.Data.SimSeed)
}

func buildSentimentSource(cfg *store.Config) interfaces.SentimentSource {
	if !cfg.Sentiment.Enabled {
		return news.NewSimulated(0)
	}
	return news.NewService(&news.ServiceConfig{
		MaxArticles:    cfg.Sentiment.MaxArticles,
		CacheDuration:  time.Duration(cfg.Sentiment.CacheMinutes) * time.Minute,
		ScraperTimeout: time.Duration(cfg.Sentiment.ScrapeTimeoutSeconds) * time.Second,
		Enabled:        true,
	})
}
