package advisor

import (
	"context"
	"errors"
	"fmt"

	"ammo-agent/internal/interfaces"
	"ammo-agent/internal/logger"
	"ammo-agent/internal/regime"
	"ammo-agent/internal/risk"
	"ammo-agent/internal/ta"
	"ammo-agent/internal/trace"
	"ammo-agent/internal/types"
)

// ErrNoData is the single fatal condition of an analysis run: the price
// source produced no usable series. Everything else degrades to a safe
// default and still yields a recommendation.
var ErrNoData = errors.New("no usable price data")

// Agent runs the full advisory pipeline for one symbol: price history,
// regime classification, sentiment, signal synthesis, risk parameters.
type Agent struct {
	prices      interfaces.PriceSource
	sentiment   interfaces.SentimentSource
	classifier  *regime.Classifier
	riskMgr     *risk.Manager
	stops       risk.StopPolicy
	rewardRatio float64
}

type Params struct {
	Prices      interfaces.PriceSource
	Sentiment   interfaces.SentimentSource
	Classifier  *regime.Classifier
	Risk        *risk.Manager
	Stops       risk.StopPolicy
	RewardRatio float64
}

func New(p Params) *Agent {
	if p.Classifier == nil {
		p.Classifier = regime.New(regime.DefaultConfig())
	}
	if p.RewardRatio <= 0 {
		p.RewardRatio = risk.DefaultRewardRatio
	}
	return &Agent{
		prices:      p.Prices,
		sentiment:   p.Sentiment,
		classifier:  p.Classifier,
		riskMgr:     p.Risk,
		stops:       p.Stops,
		rewardRatio: p.RewardRatio,
	}
}

// Analyze performs one advisory run. Only a missing price series fails the
// run; sentiment trouble and invalid risk inputs degrade in place.
func (a *Agent) Analyze(ctx context.Context, symbol string, tf types.TimeFrame) (*types.AnalysisResult, error) {
	op := logger.StartOperation(ctx, "analysis-run", "symbol", symbol, "time_frame", string(tf))
	defer op.End()
	ctx = op.Context()

	logger.Info(ctx, "Starting analysis", "symbol", symbol, "time_frame", tf)

	series, err := a.prices.GetPriceSeries(ctx, symbol, tf, types.OutputCompact)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to fetch price series", err, "symbol", symbol)
		return nil, fmt.Errorf("%w: could not retrieve %s price data for %s: %v", ErrNoData, tf, symbol, err)
	}
	latest, ok := series.Latest()
	if !ok {
		logger.Error(ctx, "Price source returned an empty series", "symbol", symbol)
		return nil, fmt.Errorf("%w: empty %s price series for %s", ErrNoData, tf, symbol)
	}

	// Sentiment has no data dependency on the regime, so fetch it while
	// the series is being classified.
	sentiCh := make(chan types.SentimentReading, 1)
	go func() {
		sctx, span := trace.StartSpan(ctx, "sentiment-fetch")
		defer span.End()
		sentiCh <- a.sentiment.GetSentiment(sctx, symbol)
	}()

	stats := a.classifier.Stats(series)
	marketRegime := a.classifier.Classify(series)
	logger.Debug(ctx, "Regime classified",
		"symbol", symbol,
		"regime", marketRegime,
		"bars", stats.Bars,
		"short_ma", stats.ShortMA,
		"long_ma", stats.LongMA,
		"slope", stats.Slope,
		"annualized_vol", stats.AnnualizedVol,
	)

	reading := <-sentiCh
	logger.Debug(ctx, "Sentiment received", "symbol", symbol, "score", reading.Score, "source", reading.Source)

	signal := Synthesize(reading.Score, marketRegime)
	logger.Info(ctx, "Recommendation synthesized",
		"symbol", symbol,
		"signal", signal.Kind,
		"actionable", signal.Actionable,
		"regime", marketRegime,
		"sentiment_score", reading.Score,
	)

	riskParams := a.riskParameters(ctx, series, latest.Close, signal.Kind)

	// One drawdown check per run keeps the peak tracking honest. The
	// breach itself is a signal for a supervisor, not a failure here.
	if a.riskMgr.CheckDrawdown(ctx, a.riskMgr.PortfolioValue()) {
		logger.Warn(ctx, "Portfolio drawdown limit breached during analysis",
			"event", "DRAWDOWN_EXCEEDED", "symbol", symbol)
	}

	logger.Info(ctx, "Analysis complete", "symbol", symbol, "latest_price", latest.Close)

	return &types.AnalysisResult{
		Symbol:      symbol,
		LatestPrice: latest.Close,
		Series:      series,
		Sentiment:   reading,
		Regime:      marketRegime,
		Risk:        riskParams,
		Signal:      signal,
	}, nil
}

// riskParameters derives the stop from the signal direction and attaches
// position size and target. HOLD carries a zero stop and sizes to nothing.
func (a *Agent) riskParameters(ctx context.Context, series types.Series, entryPrice float64, kind types.SignalKind) types.RiskParameters {
	atr := ta.ATR(series.Highs(), series.Lows(), series.Closes(), a.stops.ATRPeriod)

	params := types.RiskParameters{
		EntryPrice:     entryPrice,
		RewardRatio:    a.rewardRatio,
		PortfolioValue: a.riskMgr.PortfolioValue(),
	}

	stop := a.stops.StopLoss(kind, entryPrice, atr)
	if stop == 0 {
		return params
	}

	params.StopLossPrice = stop
	params.PositionSize = a.riskMgr.PositionSize(ctx, entryPrice, stop)
	params.TargetPrice = a.riskMgr.TargetPrice(entryPrice, stop, a.rewardRatio)
	return params
}
