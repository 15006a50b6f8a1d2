package types

// Candle is one OHLCV bar. Ts is a unix timestamp in seconds.
type Candle struct {
	Ts                          int64
	Open, High, Low, Close, Vol float64
}

// Series is an ordered price history, strictly increasing by Ts.
type Series []Candle

func (s Series) Closes() []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = c.Close
	}
	return out
}

func (s Series) Highs() []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = c.High
	}
	return out
}

func (s Series) Lows() []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = c.Low
	}
	return out
}

// Latest returns the most recent candle, if any.
func (s Series) Latest() (Candle, bool) {
	if len(s) == 0 {
		return Candle{}, false
	}
	return s[len(s)-1], true
}

// TimeFrame selects the bar interval of a price history request.
type TimeFrame string

const (
	TimeFrameDaily       TimeFrame = "Daily"
	TimeFrameWeekly      TimeFrame = "Weekly"
	TimeFrameIntraday60m TimeFrame = "Intraday (60min)"
)

// OutputSize selects how much history a price source returns.
type OutputSize string

const (
	OutputCompact OutputSize = "compact"
	OutputFull    OutputSize = "full"
)

// Regime is the price-action personality of an instrument.
type Regime string

const (
	RegimeTrendingUp   Regime = "Trending Up"
	RegimeTrendingDown Regime = "Trending Down"
	RegimeVolatile     Regime = "Volatile"
	RegimeRangeBound   Regime = "Range-Bound"
	RegimeNeutral      Regime = "Neutral"
)

// SentimentReading is a scalar sentiment score in [-1, 1] with a
// human-readable summary of how it was produced.
type SentimentReading struct {
	Score   float64 `json:"score"`
	Summary string  `json:"summary"`
	Source  string  `json:"source"`
}

type SignalKind string

const (
	SignalStrongBuy  SignalKind = "STRONG BUY"
	SignalBuy        SignalKind = "BUY"
	SignalHold       SignalKind = "HOLD"
	SignalSell       SignalKind = "SELL"
	SignalStrongSell SignalKind = "STRONG SELL"
)

func (k SignalKind) IsBuy() bool  { return k == SignalBuy || k == SignalStrongBuy }
func (k SignalKind) IsSell() bool { return k == SignalSell || k == SignalStrongSell }

// Signal is the trade recommendation for one analysis run.
type Signal struct {
	Kind       SignalKind `json:"signal"`
	Actionable bool       `json:"actionable"`
	Rationale  string     `json:"rationale"`
}

// RiskParameters are the executable parameters attached to a signal.
// A PositionSize of 0 means "do not trade" regardless of the signal.
type RiskParameters struct {
	EntryPrice     float64 `json:"entry_price"`
	StopLossPrice  float64 `json:"stop_loss_price"`
	TargetPrice    float64 `json:"target_price"`
	PositionSize   int     `json:"position_size"`
	RewardRatio    float64 `json:"reward_ratio"`
	PortfolioValue float64 `json:"portfolio_value"`
}

// AnalysisResult is the assembled output of one advisory run.
type AnalysisResult struct {
	Symbol      string           `json:"symbol"`
	LatestPrice float64          `json:"latest_price"`
	Series      Series           `json:"price_series"`
	Sentiment   SentimentReading `json:"sentiment"`
	Regime      Regime           `json:"regime"`
	Risk        RiskParameters   `json:"risk"`
	Signal      Signal           `json:"recommendation"`
}
