package news

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"ammo-agent/internal/logger"
	"ammo-agent/internal/types"
)

// Simulated emits a mildly neutral-biased random sentiment score. Used when
// news-based sentiment is disabled so the pipeline still gets a reading.
type Simulated struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSimulated(seed int64) *Simulated {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulated{rng: rand.New(rand.NewSource(seed))}
}

func (s *Simulated) GetSentiment(ctx context.Context, symbol string) types.SentimentReading {
	s.mu.Lock()
	score := s.rng.Float64() - 0.5 // uniform in [-0.5, 0.5)
	s.mu.Unlock()

	logger.Debug(ctx, "Generated simulated sentiment", "symbol", symbol, "score", score)

	return types.SentimentReading{
		Score:   score,
		Summary: "Sentiment analysis is simulated. The recommendation is primarily based on the instrument's price action.",
		Source:  "simulated",
	}
}
