package interfaces

import (
	"context"

	"ammo-agent/internal/types"
)

// SentimentSource scores market sentiment for one symbol. Implementations
// never fail the caller: on any internal error they return a neutral reading
// with a summary explaining why.
type SentimentSource interface {
	GetSentiment(ctx context.Context, symbol string) types.SentimentReading
}
