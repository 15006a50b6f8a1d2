package interfaces

import (
	"context"

	"ammo-agent/internal/types"
)

// PriceSource supplies ordered historical candles for one symbol. An empty
// series together with a non-nil error aborts the whole analysis.
type PriceSource interface {
	GetPriceSeries(ctx context.Context, symbol string, tf types.TimeFrame, size types.OutputSize) (types.Series, error)
}
