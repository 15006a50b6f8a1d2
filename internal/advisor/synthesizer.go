package advisor

import (
	"fmt"

	"ammo-agent/internal/types"
)

// Synthesize combines the market personality with the sentiment score into a
// trade recommendation. Pure function: identical inputs always produce the
// identical signal and rationale. The sentiment score follows the [-1, 1]
// convention; sources on other scales must normalize before calling.
func Synthesize(sentimentScore float64, regime types.Regime) types.Signal {
	switch {
	case regime == types.RegimeTrendingUp && sentimentScore > 0.5:
		return types.Signal{
			Kind:       types.SignalStrongBuy,
			Actionable: true,
			Rationale: fmt.Sprintf("The stock is in a strong '%s' pattern with very positive market sentiment (score: %.2f). This indicates a high-confidence buying opportunity.",
				regime, sentimentScore),
		}
	case regime == types.RegimeTrendingUp && sentimentScore > 0.15:
		return types.Signal{
			Kind:       types.SignalBuy,
			Actionable: true,
			Rationale: fmt.Sprintf("The stock is in a '%s' pattern and the market sentiment is positive (score: %.2f). This alignment suggests a potential buying opportunity.",
				regime, sentimentScore),
		}
	case regime == types.RegimeTrendingDown && sentimentScore < -0.5:
		return types.Signal{
			Kind:       types.SignalStrongSell,
			Actionable: true,
			Rationale: fmt.Sprintf("The stock is in a strong '%s' pattern with very negative market sentiment (score: %.2f). This indicates a high-confidence selling or shorting opportunity.",
				regime, sentimentScore),
		}
	case regime == types.RegimeTrendingDown && sentimentScore < -0.15:
		return types.Signal{
			Kind:       types.SignalSell,
			Actionable: true,
			Rationale: fmt.Sprintf("The stock is in a '%s' pattern and the market sentiment is negative (score: %.2f). This alignment suggests a potential selling or shorting opportunity.",
				regime, sentimentScore),
		}
	case regime == types.RegimeVolatile || regime == types.RegimeRangeBound:
		return types.Signal{
			Kind: types.SignalHold,
			Rationale: fmt.Sprintf("The market personality is '%s' (sentiment score: %.2f), which suggests a lack of a clear directional trend. It is advisable to wait for a clearer market structure before entering a trade.",
				regime, sentimentScore),
		}
	default:
		// Conflicting trend/sentiment, or a Neutral regime.
		return types.Signal{
			Kind: types.SignalHold,
			Rationale: fmt.Sprintf("The market signals are conflicting. The personality is '%s' but sentiment is neutral or contrary (score: %.2f). It's best to stay on the sidelines.",
				regime, sentimentScore),
		}
	}
}
