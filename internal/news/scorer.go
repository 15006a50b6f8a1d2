package news

import (
	"fmt"
	"strings"

	"ammo-agent/internal/types"
)

// Headline lexicon. Deliberately coarse: the scorer only needs to capture
// the overall tone of recent coverage, not per-article nuance.
var bullishTerms = []string{
	"beat", "beats", "surge", "soar", "rally", "upgrade", "record",
	"growth", "strong", "profit", "gain", "buyback", "outperform",
	"raises guidance", "all-time high", "dividend increase", "expansion",
}

var bearishTerms = []string{
	"miss", "misses", "plunge", "slump", "selloff", "downgrade",
	"lawsuit", "probe", "investigation", "weak", "loss", "layoff",
	"cuts guidance", "recall", "fraud", "bankruptcy", "decline",
}

// scoreArticles maps the balance of bullish and bearish mentions across the
// articles into a score on [-1, 1]: the bullish share of all matched terms,
// rescaled from [0, 1].
func scoreArticles(symbol string, articles []Article) types.SentimentReading {
	pos, neg := 0, 0
	for _, a := range articles {
		text := strings.ToLower(a.Title + " " + a.Content)
		for _, term := range bullishTerms {
			pos += strings.Count(text, term)
		}
		for _, term := range bearishTerms {
			neg += strings.Count(text, term)
		}
	}

	score := 0.0
	if total := pos + neg; total > 0 {
		ratio := float64(pos) / float64(total)
		score = 2*ratio - 1
	}

	return types.SentimentReading{
		Score: score,
		Summary: fmt.Sprintf("Scored %d recent articles for %s: %d bullish and %d bearish mentions.",
			len(articles), symbol, pos, neg),
		Source: "news",
	}
}
