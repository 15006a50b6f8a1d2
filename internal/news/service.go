package news

import (
	"context"
	"sync"
	"time"

	"ammo-agent/internal/logger"
	"ammo-agent/internal/trace"
	"ammo-agent/internal/types"
)

// Service provides news-based sentiment with caching. It implements the
// sentiment source contract: it never returns an error, degrading to a
// neutral reading whenever scraping fails or is disabled.
type Service struct {
	scraper *Scraper
	cache   *sentimentCache
	cfg     *ServiceConfig
}

// ServiceConfig configures the news sentiment service
type ServiceConfig struct {
	MaxArticles    int           // Maximum articles to scrape per symbol
	CacheDuration  time.Duration // How long to cache sentiment data
	ScraperTimeout time.Duration // Timeout for scraping operations
	Enabled        bool          // Whether sentiment analysis is enabled
}

// DefaultServiceConfig returns default configuration
func DefaultServiceConfig() *ServiceConfig {
	return &ServiceConfig{
		MaxArticles:    15,
		CacheDuration:  1 * time.Hour,
		ScraperTimeout: 30 * time.Second,
		Enabled:        true,
	}
}

func NewService(cfg *ServiceConfig) *Service {
	if cfg == nil {
		cfg = DefaultServiceConfig()
	}
	return &Service{
		scraper: NewScraper(cfg.ScraperTimeout),
		cache:   newSentimentCache(cfg.CacheDuration),
		cfg:     cfg,
	}
}

// GetSentiment scores recent news coverage of the symbol. The score is on
// the [-1, 1] scale expected by the synthesizer.
func (s *Service) GetSentiment(ctx context.Context, symbol string) types.SentimentReading {
	ctx, span := trace.StartSpan(ctx, "news-sentiment")
	defer span.End()

	if !s.cfg.Enabled {
		return neutralReading("Sentiment analysis disabled")
	}

	if reading, found := s.cache.get(symbol); found {
		logger.Debug(ctx, "Sentiment served from cache", "symbol", symbol, "score", reading.Score)
		return reading
	}

	articles, err := s.scraper.Scrape(ctx, symbol, s.cfg.MaxArticles)
	if err != nil {
		logger.Warn(ctx, "News scraping failed, falling back to neutral sentiment",
			"symbol", symbol, "error", err)
		return neutralReading("News retrieval failed; treating sentiment as neutral.")
	}
	if len(articles) == 0 {
		logger.Info(ctx, "No articles found, sentiment is neutral", "symbol", symbol)
		return neutralReading("No recent news found; treating sentiment as neutral.")
	}

	reading := scoreArticles(symbol, articles)
	s.cache.set(symbol, reading)

	logger.Info(ctx, "News sentiment scored", "symbol", symbol, "score", reading.Score, "articles", len(articles))
	return reading
}

func neutralReading(summary string) types.SentimentReading {
	return types.SentimentReading{Score: 0, Summary: summary, Source: "news"}
}

// sentimentCache stores sentiment results temporarily
type sentimentCache struct {
	mu   sync.RWMutex
	data map[string]*cacheEntry
	ttl  time.Duration
}

type cacheEntry struct {
	reading   types.SentimentReading
	timestamp time.Time
}

func newSentimentCache(ttl time.Duration) *sentimentCache {
	return &sentimentCache{
		data: make(map[string]*cacheEntry),
		ttl:  ttl,
	}
}

// get retrieves cached sentiment if still valid
func (c *sentimentCache) get(symbol string) (types.SentimentReading, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.data[symbol]
	if !exists || time.Since(entry.timestamp) > c.ttl {
		return types.SentimentReading{}, false
	}
	return entry.reading, true
}

func (c *sentimentCache) set(symbol string, reading types.SentimentReading) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[symbol] = &cacheEntry{reading: reading, timestamp: time.Now()}
}
