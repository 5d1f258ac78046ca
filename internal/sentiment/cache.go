package sentiment

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// CachedScorer memoizes successful scores of the wrapped scorer in memory.
// Failures are never cached.
type CachedScorer struct {
	next  LexicalScorer
	cache *cache.Cache
}

func NewCachedScorer(next LexicalScorer, ttl, cleanupInterval time.Duration) *CachedScorer {
	return &CachedScorer{
		next:  next,
		cache: cache.New(ttl, cleanupInterval),
	}
}

func (c *CachedScorer) Score(text string) (LexicalScore, error) {
	if v, ok := c.cache.Get(text); ok {
		return v.(LexicalScore), nil
	}

	score, err := c.next.Score(text)
	if err != nil {
		return LexicalScore{}, err
	}
	c.cache.Set(text, score, cache.DefaultExpiration)
	return score, nil
}

func (c *CachedScorer) Len() int {
	return c.cache.ItemCount()
}
