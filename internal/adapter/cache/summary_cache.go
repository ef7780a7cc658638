package cache

import (
	"fmt"
	"sync"
	"time"

	"textlab/internal/domain"
	"textlab/internal/usecase"
)

// SummaryCache is a small LRU cache for summarization results, keyed by
// document index and scoring options. Invalidate bumps a generation
// counter so stale entries die after a reindex.
type SummaryCache struct {
	mu       sync.RWMutex
	entries  map[string]*cacheEntry
	order    []string
	maxSize  int
	ttl      time.Duration
	indexGen uint64
}

type cacheEntry struct {
	summary   *domain.Summary
	timestamp time.Time
	indexGen  uint64
}

func NewSummaryCache(maxSize int, ttl time.Duration) *SummaryCache {
	if maxSize <= 0 {
		maxSize = 100
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SummaryCache{
		entries: make(map[string]*cacheEntry),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

func cacheKey(docIndex int, opts usecase.SummarizeOptions) string {
	return fmt.Sprintf("%d:%d:%d", docIndex, opts.MinSentenceLength, opts.TopN)
}

func (c *SummaryCache) Get(docIndex int, opts usecase.SummarizeOptions) (*domain.Summary, bool) {
	c.mu.RLock()
	key := cacheKey(docIndex, opts)
	entry, exists := c.entries[key]
	currentGen := c.indexGen
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if time.Since(entry.timestamp) > c.ttl || entry.indexGen != currentGen {
		c.mu.Lock()
		delete(c.entries, key)
		c.removeFromOrder(key)
		c.mu.Unlock()
		return nil, false
	}

	c.mu.Lock()
	c.moveToEnd(key)
	c.mu.Unlock()

	return entry.summary, true
}

func (c *SummaryCache) Put(docIndex int, opts usecase.SummarizeOptions, summary *domain.Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(docIndex, opts)

	if _, exists := c.entries[key]; exists {
		c.entries[key] = &cacheEntry{
			summary:   summary,
			timestamp: time.Now(),
			indexGen:  c.indexGen,
		}
		c.moveToEnd(key)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = &cacheEntry{
		summary:   summary,
		timestamp: time.Now(),
		indexGen:  c.indexGen,
	}
	c.order = append(c.order, key)
}

// Invalidate drops all entries; call after the corpus is reindexed.
func (c *SummaryCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
	c.order = c.order[:0]
	c.indexGen++
}

func (c *SummaryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *SummaryCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *SummaryCache) moveToEnd(key string) {
	c.removeFromOrder(key)
	c.order = append(c.order, key)
}

func (c *SummaryCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// Summarizer is the subset of the summarize use case the cached wrapper
// needs.
type Summarizer interface {
	Summarize(docIndex int, text string, opts usecase.SummarizeOptions) (*domain.Summary, error)
}

// CachedSummarizer wraps a Summarizer with a SummaryCache.
type CachedSummarizer struct {
	summarizer Summarizer
	cache      *SummaryCache
}

func NewCachedSummarizer(summarizer Summarizer, cache *SummaryCache) *CachedSummarizer {
	return &CachedSummarizer{
		summarizer: summarizer,
		cache:      cache,
	}
}

func (c *CachedSummarizer) Summarize(docIndex int, text string, opts usecase.SummarizeOptions) (*domain.Summary, error) {
	if summary, hit := c.cache.Get(docIndex, opts); hit {
		return summary, nil
	}

	summary, err := c.summarizer.Summarize(docIndex, text, opts)
	if err != nil {
		return nil, err
	}

	c.cache.Put(docIndex, opts, summary)

	return summary, nil
}
