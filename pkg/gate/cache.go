package gate

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/r3k4ce/discord-summarizer/pkg/domain"
)

// Cache memoizes concrete gating verdicts by content fingerprint for a
// fixed TTL. It only exists to bound the request rate to the classifier
// provider, it is in-memory and dies with the process.
//
// Expiry is checked at read time, expired entries behave exactly like
// misses and are removed lazily. Concurrent writes to the same
// fingerprint are benign, last write wins.
type Cache struct {
	ttl     time.Duration
	mu      sync.Mutex
	entries map[string]cacheEntry

	now func() time.Time // injectable for tests
}

type cacheEntry struct {
	verdict   domain.GatingVerdict
	expiresAt time.Time
}

// NewCache creates a verdict cache with the given TTL. A non-positive
// TTL disables caching entirely.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached verdict for the fingerprint if present and not
// expired
func (c *Cache) Get(fingerprint string) (domain.GatingVerdict, bool) {
	if c.ttl <= 0 {
		return domain.GatingVerdict{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[fingerprint]
	if !ok {
		return domain.GatingVerdict{}, false
	}
	if !c.now().Before(entry.expiresAt) {
		delete(c.entries, fingerprint)
		return domain.GatingVerdict{}, false
	}
	return entry.verdict, true
}

// Put stores a verdict for the fingerprint with the cache TTL
func (c *Cache) Put(fingerprint string, verdict domain.GatingVerdict) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[fingerprint] = cacheEntry{verdict: verdict, expiresAt: c.now().Add(c.ttl)}
}

// Len returns the number of stored entries, expired or not
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Fingerprint derives the cache key for an item from its source and
// stable identity (id, falling back to URL)
func Fingerprint(item domain.FeedItem) string {
	identity := item.ID
	if identity == "" {
		identity = item.URL
	}
	sum := sha256.Sum256([]byte(item.SourceID + "\n" + identity))
	return hex.EncodeToString(sum[:])
}
