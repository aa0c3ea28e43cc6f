package paradox

import "sync"

// InternCache deduplicates strings so that identical statement keys across
// many parsed files share one backing allocation.
type InternCache interface {
	// Intern returns a canonical instance equal to s.
	Intern(s string) string
}

// NewInternCache creates a map-backed InternCache. It is safe for
// concurrent use, so one cache can back parsers running in parallel.
func NewInternCache() InternCache {
	return &mapInternCache{entries: make(map[string]string)}
}

type mapInternCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func (c *mapInternCache) Intern(s string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if canonical, ok := c.entries[s]; ok {
		return canonical
	}
	c.entries[s] = s
	return s
}
