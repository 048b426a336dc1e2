package text

import (
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Interner deduplicates strings into a pool that lives as long as the
// Interner itself. Intern returns Static Str values, since pooled strings
// satisfy the process-lifetime contract of the shared case. Safe for
// concurrent use.
type Interner struct {
	mu      sync.RWMutex
	buckets map[uint64][]string
	size    int
}

// NewInterner returns an empty pool.
func NewInterner() *Interner {
	return &Interner{buckets: make(map[uint64][]string)}
}

// Intern returns a Static Str for s, adding a detached copy to the pool on
// first sight. Later calls with equal content reuse the pooled copy, so a
// short-lived input buffer is copied at most once.
func (in *Interner) Intern(s string) Str {
	key := xxhash.Sum64String(s)

	in.mu.RLock()
	pooled, ok := lookup(in.buckets[key], s)
	in.mu.RUnlock()
	if ok {
		return Static(pooled)
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	if pooled, ok := lookup(in.buckets[key], s); ok {
		return Static(pooled)
	}
	// detach from the caller's buffer before pooling
	pooled = strings.Clone(s)
	in.buckets[key] = append(in.buckets[key], pooled)
	in.size++
	return Static(pooled)
}

// Len returns the number of distinct strings in the pool.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.size
}

// lookup scans one hash bucket; buckets hold more than one entry only on a
// 64-bit hash collision.
func lookup(bucket []string, s string) (string, bool) {
	for _, candidate := range bucket {
		if candidate == s {
			return candidate, true
		}
	}
	return "", false
}
