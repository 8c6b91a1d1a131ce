package derive

import (
	"github.com/patrickmn/go-cache"
)

// Memo caches derived locations keyed by the raw address.
// Results are identical to ExtractLocation; entries never expire and Reset
// drops them when a new snapshot replaces the old one.
type Memo struct {
	locations *cache.Cache
}

// NewMemo creates an empty memo
func NewMemo() *Memo {
	return &Memo{
		locations: cache.New(cache.NoExpiration, 0),
	}
}

// ExtractLocation is a memoized ExtractLocation
func (m *Memo) ExtractLocation(address string) string {
	if v, found := m.locations.Get(address); found {
		return v.(string)
	}
	out := ExtractLocation(address)
	m.locations.Set(address, out, cache.NoExpiration)
	return out
}

// Reset empties the memo
func (m *Memo) Reset() {
	m.locations.Flush()
}
