// Package session keeps the seed set of every dashboard viewer.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/rpgo/synthfeed/internal/domain"
	"github.com/rpgo/synthfeed/pkg/cache"
)

// DefaultTTL is how long an idle session keeps its seeds.
const DefaultTTL = 24 * time.Hour

// Store maps session ids to seed sets. Only Regenerate creates a session; until then a
// viewer sees the defaults. Stored sets are never mutated in place; readers get their own copy.
type Store struct {
	seeds    *cache.InMemoryCache[string, domain.SeedSet]
	defaults domain.SeedSet
	next     func() int64
	ttl      time.Duration
}

// NewStore creates a store. defaults is what sessionless viewers see; next draws fresh seeds.
func NewStore(defaults domain.SeedSet, next func() int64, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		seeds:    cache.NewInMemoryCache[string, domain.SeedSet](ttl),
		defaults: defaults.Clone(),
		next:     next,
		ttl:      ttl,
	}
}

// NewID returns a fresh session id.
func NewID() string { return uuid.NewString() }

// ValidID reports whether id looks like an id issued by NewID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Seeds returns the seeds of session id and whether the session exists. Unknown or
// expired sessions read as the defaults without being stored. A hit refreshes the expiry.
func (s *Store) Seeds(id string) (domain.SeedSet, bool) {
	set, ok := s.seeds.Get(id)
	if !ok || !s.seeds.Touch(id, s.ttl) {
		return s.defaults.Clone(), false
	}
	return set.Clone(), true
}

// Regenerate replaces every seed of session id with a fresh one, creating the session
// if needed, and returns the new set.
func (s *Store) Regenerate(id string) domain.SeedSet {
	fresh := s.defaults.Regenerate(s.next)
	s.seeds.Set(id, fresh, s.ttl)
	return fresh.Clone()
}

// Len returns the number of tracked sessions, expired ones included until the next sweep.
func (s *Store) Len() int { return s.seeds.Size() }

// Close stops the background expiry sweep.
func (s *Store) Close() { s.seeds.Close() }
