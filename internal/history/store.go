// Package history keeps a bounded, TTL-pruned in-memory record of recent
// capture operations, served over the status interface and to the monitor
// dashboard. Nothing is persisted.
package history

import (
	"sort"
	"sync"
	"time"
)

// Record describes one completed capture operation.
type Record struct {
	TS       time.Time
	Kind     string // full, area, window
	Path     string
	Backend  string
	Success  bool
	Degraded bool // served by a full-screen fallback
}

type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	max     int
	records []Record
}

// NewStore creates a store that keeps at most max records, dropping
// entries older than ttl on read. A ttl of 0 disables age-based pruning.
func NewStore(ttl time.Duration, max int) *Store {
	if max < 1 {
		max = 1
	}
	return &Store{ttl: ttl, max: max}
}

func (s *Store) Add(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
	if len(s.records) > s.max {
		s.records = s.records[len(s.records)-s.max:]
	}
}

// Snapshot returns the retained records, newest first.
func (s *Store) Snapshot(now time.Time) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ttl > 0 {
		kept := s.records[:0]
		for _, r := range s.records {
			if now.Sub(r.TS) <= s.ttl {
				kept = append(kept, r)
			}
		}
		s.records = kept
	}

	result := make([]Record, len(s.records))
	copy(result, s.records)
	sort.Slice(result, func(i, j int) bool {
		return result[i].TS.After(result[j].TS)
	})
	return result
}
