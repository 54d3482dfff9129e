package artifact

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"sync"
	"time"
)

// test seam
var removeFile = os.Remove

// Sweeper reclaims artifacts whose owning request never ran its own cleanup
// (crashed mid-pipeline). It runs for the whole process lifetime; per-request
// cleanup racing a sweep is harmless because deletes are idempotent.
type Sweeper struct {
	store    *Store
	maxAge   time.Duration
	interval time.Duration

	mu           sync.Mutex
	lastRun      time.Time
	lastRemoved  int
	totalRemoved int64
}

func NewSweeper(store *Store, maxAge, interval time.Duration) *Sweeper {
	return &Sweeper{
		store:    store,
		maxAge:   maxAge,
		interval: interval,
	}
}

// Run loops until ctx is cancelled: sleep one interval, sweep, repeat.
// No error inside a pass ever stops the loop.
func (s *Sweeper) Run(ctx context.Context) {
	log.Printf("[sweeper] started dir=%s maxAge=%s interval=%s",
		s.store.Dir(), s.maxAge, s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[sweeper] context cancelled, stopping")
			return
		case <-ticker.C:
			removed := s.sweep(time.Now())

			s.mu.Lock()
			s.lastRun = time.Now()
			s.lastRemoved = removed
			s.totalRemoved += int64(removed)
			s.mu.Unlock()
		}
	}
}

// sweep deletes every artifact older than now-maxAge and returns how many it
// removed. One entry failing to delete is logged and skipped; the rest of the
// pass still runs.
func (s *Sweeper) sweep(now time.Time) int {
	entries, err := s.store.ListAll()
	if err != nil {
		log.Printf("[sweeper] list fail: %v", err)
		return 0
	}

	cutoff := now.Add(-s.maxAge)
	removed := 0

	for _, e := range entries {
		if e.ModTime.After(cutoff) {
			continue
		}
		if err := removeFile(e.Path); err != nil {
			// already gone: the owning request cleaned up first
			if !errors.Is(err, fs.ErrNotExist) {
				log.Printf("[sweeper] delete %s: %v", e.Path, err)
			}
			continue
		}
		log.Printf("[sweeper] deleted old file: %s", e.Path)
		removed++
	}
	return removed
}

// LastSweep reports when the last pass finished and how many files it removed.
func (s *Sweeper) LastSweep() (time.Time, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRun, s.lastRemoved
}

// TotalRemoved reports how many files all passes removed since startup.
func (s *Sweeper) TotalRemoved() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalRemoved
}
