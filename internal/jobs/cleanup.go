package jobs

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"resumesorter/internal/store"
)

// Cleaner removes expired batch results and their upload folders. It is
// advisory housekeeping: a crash between upload and sweep leaves orphans,
// which the age-based pass reclaims on the next run.
type Cleaner struct {
	store     *store.Store
	uploadDir string
	interval  time.Duration
	maxAge    time.Duration
}

// NewCleaner creates a cleaner sweeping uploadDir every interval.
func NewCleaner(s *store.Store, uploadDir string, interval, maxAge time.Duration) *Cleaner {
	return &Cleaner{
		store:     s,
		uploadDir: uploadDir,
		interval:  interval,
		maxAge:    maxAge,
	}
}

// Start begins the background cleanup loop.
func (c *Cleaner) Start(ctx context.Context) {
	log.Printf("Cleanup sweep started (interval: %v, maxAge: %v)", c.interval, c.maxAge)

	// Run immediately on start
	c.Sweep()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Cleanup sweep stopped")
			return
		case <-ticker.C:
			c.Sweep()
		}
	}
}

// Sweep runs one cleanup pass: expired store entries first, then orphaned
// session folders older than the age threshold.
func (c *Cleaner) Sweep() {
	for _, id := range c.store.DeleteExpired() {
		dir := filepath.Join(c.uploadDir, id)
		if err := os.RemoveAll(dir); err != nil {
			log.Printf("Cleanup sweep: failed to remove %s: %v", dir, err)
		}
	}

	dirs, err := os.ReadDir(c.uploadDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Cleanup sweep: failed to read upload dir: %v", err)
		}
		return
	}

	cutoff := time.Now().Add(-c.maxAge)
	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		// Folders with a live store entry are never touched by the
		// orphan pass, whatever their age.
		if c.store.Has(d.Name()) {
			continue
		}
		info, err := d.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		dir := filepath.Join(c.uploadDir, d.Name())
		if err := os.RemoveAll(dir); err != nil {
			log.Printf("Cleanup sweep: failed to remove orphan %s: %v", dir, err)
		} else {
			log.Printf("Cleanup sweep: removed orphaned session folder %s", d.Name())
		}
	}
}
