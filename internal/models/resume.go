package models

import (
	"time"
)

// ResumeRecord is the per-file outcome of one upload batch. Records are
// transient: they live in the batch store until the session expires.
type ResumeRecord struct {
	Filename   string `json:"filename"`    // original (sanitized) filename
	StoredPath string `json:"-"`           // on-disk location under the session folder
	Domain     string `json:"domain"`      // keyword table key or "Other"
	Experience string `json:"experience"`  // one of the four tier labels
	Preview    string `json:"preview"`     // short excerpt of the extracted text
	Failed     bool   `json:"failed"`      // true when the file was skipped
	FailReason string `json:"fail_reason"` // why it was skipped, empty otherwise
}

// BatchResult aggregates one upload batch: the per-file records, the
// processed/failed counts, and a nested tally of files per
// (domain, experience) pair.
type BatchResult struct {
	ID          string                    `json:"id"`
	Records     []ResumeRecord            `json:"records"`
	Processed   int                       `json:"processed"`
	Failed      int                       `json:"failed"`
	Tally       map[string]map[string]int `json:"tally"`
	ArchivePath string                    `json:"-"`
	CreatedAt   time.Time                 `json:"created_at"`
}

// NewBatchResult creates an empty result for the given session ID.
func NewBatchResult(id string) *BatchResult {
	return &BatchResult{
		ID:        id,
		Tally:     make(map[string]map[string]int),
		CreatedAt: time.Now(),
	}
}

// AddRecord appends a record and updates the counts and tally.
func (b *BatchResult) AddRecord(r ResumeRecord) {
	b.Records = append(b.Records, r)
	if r.Failed {
		b.Failed++
		return
	}
	b.Processed++
	if b.Tally[r.Domain] == nil {
		b.Tally[r.Domain] = make(map[string]int)
	}
	b.Tally[r.Domain][r.Experience]++
}
