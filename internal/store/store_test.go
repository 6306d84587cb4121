package store

import (
	"testing"
	"time"

	"resumesorter/internal/models"
)

func TestPutGet(t *testing.T) {
	s := New(time.Minute)

	result := models.NewBatchResult("session-1")
	result.ArchivePath = "/tmp/session-1/results.zip"
	s.Put(result)

	got, ok := s.Get("session-1")
	if !ok {
		t.Fatal("Get() after Put() returned not found")
	}
	if got.ID != "session-1" {
		t.Errorf("Get() ID = %q, want %q", got.ID, "session-1")
	}

	if _, ok := s.Get("missing"); ok {
		t.Error("Get() on unknown ID returned found")
	}
}

func TestExpiry(t *testing.T) {
	s := New(10 * time.Millisecond)
	s.Put(models.NewBatchResult("session-1"))

	if !s.Has("session-1") {
		t.Fatal("entry should be live immediately after Put")
	}

	time.Sleep(20 * time.Millisecond)

	if s.Has("session-1") {
		t.Error("entry should be expired")
	}

	expired := s.DeleteExpired()
	if len(expired) != 1 || expired[0] != "session-1" {
		t.Errorf("DeleteExpired() = %v, want [session-1]", expired)
	}
	if s.Len() != 0 {
		t.Errorf("Len() after sweep = %d, want 0", s.Len())
	}
}

func TestTakeArchiveIsOneTime(t *testing.T) {
	s := New(time.Minute)
	result := models.NewBatchResult("session-1")
	result.ArchivePath = "/tmp/session-1/results.zip"
	s.Put(result)

	path, ok := s.TakeArchive("session-1")
	if !ok || path != "/tmp/session-1/results.zip" {
		t.Fatalf("TakeArchive() = (%q, %v), want the stored path", path, ok)
	}

	if _, ok := s.TakeArchive("session-1"); ok {
		t.Error("second TakeArchive() succeeded, want one-time semantics")
	}

	// The summary itself stays available after download.
	if _, ok := s.Get("session-1"); !ok {
		t.Error("Get() after TakeArchive() returned not found")
	}
}

func TestTakeArchiveWithoutArchive(t *testing.T) {
	s := New(time.Minute)
	s.Put(models.NewBatchResult("session-1"))

	if _, ok := s.TakeArchive("session-1"); ok {
		t.Error("TakeArchive() on batch without archive succeeded")
	}
}

func TestDelete(t *testing.T) {
	s := New(time.Minute)
	s.Put(models.NewBatchResult("session-1"))
	s.Delete("session-1")

	if s.Has("session-1") {
		t.Error("entry still present after Delete")
	}
}
