package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hzafar/tripmark/internal/travellog"
)

func newTempStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func testLogs() []travellog.TravelLog {
	created := time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)
	return []travellog.TravelLog{
		{
			ID: 1, From: "Home", To: "Park",
			Distance: 5, Duration: 1,
			Mode: travellog.ModeWalk,
			Lat:  10, Lng: 20,
			CreatedAt:   created,
			Description: "For Park on 14 March",
		},
		{
			ID: 2, From: "Park", To: "Airport",
			Distance: 32.5, Duration: 0.75,
			Mode: travellog.ModeCar,
			Lat:  10.2, Lng: 20.4,
			CreatedAt:   created.Add(time.Hour),
			Description: "For Airport on 14 March",
		},
	}
}

func TestStoreRoundTrip(t *testing.T) {
	s := newTempStore(t)
	want := testLogs()

	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := s.Load()
	if len(got) != len(want) {
		t.Fatalf("loaded %d logs, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].CreatedAt.Equal(want[i].CreatedAt) {
			t.Fatalf("log %d CreatedAt = %v, want %v", i, got[i].CreatedAt, want[i].CreatedAt)
		}
		got[i].CreatedAt = want[i].CreatedAt
		if got[i] != want[i] {
			t.Fatalf("log %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestStoreRoundTripEmptyCollection(t *testing.T) {
	s := newTempStore(t)
	if err := s.Save(nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := s.Load(); len(got) != 0 {
		t.Fatalf("loaded %d logs, want 0", len(got))
	}
}

func TestStoreSaveOverwritesPriorRecord(t *testing.T) {
	s := newTempStore(t)
	logs := testLogs()
	if err := s.Save(logs); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(logs[:1]); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got := s.Load()
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("loaded %+v, want only log 1", got)
	}
}

func TestStoreLoadMissingRecordIsEmpty(t *testing.T) {
	s := newTempStore(t)
	if got := s.Load(); got != nil {
		t.Fatalf("Load on fresh store = %v, want nil", got)
	}
}

func TestStoreLoadMalformedRecordIsEmpty(t *testing.T) {
	base := t.TempDir()
	s, err := New(base)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, "travellogs"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if got := s.Load(); got != nil {
		t.Fatalf("Load with malformed record = %v, want nil", got)
	}
}

func TestStoreClearRemovesRecordAndIsIdempotent(t *testing.T) {
	s := newTempStore(t)
	if err := s.Save(testLogs()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got := s.Load(); len(got) != 0 {
		t.Fatalf("loaded %d logs after clear, want 0", len(got))
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear on empty store: %v", err)
	}
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errors.New("device failure")
}

func TestStoreFailedSaveKeepsPriorRecord(t *testing.T) {
	base := t.TempDir()
	s, err := New(base)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Save(testLogs()[:1]); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := s.d.WriteStream(recordKey, brokenReader{}, false); err == nil {
		t.Fatal("expected the interrupted write to fail")
	}

	// A fresh handle reads what is actually on disk, not the write cache.
	s2, err := New(base)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := s2.Load()
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("loaded %+v after failed save, want the prior record", got)
	}
}

func TestStoreDescriptionPersistedNotRecomputed(t *testing.T) {
	s := newTempStore(t)
	logs := testLogs()
	logs[0].Description = "A description written by an older build"

	if err := s.Save(logs); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got := s.Load()
	if got[0].Description != logs[0].Description {
		t.Fatalf("description = %q, want the persisted value", got[0].Description)
	}
}
