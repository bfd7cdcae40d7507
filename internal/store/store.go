// Package store persists the travel-log collection as a single durable
// record in a diskv-backed key-value store. The whole ordered collection is
// written wholesale on every save; there are no partial writes.
package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"github.com/hzafar/tripmark/internal/travellog"
)

const recordKey = "travellogs"

// Store reads and writes the durable travel-log record.
type Store struct {
	d        *diskv.Diskv
	basePath string
}

// New constructs a Store rooted at basePath. If basePath is empty it falls
// back to ~/.tripmark (or TRIPMARK_HOME, see ResolveBasePath).
func New(basePath string) (*Store, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Store{
		// TempDir makes diskv write through a temp file and rename, so an
		// interrupted save leaves the previous record in place.
		d: diskv.New(diskv.Options{
			BasePath:     abs,
			TempDir:      filepath.Join(abs, "tmp"),
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: abs,
	}, nil
}

// BasePath returns the directory holding the durable record.
func (s *Store) BasePath() string {
	return s.basePath
}

// Save serializes logs to the durable record, overwriting any prior record.
func (s *Store) Save(logs []travellog.TravelLog) error {
	if logs == nil {
		logs = []travellog.TravelLog{}
	}
	data, err := json.Marshal(logs)
	if err != nil {
		return fmt.Errorf("encode travel logs: %w", err)
	}
	if err := s.d.Write(recordKey, data); err != nil {
		return fmt.Errorf("write travel logs: %w", err)
	}
	return nil
}

// Load returns the persisted logs in their stored order. A missing or
// malformed record yields an empty slice; load never fails to the caller.
func (s *Store) Load() []travellog.TravelLog {
	data, err := s.d.Read(recordKey)
	if err != nil {
		return nil
	}
	var logs []travellog.TravelLog
	if err := json.Unmarshal(data, &logs); err != nil {
		return nil
	}
	return logs
}

// Clear removes the durable record. Clearing an absent record is a no-op.
func (s *Store) Clear() error {
	if !s.d.Has(recordKey) {
		return nil
	}
	if err := s.d.Erase(recordKey); err != nil {
		return fmt.Errorf("erase travel logs: %w", err)
	}
	return nil
}
