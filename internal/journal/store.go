package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// Store owns the full dataset for one application session. There is exactly
// one logical writer; the mutex only guards against accidental concurrent
// reads from helper goroutines, not a multi-writer protocol.
type Store struct {
	mu   sync.RWMutex
	path string
	data Snapshot
}

// NewStore creates a store bound to the given snapshot file, seeded with
// the default catalogs. Call Load to pick up previously persisted data.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		data: Snapshot{
			Records:    []Event{},
			SmokeTypes: DefaultSmokeTypes(),
			Activities: DefaultActivities(),
		},
	}
}

// Add appends an event to the log.
func (s *Store) Add(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Records = append(s.data.Records, e)
}

// Delete removes the event with the given id. Returns false if no event
// matched.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.data.Records {
		if e.ID == id {
			s.data.Records = append(s.data.Records[:i], s.data.Records[i+1:]...)
			return true
		}
	}
	return false
}

// Events returns a copy of the event log sorted ascending by occurrence
// time. Ties keep their original relative order.
func (s *Store) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Event, len(s.data.Records))
	copy(out, s.data.Records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.Before(out[j].OccurredAt)
	})
	return out
}

// Len returns the number of logged events.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data.Records)
}

// Snapshot returns a deep copy of the current dataset.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.clone()
}

// SmokeTypes returns a copy of the substance-type catalog.
func (s *Store) SmokeTypes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.data.SmokeTypes...)
}

// Activities returns a copy of the activity catalog.
func (s *Store) Activities() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.data.Activities...)
}

// AddSmokeType appends a label to the substance-type catalog.
func (s *Store) AddSmokeType(label string) error {
	return s.addLabel(&s.data.SmokeTypes, label)
}

// AddActivity appends a label to the activity catalog.
func (s *Store) AddActivity(label string) error {
	return s.addLabel(&s.data.Activities, label)
}

// RemoveSmokeType deletes a label from the substance-type catalog. Events
// referencing the label are untouched.
func (s *Store) RemoveSmokeType(label string) bool {
	return s.removeLabel(&s.data.SmokeTypes, label)
}

// RemoveActivity deletes a label from the activity catalog.
func (s *Store) RemoveActivity(label string) bool {
	return s.removeLabel(&s.data.Activities, label)
}

func (s *Store) addLabel(list *[]string, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return fmt.Errorf("label must not be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	*list = append(*list, label)
	return nil
}

func (s *Store) removeLabel(list *[]string, label string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range *list {
		if l == label {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}

// Save persists the snapshot to the bound file via an atomic rename.
func (s *Store) Save() error {
	s.mu.RLock()
	raw, err := json.MarshalIndent(s.data, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename snapshot: %w", err)
	}

	log.Debug().Str("path", s.path).Int("records", s.Len()).Msg("Snapshot saved")
	return nil
}

// Load restores the snapshot from the bound file. A missing file is not an
// error; a malformed file is logged and replaced with the default dataset
// on the next Save.
func (s *Store) Load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	var data Snapshot
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("Snapshot file is malformed, starting with defaults")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	// Keep Records non-nil so an export always carries a records array.
	if s.data.Records == nil {
		s.data.Records = []Event{}
	}
	if s.data.SmokeTypes == nil {
		s.data.SmokeTypes = DefaultSmokeTypes()
	}
	if s.data.Activities == nil {
		s.data.Activities = DefaultActivities()
	}

	log.Info().Str("path", s.path).Int("records", len(s.data.Records)).Msg("Snapshot loaded")
	return nil
}
