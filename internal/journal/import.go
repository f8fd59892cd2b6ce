package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/rs/zerolog/log"
)

// ErrInvalidSnapshot classifies every import validation failure. Imports
// are all-or-nothing: one bad record rejects the whole document and leaves
// the store unchanged.
var ErrInvalidSnapshot = errors.New("invalid snapshot format")

// snapshotSchema is the structural gate for imported documents: an object
// carrying at least one of the three top-level arrays. Record contents are
// validated semantically afterwards, because invalid ids are repairable.
var snapshotSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		// Older exports serialized an empty log as null.
		"records":      {Types: []string{"array", "null"}, Items: &jsonschema.Schema{Type: "object"}},
		"smokingTypes": {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
		"activities":   {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
	},
	AnyOf: []*jsonschema.Schema{
		{Required: []string{"records"}},
		{Required: []string{"smokingTypes"}},
		{Required: []string{"activities"}},
	},
}

// importRecord mirrors the wire shape of one record with a loose id: a
// missing or non-string id is regenerated, while any other field defect
// fails the import.
type importRecord struct {
	ID        any    `json:"id"`
	SmokeType string `json:"smokeType"`
	Activity  string `json:"activity"`
	DateTime  string `json:"dateTime"`
}

type importDocument struct {
	Records    []importRecord `json:"records"`
	SmokeTypes []string       `json:"smokingTypes"`
	Activities []string       `json:"activities"`
}

// Export serializes the current snapshot as an indented JSON document.
// The output is byte-compatible with the persisted layout and directly
// re-importable.
func (s *Store) Export() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return raw, nil
}

// Import validates a JSON document and merges it into the store. Records
// are appended without deduplication; catalogs are unioned with set
// semantics, preserving first-seen order. Zone-less timestamps are
// interpreted as wall time in loc (nil means system local). Returns the
// number of records added.
func (s *Store) Import(raw []byte, loc *time.Location) (int, error) {
	if loc == nil {
		loc = time.Local
	}
	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return 0, fmt.Errorf("%w: not valid JSON", ErrInvalidSnapshot)
	}

	resolved, err := snapshotSchema.Resolve(nil)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve snapshot schema: %w", err)
	}
	if err := resolved.Validate(instance); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	var doc importDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	// Validate every record before touching the store (fails closed).
	events := make([]Event, 0, len(doc.Records))
	for i, r := range doc.Records {
		if strings.TrimSpace(r.SmokeType) == "" {
			return 0, fmt.Errorf("%w: record %d has an empty smokeType", ErrInvalidSnapshot, i)
		}
		if strings.TrimSpace(r.Activity) == "" {
			return 0, fmt.Errorf("%w: record %d has an empty activity", ErrInvalidSnapshot, i)
		}
		at, err := parseInstant(r.DateTime, loc)
		if err != nil {
			return 0, fmt.Errorf("%w: record %d has an unparseable dateTime %q", ErrInvalidSnapshot, i, r.DateTime)
		}

		id, ok := r.ID.(string)
		if !ok || id == "" {
			id = newID()
		}
		events = append(events, Event{
			ID:         id,
			SmokeType:  r.SmokeType,
			Activity:   r.Activity,
			OccurredAt: at.UTC(),
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Records = append(s.data.Records, events...)
	s.data.SmokeTypes = unionLabels(s.data.SmokeTypes, doc.SmokeTypes)
	s.data.Activities = unionLabels(s.data.Activities, doc.Activities)

	log.Info().Int("records", len(events)).
		Int("smokeTypes", len(doc.SmokeTypes)).
		Int("activities", len(doc.Activities)).
		Msg("Snapshot imported")
	return len(events), nil
}

// parseInstant accepts RFC 3339 timestamps plus the zone-less forms a
// datetime-local input produces, interpreted as wall time in loc.
func parseInstant(value string, loc *time.Location) (time.Time, error) {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable instant %q", value)
}

// unionLabels appends labels from extra that are not yet present,
// collapsing duplicates while preserving first-seen order.
func unionLabels(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	for _, l := range base {
		seen[l] = true
	}
	for _, l := range extra {
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		base = append(base, l)
	}
	return base
}
