package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(t *testing.T, smokeType, activity, ts string) Event {
	t.Helper()
	at, err := time.Parse(time.RFC3339, ts)
	require.NoError(t, err)
	e, err := NewEvent(smokeType, activity, at)
	require.NoError(t, err)
	return e
}

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "smoketrack.json"))
}

func TestStoreAddDelete(t *testing.T) {
	s := testStore(t)
	e := testEvent(t, "Cigarro", "Bar", "2024-01-09T22:00:00Z")

	s.Add(e)
	require.Equal(t, 1, s.Len())

	assert.False(t, s.Delete("no-such-id"))
	assert.Equal(t, 1, s.Len())

	assert.True(t, s.Delete(e.ID))
	assert.Equal(t, 0, s.Len())
}

func TestStoreEventsSortedCopy(t *testing.T) {
	s := testStore(t)
	late := testEvent(t, "Cigarro", "Bar", "2024-01-09T22:00:00Z")
	early := testEvent(t, "Pod", "Aula", "2024-01-08T09:00:00Z")
	s.Add(late)
	s.Add(early)

	events := s.Events()
	require.Len(t, events, 2)
	assert.Equal(t, early.ID, events[0].ID)
	assert.Equal(t, late.ID, events[1].ID)

	// The returned slice is a copy; mutating it must not reach the store.
	events[0].SmokeType = "mutated"
	assert.Equal(t, "Pod", s.Events()[0].SmokeType)
}

func TestStoreSeedsDefaultCatalogs(t *testing.T) {
	s := testStore(t)

	assert.Equal(t, DefaultSmokeTypes(), s.SmokeTypes())
	assert.Equal(t, DefaultActivities(), s.Activities())
}

func TestStoreCatalogOps(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.AddSmokeType("Charuto"))
	assert.Contains(t, s.SmokeTypes(), "Charuto")

	assert.Error(t, s.AddSmokeType("   "))

	assert.True(t, s.RemoveSmokeType("Charuto"))
	assert.NotContains(t, s.SmokeTypes(), "Charuto")
	assert.False(t, s.RemoveSmokeType("Charuto"))
}

func TestStoreRemoveLabelKeepsEvents(t *testing.T) {
	s := testStore(t)
	e := testEvent(t, "Cigarro", "Bar", "2024-01-09T22:00:00Z")
	s.Add(e)

	require.True(t, s.RemoveActivity("Bar"))

	events := s.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "Bar", events[0].Activity, "removing a label must not cascade into events")
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smoketrack.json")

	a := NewStore(path)
	a.Add(testEvent(t, "Cigarro", "Bar", "2024-01-09T22:00:00Z"))
	a.Add(testEvent(t, "Pod", "Aula", "2024-01-08T09:30:00Z"))
	require.NoError(t, a.AddActivity("Pescando"))
	require.NoError(t, a.Save())

	b := NewStore(path)
	require.NoError(t, b.Load())

	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestStoreLoadMissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope", "smoketrack.json"))

	require.NoError(t, s.Load())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, DefaultSmokeTypes(), s.SmokeTypes())
}

func TestStoreLoadMalformedFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smoketrack.json")
	require.NoError(t, os.WriteFile(path, []byte("not json{{"), 0644))

	s := NewStore(path)
	require.NoError(t, s.Load())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, DefaultActivities(), s.Activities())
}

func TestStoreLoadReseedsMissingCatalogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smoketrack.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"records": []}`), 0644))

	s := NewStore(path)
	require.NoError(t, s.Load())
	assert.Equal(t, DefaultSmokeTypes(), s.SmokeTypes())
	assert.Equal(t, DefaultActivities(), s.Activities())
}

func TestStoreLoadKeepsEmptyLogExportable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smoketrack.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"smokingTypes": ["Cigarro"], "activities": ["Bar"]}`), 0644))

	s := NewStore(path)
	require.NoError(t, s.Load())

	raw, err := s.Export()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"records": []`)
}

func TestStoreSaveAtomicOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smoketrack.json")

	s := NewStore(path)
	require.NoError(t, s.Save())
	s.Add(testEvent(t, "Cigarro", "Bar", "2024-01-09T22:00:00Z"))
	require.NoError(t, s.Save())

	// No temp file left behind.
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	reloaded := NewStore(path)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, 1, reloaded.Len())
}
