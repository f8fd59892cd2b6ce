package journal

// Snapshot is the full dataset: the event log plus both label catalogs.
// It is simultaneously the durable storage layout and the export/import
// wire format; export output must be directly re-importable.
type Snapshot struct {
	Records    []Event  `json:"records"`
	SmokeTypes []string `json:"smokingTypes"`
	Activities []string `json:"activities"`
}

func (s Snapshot) clone() Snapshot {
	out := Snapshot{
		Records:    make([]Event, len(s.Records)),
		SmokeTypes: make([]string, len(s.SmokeTypes)),
		Activities: make([]string, len(s.Activities)),
	}
	copy(out.Records, s.Records)
	copy(out.SmokeTypes, s.SmokeTypes)
	copy(out.Activities, s.Activities)
	return out
}
