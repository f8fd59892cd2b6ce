package analysis

import "time"

// Clock supplies "now" and the observer's timezone. Every notion of
// "today" or "local date" in this package goes through a Clock, so tests
// can pin the wall clock instead of depending on it.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type systemClock struct {
	loc *time.Location
}

// NewSystemClock returns a Clock backed by the wall clock observing in
// loc. A nil loc means the system's local timezone.
func NewSystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time           { return time.Now() }
func (c systemClock) Location() *time.Location { return c.loc }

type fixedClock struct {
	now time.Time
	loc *time.Location
}

// NewFixedClock returns a Clock pinned to the given instant, for
// deterministic aggregation in tests.
func NewFixedClock(now time.Time, loc *time.Location) Clock {
	if loc == nil {
		loc = now.Location()
	}
	return fixedClock{now: now, loc: loc}
}

func (c fixedClock) Now() time.Time           { return c.now }
func (c fixedClock) Location() *time.Location { return c.loc }
