package analysis

import (
	"sort"
	"time"

	"smoketrack/internal/journal"
)

// Filter narrows events to the subset matching the request's time window
// and day class. Both predicates are pure functions of the occurrence
// time, so they compose by intersection in either order. The result is a
// new slice sorted ascending by occurrence time (stable for ties); the
// input is never mutated.
func Filter(events []journal.Event, req Request, clock Clock) []journal.Event {
	loc := clock.Location()

	var lo, hi time.Time
	bounded := !req.Window.IsAllTime()
	if bounded {
		today := clock.Now().In(loc)
		lo = startOfDay(today.AddDate(0, 0, -req.Window.Days()), loc)
		hi = endOfDay(today, loc)
	}

	out := make([]journal.Event, 0, len(events))
	for _, e := range events {
		local := e.OccurredAt.In(loc)
		if bounded && (local.Before(lo) || local.After(hi)) {
			continue
		}
		switch req.DayClass {
		case Weekdays:
			if isWeekend(local.Weekday()) {
				continue
			}
		case Weekend:
			if !isWeekend(local.Weekday()) {
				continue
			}
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.Before(out[j].OccurredAt)
	})
	return out
}

// startOfDay normalizes a timestamp to 00:00:00 of its local calendar day.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// endOfDay normalizes a timestamp to the last nanosecond of its day.
func endOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, loc)
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}
