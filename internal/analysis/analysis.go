// Package analysis is the aggregation engine: pure functions that take
// the ordered event collection plus a Request and produce filtered
// sequences, bucketed views and summary statistics. Given the same
// events and parameters the output is always the same; nothing here
// keeps state between calls, so consumers recompute on every change.
package analysis

import (
	"time"

	"smoketrack/internal/journal"
)

// FilteredEvents returns the subset of events matching the request,
// ascending by occurrence time.
func FilteredEvents(events []journal.Event, req Request, clock Clock) []journal.Event {
	return Filter(events, req, clock)
}

// GetDailyBuckets returns per-calendar-date volumes for the request.
func GetDailyBuckets(events []journal.Event, req Request, clock Clock) []DailyBucket {
	return DailyBuckets(Filter(events, req, clock), clock.Location())
}

// GetWeekdayBuckets returns the 7 fixed day-of-week buckets.
func GetWeekdayBuckets(events []journal.Event, req Request, clock Clock) [7]WeekdayBucket {
	return WeekdayBuckets(Filter(events, req, clock), req.Strategy, clock.Location())
}

// GetHourlyBuckets returns the 24 fixed hour-of-day buckets.
func GetHourlyBuckets(events []journal.Event, req Request, clock Clock) [24]HourlyBucket {
	return HourlyBuckets(Filter(events, req, clock), req.Strategy, clock.Location())
}

// GetActivityBuckets returns per-activity counts, descending.
func GetActivityBuckets(events []journal.Event, req Request, clock Clock) []LabelBucket {
	return ActivityBuckets(Filter(events, req, clock))
}

// GetSmokeTypeBuckets returns per-substance-type counts, descending.
func GetSmokeTypeBuckets(events []journal.Event, req Request, clock Clock) []LabelBucket {
	return SmokeTypeBuckets(Filter(events, req, clock))
}

// GetSummary returns the summary statistics for the request.
func GetSummary(events []journal.Event, req Request, clock Clock) Summary {
	return Summarize(Filter(events, req, clock), req, clock)
}

// CountOnDate returns how many events fall on the local calendar date of
// the given instant. The register flow uses it for the daily tally.
func CountOnDate(events []journal.Event, at time.Time, loc *time.Location) int {
	day := startOfDay(at, loc)
	n := 0
	for _, e := range events {
		if startOfDay(e.OccurredAt.In(loc), loc).Equal(day) {
			n++
		}
	}
	return n
}
