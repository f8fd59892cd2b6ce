package analysis

import (
	"math"
	"sort"
	"time"

	"smoketrack/internal/journal"
)

// DailyBucket is the event volume for one local calendar date. Date is an
// unambiguous key; Label is the dd/mm display form.
type DailyBucket struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// WeekdayBucket aggregates one fixed day-of-week slot.
type WeekdayBucket struct {
	Day string `json:"day"`
	// Count is the raw event total for this weekday.
	Count int `json:"count"`
	// DistinctDays is the number of distinct local calendar dates on which
	// this weekday was observed, independent of input order.
	DistinctDays int `json:"distinctDays"`
	// Value is Count under RawTotal, or Count/DistinctDays under Average.
	Value float64 `json:"value"`
}

// HourlyBucket aggregates one of the 24 fixed hour-of-day slots.
type HourlyBucket struct {
	Hour  int     `json:"hour"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// LabelBucket is a (label, count) pair for activity or substance views.
type LabelBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DailyBuckets groups events by local calendar date, one bucket per
// distinct date present, ordered ascending. This view always reports raw
// counts: it is daily volume, not a per-bucket average.
func DailyBuckets(events []journal.Event, loc *time.Location) []DailyBucket {
	counts := make(map[string]int)
	for _, e := range events {
		counts[e.OccurredAt.In(loc).Format("2006-01-02")]++
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]DailyBucket, 0, len(keys))
	for _, k := range keys {
		day, _ := time.ParseInLocation("2006-01-02", k, loc)
		out = append(out, DailyBucket{
			Date:  k,
			Label: day.Format("02/01"),
			Count: counts[k],
		})
	}
	return out
}

// WeekdayBuckets groups events into the 7 fixed weekday slots, Sunday
// through Saturday. Distinct days are counted from a set of
// (weekday, calendar date) pairs so the result does not depend on input
// order. Under Average, a bucket with zero distinct days falls back to
// its raw count.
func WeekdayBuckets(events []journal.Event, strategy Strategy, loc *time.Location) [7]WeekdayBucket {
	type dayDate struct {
		day  time.Weekday
		date string
	}

	var buckets [7]WeekdayBucket
	seen := make(map[dayDate]struct{})
	for _, e := range events {
		local := e.OccurredAt.In(loc)
		d := local.Weekday()
		buckets[d].Count++
		seen[dayDate{day: d, date: local.Format("2006-01-02")}] = struct{}{}
	}
	for k := range seen {
		buckets[k.day].DistinctDays++
	}

	for i := range buckets {
		buckets[i].Day = time.Weekday(i).String()
		buckets[i].Value = float64(buckets[i].Count)
		if strategy == Average && buckets[i].DistinctDays > 0 {
			buckets[i].Value = round1(float64(buckets[i].Count) / float64(buckets[i].DistinctDays))
		}
	}
	return buckets
}

// HourlyBuckets groups events into 24 fixed hour slots. Under Average,
// every slot shares the same divisor: the calendar days spanned between
// the earliest and latest event inclusive, clamped to at least 1. The
// input must already be sorted ascending (Filter guarantees this).
func HourlyBuckets(events []journal.Event, strategy Strategy, loc *time.Location) [24]HourlyBucket {
	var buckets [24]HourlyBucket
	for _, e := range events {
		buckets[e.OccurredAt.In(loc).Hour()].Count++
	}

	divisor := 1.0
	if strategy == Average && len(events) > 0 {
		divisor = float64(spanDays(events, loc))
	}

	for h := range buckets {
		buckets[h].Hour = h
		buckets[h].Value = float64(buckets[h].Count)
		if strategy == Average {
			buckets[h].Value = round1(float64(buckets[h].Count) / divisor)
		}
	}
	return buckets
}

// ActivityBuckets groups events by exact activity label, sorted
// descending by count; ties keep first-occurrence order.
func ActivityBuckets(events []journal.Event) []LabelBucket {
	return countLabels(events, func(e journal.Event) string { return e.Activity })
}

// SmokeTypeBuckets groups events by exact substance-type label, with the
// same shape and ordering as ActivityBuckets.
func SmokeTypeBuckets(events []journal.Event) []LabelBucket {
	return countLabels(events, func(e journal.Event) string { return e.SmokeType })
}

func countLabels(events []journal.Event, key func(journal.Event) string) []LabelBucket {
	counts := make(map[string]int)
	var order []string
	for _, e := range events {
		k := key(e)
		if _, ok := counts[k]; !ok {
			order = append(order, k)
		}
		counts[k]++
	}

	out := make([]LabelBucket, 0, len(order))
	for _, k := range order {
		out = append(out, LabelBucket{Label: k, Count: counts[k]})
	}
	// Stable sort keeps first-occurrence order for equal counts.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// spanDays returns the number of calendar days spanned between the first
// and last event, inclusive, never less than 1.
func spanDays(events []journal.Event, loc *time.Location) int {
	first := startOfDay(events[0].OccurredAt.In(loc), loc)
	last := startOfDay(events[len(events)-1].OccurredAt.In(loc), loc)
	days := int(math.Round(last.Sub(first).Hours()/24.0)) + 1
	if days < 1 {
		days = 1
	}
	return days
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
