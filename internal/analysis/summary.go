package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/montanaflynn/stats"

	"smoketrack/internal/journal"
)

// MeanGap is the average elapsed time between consecutive events. Valid
// is false when fewer than 2 events were available.
type MeanGap struct {
	Hours float64 `json:"hours"`
	Text  string  `json:"text"`
	Valid bool    `json:"valid"`
}

// Summary holds the derived single-value metrics for a filtered set.
type Summary struct {
	Total int `json:"total"`
	// DailyAverageExclToday divides the count of events not on today's
	// local date by the effective window length excluding today.
	DailyAverageExclToday float64 `json:"dailyAverageExclToday"`
	WeekdayAverage        float64 `json:"weekdayAverage"`
	WeekendAverage        float64 `json:"weekendAverage"`
	MeanGap               MeanGap `json:"meanGap"`
}

// Summarize computes the summary statistics over an already-filtered,
// ascending event sequence. All divisions are guarded; an empty input
// yields a zero-valued summary.
func Summarize(filtered []journal.Event, req Request, clock Clock) Summary {
	s := Summary{Total: len(filtered)}
	if len(filtered) == 0 {
		return s
	}

	loc := clock.Location()
	now := clock.Now().In(loc)
	today := startOfDay(now, loc)

	notToday := 0
	for _, e := range filtered {
		if !startOfDay(e.OccurredAt.In(loc), loc).Equal(today) {
			notToday++
		}
	}
	if days := windowDaysExclToday(filtered, req, now, today, loc); days > 0 {
		s.DailyAverageExclToday = round2(float64(notToday) / float64(days))
	}

	// Segment by day class using the distinct-date weekday counts.
	buckets := WeekdayBuckets(filtered, RawTotal, loc)
	var weekdayCount, weekdayDays, weekendCount, weekendDays int
	for i, b := range buckets {
		if isWeekend(time.Weekday(i)) {
			weekendCount += b.Count
			weekendDays += b.DistinctDays
		} else {
			weekdayCount += b.Count
			weekdayDays += b.DistinctDays
		}
	}
	s.WeekdayAverage = round2(float64(weekdayCount) / float64(clampDivisor(weekdayDays)))
	s.WeekendAverage = round2(float64(weekendCount) / float64(clampDivisor(weekendDays)))

	s.MeanGap = meanGap(filtered)
	return s
}

// windowDaysExclToday returns the divisor for the excluding-today
// average: min(n, observed span) - 1 for a bounded window, or the
// ceiling of the hours back to the earliest event divided by 24, minus 1,
// for all time. A result <= 0 means the caller reports a defined zero
// instead of dividing.
func windowDaysExclToday(filtered []journal.Event, req Request, now, today time.Time, loc *time.Location) int {
	earliest := filtered[0].OccurredAt.In(loc)
	if req.Window.IsAllTime() {
		return int(math.Ceil(now.Sub(earliest).Hours()/24.0)) - 1
	}
	observed := int(math.Round(today.Sub(startOfDay(earliest, loc)).Hours() / 24.0))
	if observed > req.Window.Days() {
		observed = req.Window.Days()
	}
	return observed - 1
}

func clampDivisor(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// meanGap averages the elapsed time over all adjacent pairs of the
// time-ordered sequence.
func meanGap(events []journal.Event) MeanGap {
	if len(events) < 2 {
		return MeanGap{}
	}
	gaps := make([]float64, 0, len(events)-1)
	for i := 1; i < len(events); i++ {
		gaps = append(gaps, events[i].OccurredAt.Sub(events[i-1].OccurredAt).Hours())
	}
	mean, err := stats.Mean(gaps)
	if err != nil {
		return MeanGap{}
	}

	d := time.Duration(mean * float64(time.Hour))
	return MeanGap{
		Hours: round2(mean),
		Text:  fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60),
		Valid: true,
	}
}
