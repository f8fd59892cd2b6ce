package analysis

import (
	"testing"

	"smoketrack/internal/journal"
)

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil, Request{Window: AllTime()}, testClock())

	if got.Total != 0 || got.DailyAverageExclToday != 0 ||
		got.WeekdayAverage != 0 || got.WeekendAverage != 0 {
		t.Errorf("Expected all-zero summary, got %+v", got)
	}
	if got.MeanGap.Valid {
		t.Error("Expected invalid mean gap for an empty set")
	}
}

func TestDailyAverageExclTodayBoundedWindow(t *testing.T) {
	// Today is Wed Jan 10. Earliest event is Jan 8, so only 2 full days are
	// observed inside the 7-day window; excluding today leaves divisor 1.
	events := []journal.Event{
		mkEvent("a", "2024-01-08T10:00:00Z", "Cigarro", "Aula"),
		mkEvent("b", "2024-01-08T20:00:00Z", "Cigarro", "Bar"),
		mkEvent("c", "2024-01-09T10:00:00Z", "Pod", "Aula"),
		mkEvent("d", "2024-01-10T09:00:00Z", "Pod", "Trabalhando"),
		mkEvent("e", "2024-01-10T11:00:00Z", "Cigarro", "Trabalhando"),
	}

	got := Summarize(events, Request{Window: mustWindow(t, 7)}, testClock())

	if got.Total != 5 {
		t.Errorf("Expected total 5, got %d", got.Total)
	}
	// 3 events not on today's date, divided by min(7, 2) - 1 = 1.
	if got.DailyAverageExclToday != 3.0 {
		t.Errorf("Expected daily average 3.00, got %.2f", got.DailyAverageExclToday)
	}
}

func TestDailyAverageExclTodayAllTime(t *testing.T) {
	// 50 hours back to the earliest event: ceil(50/24) = 3, minus 1 = 2.
	events := []journal.Event{
		mkEvent("a", "2024-01-08T10:00:00Z", "Cigarro", "Aula"),
		mkEvent("b", "2024-01-08T20:00:00Z", "Cigarro", "Bar"),
		mkEvent("c", "2024-01-09T10:00:00Z", "Pod", "Aula"),
		mkEvent("d", "2024-01-10T09:00:00Z", "Pod", "Trabalhando"),
		mkEvent("e", "2024-01-10T11:00:00Z", "Cigarro", "Trabalhando"),
	}

	got := Summarize(events, Request{Window: AllTime()}, testClock())

	if got.DailyAverageExclToday != 1.5 {
		t.Errorf("Expected daily average 1.50, got %.2f", got.DailyAverageExclToday)
	}
}

func TestDailyAverageOnlyToday(t *testing.T) {
	// Every event is on today's date: no history to average over, so the
	// value is a defined zero rather than a division blowup.
	events := []journal.Event{
		mkEvent("a", "2024-01-10T09:00:00Z", "Cigarro", "Aula"),
		mkEvent("b", "2024-01-10T11:00:00Z", "Cigarro", "Bar"),
	}

	got := Summarize(events, Request{Window: mustWindow(t, 7)}, testClock())
	if got.DailyAverageExclToday != 0 {
		t.Errorf("Expected daily average 0.00, got %.2f", got.DailyAverageExclToday)
	}
}

func TestDayClassAveragesMonSat(t *testing.T) {
	// One Monday event and one Saturday event: both class averages are 1.
	events := []journal.Event{
		mkEvent("mon", "2024-01-01T10:00:00Z", "Cigarro", "Aula"),
		mkEvent("sat", "2024-01-06T10:00:00Z", "Cigarro", "Bar"),
	}

	got := Summarize(events, Request{Window: AllTime()}, testClock())

	if got.WeekdayAverage != 1.0 {
		t.Errorf("Expected weekday average 1.00, got %.2f", got.WeekdayAverage)
	}
	if got.WeekendAverage != 1.0 {
		t.Errorf("Expected weekend average 1.00, got %.2f", got.WeekendAverage)
	}
}

func TestDayClassAveragesDistinctDates(t *testing.T) {
	// 3 weekday events over 2 distinct weekdays, 3 weekend events over 1
	// distinct weekend day.
	events := []journal.Event{
		mkEvent("a", "2024-01-01T09:00:00Z", "Cigarro", "Aula"),
		mkEvent("b", "2024-01-01T21:00:00Z", "Cigarro", "Bar"),
		mkEvent("c", "2024-01-08T12:00:00Z", "Pod", "Trabalhando"),
		mkEvent("d", "2024-01-06T20:00:00Z", "Cigarro", "Festa"),
		mkEvent("e", "2024-01-06T21:00:00Z", "Cigarro", "Festa"),
		mkEvent("f", "2024-01-06T23:00:00Z", "Tabaco", "Festa"),
	}

	got := Summarize(events, Request{Window: AllTime()}, testClock())

	if got.WeekdayAverage != 1.5 {
		t.Errorf("Expected weekday average 1.50, got %.2f", got.WeekdayAverage)
	}
	if got.WeekendAverage != 3.0 {
		t.Errorf("Expected weekend average 3.00, got %.2f", got.WeekendAverage)
	}
}

func TestMeanGap(t *testing.T) {
	// Gaps of 2h and 3h average to 2.5h.
	events := []journal.Event{
		mkEvent("a", "2024-01-09T10:00:00Z", "Cigarro", "Aula"),
		mkEvent("b", "2024-01-09T12:00:00Z", "Cigarro", "Bar"),
		mkEvent("c", "2024-01-09T15:00:00Z", "Pod", "Bar"),
	}

	got := Summarize(events, Request{Window: AllTime()}, testClock())

	if !got.MeanGap.Valid {
		t.Fatal("Expected a valid mean gap")
	}
	if got.MeanGap.Hours != 2.5 {
		t.Errorf("Expected mean gap 2.5 hours, got %.2f", got.MeanGap.Hours)
	}
	if got.MeanGap.Text != "2h 30m" {
		t.Errorf("Expected text \"2h 30m\", got %q", got.MeanGap.Text)
	}
}

func TestMeanGapSingleEvent(t *testing.T) {
	events := []journal.Event{
		mkEvent("a", "2024-01-09T10:00:00Z", "Cigarro", "Aula"),
	}

	got := Summarize(events, Request{Window: AllTime()}, testClock())
	if got.MeanGap.Valid {
		t.Error("Expected invalid mean gap for a single event")
	}
	if got.MeanGap.Hours != 0 || got.MeanGap.Text != "" {
		t.Errorf("Expected zero-valued mean gap, got %+v", got.MeanGap)
	}
}

func TestGetSummaryFiltersFirst(t *testing.T) {
	// The out-of-window event must not leak into the totals.
	events := []journal.Event{
		mkEvent("old", "2023-11-01T10:00:00Z", "Cigarro", "Aula"),
		mkEvent("a", "2024-01-09T10:00:00Z", "Cigarro", "Bar"),
		mkEvent("b", "2024-01-09T12:00:00Z", "Pod", "Bar"),
	}

	got := GetSummary(events, Request{Window: mustWindow(t, 7)}, testClock())
	if got.Total != 2 {
		t.Errorf("Expected total 2 inside the window, got %d", got.Total)
	}
	if got.MeanGap.Hours != 2.0 {
		t.Errorf("Expected mean gap 2.0 hours, got %.2f", got.MeanGap.Hours)
	}
}
