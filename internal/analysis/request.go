package analysis

import (
	"fmt"
	"strconv"
	"strings"
)

// PresetWindowDays are the spans offered by the report UI. Any positive
// day count is accepted by LastNDays; these are just the defaults.
var PresetWindowDays = []int{3, 7, 14, 30, 60, 90}

// TimeWindow selects the retrospective span of an analysis request:
// either all time or the last N calendar days up to and including today.
type TimeWindow struct {
	days int // 0 means all time
}

// AllTime returns the unbounded window.
func AllTime() TimeWindow { return TimeWindow{} }

// LastNDays returns a window covering the last n calendar days.
func LastNDays(n int) (TimeWindow, error) {
	if n <= 0 {
		return TimeWindow{}, fmt.Errorf("window must cover at least 1 day, got %d", n)
	}
	return TimeWindow{days: n}, nil
}

// IsAllTime reports whether the window is unbounded.
func (w TimeWindow) IsAllTime() bool { return w.days == 0 }

// Days returns the span in days; 0 for all time.
func (w TimeWindow) Days() int { return w.days }

func (w TimeWindow) String() string {
	if w.IsAllTime() {
		return "total"
	}
	return fmt.Sprintf("%d days", w.days)
}

// ParseWindow accepts "total", "all" or a day count such as "7", "7d" or
// "7 days".
func ParseWindow(value string) (TimeWindow, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" || v == "total" || v == "all" {
		return AllTime(), nil
	}
	v = strings.TrimSuffix(v, " days")
	v = strings.TrimSuffix(v, "d")
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return TimeWindow{}, fmt.Errorf("invalid time window %q", value)
	}
	return LastNDays(n)
}

// DayClass partitions events by the kind of local day they fall on.
type DayClass int

const (
	// AllDays applies no day-class filtering.
	AllDays DayClass = iota
	// Weekdays keeps Monday through Friday.
	Weekdays
	// Weekend keeps Saturday and Sunday.
	Weekend
)

func (c DayClass) String() string {
	switch c {
	case Weekdays:
		return "weekdays"
	case Weekend:
		return "weekend"
	default:
		return "all"
	}
}

// ParseDayClass maps a CLI token to a DayClass.
func ParseDayClass(value string) (DayClass, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "all":
		return AllDays, nil
	case "weekdays", "weekday":
		return Weekdays, nil
	case "weekend", "weekends":
		return Weekend, nil
	}
	return AllDays, fmt.Errorf("invalid day class %q", value)
}

// Strategy controls whether bucketed views report raw totals or
// per-bucket averages.
type Strategy int

const (
	// RawTotal reports plain sums per bucket.
	RawTotal Strategy = iota
	// Average normalizes each bucket by its distinct-day divisor.
	Average
)

func (s Strategy) String() string {
	if s == Average {
		return "average"
	}
	return "total"
}

// Request is the full parameter set for one aggregation pass. It is
// ephemeral and never persisted.
type Request struct {
	Window   TimeWindow
	DayClass DayClass
	Strategy Strategy
}
