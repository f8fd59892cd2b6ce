package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"smoketrack/internal/analysis"

	"github.com/spf13/cobra"
)

var (
	reportWindow   string
	reportDayClass string
	reportAverage  bool
	reportJSON     bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show summary statistics and bucketed breakdowns",
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := analysis.ParseWindow(reportWindow)
		if err != nil {
			return err
		}
		dayClass, err := analysis.ParseDayClass(reportDayClass)
		if err != nil {
			return err
		}
		strategy := analysis.RawTotal
		if reportAverage {
			strategy = analysis.Average
		}
		req := analysis.Request{Window: window, DayClass: dayClass, Strategy: strategy}

		events := store.Events()
		summary := analysis.GetSummary(events, req, clock)
		daily := analysis.GetDailyBuckets(events, req, clock)
		weekdays := analysis.GetWeekdayBuckets(events, req, clock)
		hours := analysis.GetHourlyBuckets(events, req, clock)
		activities := analysis.GetActivityBuckets(events, req, clock)
		types := analysis.GetSmokeTypeBuckets(events, req, clock)

		if reportJSON {
			out, err := json.MarshalIndent(map[string]any{
				"request": map[string]string{
					"window":   window.String(),
					"dayClass": dayClass.String(),
					"strategy": strategy.String(),
				},
				"summary":  summary,
				"daily":    daily,
				"weekdays": weekdays,
				"hours":    hours,
				"activity": activities,
				"type":     types,
			}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Printf("Window: %s, days: %s, strategy: %s\n\n", window, dayClass, strategy)

		fmt.Printf("Total records: %d\n", summary.Total)
		fmt.Printf("Daily average (excl. today): %.2f\n", summary.DailyAverageExclToday)
		fmt.Printf("Weekday average: %.2f, weekend average: %.2f\n", summary.WeekdayAverage, summary.WeekendAverage)
		if summary.MeanGap.Valid {
			fmt.Printf("Mean time between events: %s\n", summary.MeanGap.Text)
		}

		if len(daily) > 0 {
			fmt.Println("\nPer day:")
			for _, b := range daily {
				fmt.Printf("  %s  %s\n", b.Label, bar(float64(b.Count), b.Count))
			}
		}

		fmt.Println("\nPer weekday:")
		for _, b := range weekdays {
			fmt.Printf("  %-9s %s\n", b.Day, bar(b.Value, b.Count))
		}

		fmt.Println("\nPer hour:")
		for _, b := range hours {
			if b.Count == 0 {
				continue
			}
			fmt.Printf("  %02dh  %s\n", b.Hour, bar(b.Value, b.Count))
		}

		printLabels("Per activity", activities)
		printLabels("Per type", types)
		return nil
	},
}

func printLabels(title string, buckets []analysis.LabelBucket) {
	if len(buckets) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, b := range buckets {
		fmt.Printf("  %-24s %s\n", b.Label, bar(float64(b.Count), b.Count))
	}
}

// bar renders a crude magnitude indicator next to the numeric value.
func bar(value float64, count int) string {
	n := count
	if n > 40 {
		n = 40
	}
	return fmt.Sprintf("%-40s %.1f", strings.Repeat("#", n), value)
}

func init() {
	reportCmd.Flags().StringVarP(&reportWindow, "window", "w", "7d", "time window: total or N days (3/7/14/30/60/90)")
	reportCmd.Flags().StringVarP(&reportDayClass, "days", "d", "all", "day class: all, weekdays or weekend")
	reportCmd.Flags().BoolVar(&reportAverage, "avg", false, "report per-bucket averages instead of raw totals")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "emit the full report as JSON")

	rootCmd.AddCommand(reportCmd)
}
