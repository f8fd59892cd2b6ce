package commands

import (
	"fmt"
	"time"

	"smoketrack/internal/analysis"
	"smoketrack/internal/journal"

	"github.com/spf13/cobra"
)

var (
	logType     string
	logActivity string
	logAt       string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Register a smoking event",
	Long: `Registers one event. Without flags the first catalog entries and the
current time are used, mirroring the defaults of the registration form.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		smokeType := logType
		if smokeType == "" {
			if types := store.SmokeTypes(); len(types) > 0 {
				smokeType = types[0]
			}
		}
		activity := logActivity
		if activity == "" {
			if acts := store.Activities(); len(acts) > 0 {
				activity = acts[0]
			}
		}

		at := clock.Now()
		if logAt != "" {
			parsed, err := parseWhen(logAt)
			if err != nil {
				return err
			}
			at = parsed
		}

		event, err := journal.NewEvent(smokeType, activity, at)
		if err != nil {
			return err
		}
		store.Add(event)
		if err := saveStore(); err != nil {
			return err
		}

		local := event.OccurredAt.In(clock.Location())
		today := analysis.CountOnDate(store.Events(), clock.Now(), clock.Location())
		fmt.Printf("Logged %s at %s (%s)\n", event.SmokeType, local.Format("15:04"), event.Activity)
		fmt.Printf("Records today: %d, total: %d\n", today, store.Len())
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an event by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !store.Delete(args[0]) {
			return fmt.Errorf("no event with id %s", args[0])
		}
		if err := saveStore(); err != nil {
			return err
		}
		fmt.Println("Event deleted.")
		return nil
	},
}

var listToday bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged events",
	RunE: func(cmd *cobra.Command, args []string) error {
		loc := clock.Location()
		today := clock.Now().In(loc).Format("2006-01-02")

		shown := 0
		for _, e := range store.Events() {
			local := e.OccurredAt.In(loc)
			if listToday && local.Format("2006-01-02") != today {
				continue
			}
			fmt.Printf("%s  %s  %-22s %s\n", e.ID, local.Format("2006-01-02 15:04"), e.SmokeType, e.Activity)
			shown++
		}
		if shown == 0 {
			fmt.Println("No records.")
		}
		return nil
	},
}

// parseWhen accepts RFC 3339 or the zone-less local forms used by the
// import format.
func parseWhen(value string) (time.Time, error) {
	layouts := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, clock.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q (want RFC 3339 or 2006-01-02T15:04)", value)
}

func init() {
	logCmd.Flags().StringVarP(&logType, "type", "t", "", "substance type label")
	logCmd.Flags().StringVarP(&logActivity, "activity", "a", "", "activity label")
	logCmd.Flags().StringVar(&logAt, "at", "", "timestamp (default: now)")
	listCmd.Flags().BoolVar(&listToday, "today", false, "only today's records")

	rootCmd.AddCommand(logCmd, deleteCmd, listCmd)
}
