package commands

import (
	"smoketrack/internal/analysis"
	"smoketrack/internal/config"
	"smoketrack/internal/journal"
	"smoketrack/internal/logging"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
	store   *journal.Store
	clock   analysis.Clock
)

var rootCmd = &cobra.Command{
	Use:   "smoketrack",
	Short: "SmokeTrack logs smoking events and reports usage statistics",
	Long: `A personal habit tracker: log each smoking event (substance type, activity,
timestamp) and break the history down by day, weekday, hour, activity and type.
Data lives in a local JSON snapshot that can be exported and re-imported.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		clock = analysis.NewSystemClock(cfg.Location)

		store = journal.NewStore(cfg.SnapshotFile)
		if err := store.Load(); err != nil {
			log.Fatal().Err(err).Str("path", cfg.SnapshotFile).Msg("Failed to load snapshot")
		}

		log.Debug().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Int("records", store.Len()).
			Msg("SmokeTrack starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// saveStore persists the snapshot after a mutating command; the dataset
// is synchronized to durable storage on every change.
func saveStore() error {
	if err := store.Save(); err != nil {
		log.Error().Err(err).Msg("Failed to save snapshot")
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
