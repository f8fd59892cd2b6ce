package commands

import (
	"errors"
	"fmt"
	"os"

	"smoketrack/internal/journal"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the full dataset as JSON",
	Long:  `Writes the snapshot (records plus both catalogs) to stdout or a file. The output is directly re-importable.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := store.Export()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			fmt.Println(string(raw))
			return nil
		}
		if err := os.WriteFile(args[0], raw, 0644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Printf("Exported %d records to %s\n", store.Len(), args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a previously exported JSON dataset",
	Long: `Appends imported records to the existing log and unions the catalogs.
The import is all-or-nothing: one malformed record rejects the whole file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read import file: %w", err)
		}

		added, err := store.Import(raw, clock.Location())
		if err != nil {
			if errors.Is(err, journal.ErrInvalidSnapshot) {
				return fmt.Errorf("import rejected, existing data unchanged: %w", err)
			}
			return err
		}
		if err := saveStore(); err != nil {
			return err
		}

		fmt.Printf("Imported %d records, total now %d\n", added, store.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}
