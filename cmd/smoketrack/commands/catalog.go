package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the substance-type and activity catalogs",
	Long: `Catalogs only populate selection defaults; removing a label never touches
events that already reference it.`,
}

func newCatalogSubcommand(name, title string,
	list func() []string,
	add func(string) error,
	remove func(string) bool,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("Manage %s labels", title),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s labels", title),
		Run: func(cmd *cobra.Command, args []string) {
			for _, label := range list() {
				fmt.Println(label)
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <label>",
		Short: fmt.Sprintf("Add a %s label", title),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := add(args[0]); err != nil {
				return err
			}
			return saveStore()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <label>",
		Short: fmt.Sprintf("Remove a %s label", title),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !remove(args[0]) {
				return fmt.Errorf("no %s label %q", title, args[0])
			}
			return saveStore()
		},
	})

	return cmd
}

func init() {
	catalogCmd.AddCommand(
		newCatalogSubcommand("types", "substance-type",
			func() []string { return store.SmokeTypes() },
			func(l string) error { return store.AddSmokeType(l) },
			func(l string) bool { return store.RemoveSmokeType(l) },
		),
		newCatalogSubcommand("activities", "activity",
			func() []string { return store.Activities() },
			func(l string) error { return store.AddActivity(l) },
			func(l string) bool { return store.RemoveActivity(l) },
		),
	)

	rootCmd.AddCommand(catalogCmd)
}
