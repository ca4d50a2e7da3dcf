package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leengari/joydb-catalog/internal/storage"
)

var validateCmd = &cobra.Command{
	Use:   "validate <catalog.json>",
	Short: "Check that a relation catalog file is fully formed",
	Long: `Validate a persisted relation catalog without loading it.

Checks that the relation id and name are present, that every index entry
carries a unique non-empty name, and that every index description passes the
sub-block validator. Exits 1 if the file is malformed.

Examples:
  catalogctl validate databases/main/users/catalog.json`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		valid, err := storage.ValidateRelationCatalog(args[0])
		if err != nil {
			return err
		}
		if !valid {
			return fmt.Errorf("catalog file %s is malformed", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", args[0])
		return nil
	},
}
