package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leengari/joydb-catalog/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show <catalog.json>",
	Short: "List the indices recorded in a relation catalog file",
	Long: `Load a persisted relation catalog and print its indices in
registration order, with each index's sub-block types and covered
attribute ids.

Examples:
  catalogctl show databases/main/users/catalog.json`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		rel, err := storage.LoadRelationCatalog(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "relation: %s (id %s)\n", rel.Name, rel.ID)
		fmt.Fprintf(out, "indices:  %d\n", rel.NumIndices())

		for _, name := range rel.IndexNames() {
			fmt.Fprintf(out, "  %s\n", name)
			for _, desc := range rel.IndexDescriptions(name) {
				attrs := make([]string, 0, len(desc.AttributeIDs))
				for _, id := range desc.AttributeIDs {
					attrs = append(attrs, fmt.Sprintf("%d", id))
				}
				fmt.Fprintf(out, "    %-14s attributes=[%s]\n",
					desc.SubBlockType, strings.Join(attrs, ","))
			}
		}
		return nil
	},
}
