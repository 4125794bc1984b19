package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "List the known vector indexes",
	Long: `List all vector indexes the external indexer currently knows about.

Examples:
  vectra-cli indexes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := table.Call(context.Background(), "list_indexes", nil)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexesCmd)
}
