package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <index-id> <query>",
	Short: "Search one vector index",
	Long: `Run a semantic search against one vector index.

Examples:
  vectra-cli search docs "error handling"
  vectra-cli search notes retries`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := table.Call(context.Background(), "search_index", map[string]any{
			"index_id": args[0],
			"query":    args[1],
		})
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
