package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <index-id> <question>",
	Short: "Ask a question against one vector index",
	Long: `Answer a question from the content of one vector index.

Examples:
  vectra-cli ask docs "how is discovery configured?"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := table.Call(context.Background(), "ask_index", map[string]any{
			"index_id": args[0],
			"question": args[1],
		})
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
