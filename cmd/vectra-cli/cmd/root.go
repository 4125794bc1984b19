package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vectra/internal/adapters/enginecli"
	"vectra/internal/application"
	"vectra/internal/config"
)

var (
	indexerCmd string
	timeout    time.Duration

	table   *application.Table
	catalog *application.Catalog
)

var rootCmd = &cobra.Command{
	Use:   "vectra-cli",
	Short: "Query externally-managed vector indexes from the terminal",
	Long: `vectra-cli talks to the same external indexer the vectra MCP server
fronts. It discovers the known vector indexes and runs semantic
search and retrieval-augmented questions against them.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		logger := zap.NewNop()
		disc := enginecli.NewDiscoverer(indexerCmd, timeout, logger)
		engine := enginecli.NewEngine(indexerCmd, timeout, logger)
		table = application.NewToolTable(disc, engine)
		catalog = application.NewCatalog(disc)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "vectra-cli:", err)
		cfg = config.Config{Indexer: config.DefaultIndexer, Timeout: config.DefaultTimeout}
	}
	rootCmd.PersistentFlags().StringVarP(&indexerCmd, "indexer", "i", cfg.Indexer, "external indexer command")
	rootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", cfg.Timeout, "bound on each indexer invocation")
}
