package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "List the indexes as addressable resources",
	Long: `List the resource URI of every known vector index.

Examples:
  vectra-cli resources
  vectra-cli resources read vector-index:///docs`,
	RunE: func(cmd *cobra.Command, args []string) error {
		resources, err := catalog.ListResources(context.Background())
		if err != nil {
			return err
		}
		if len(resources) == 0 {
			fmt.Println("No resources found")
			return nil
		}
		for _, r := range resources {
			fmt.Printf("%s  %s\n", r.URI, r.Name)
		}
		return nil
	},
}

var resourcesReadCmd = &cobra.Command{
	Use:   "read <uri>",
	Short: "Read one index resource by URI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := catalog.ReadResource(context.Background(), args[0])
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(idx, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resourcesCmd)
	resourcesCmd.AddCommand(resourcesReadCmd)
}
