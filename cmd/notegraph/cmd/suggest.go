package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <file>",
	Short: "Suggest new link targets for a document",
	Long: `Suggest lists documents two hops away from the given one: targets of its
targets and sources of its incoming sources, excluding anything it
already links to.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, _, err := buildPipeline(context.Background())
		if err != nil {
			return err
		}

		suggestions := g.GetLinkSuggestions(args[0])
		if len(suggestions) == 0 {
			fmt.Printf("No suggestions for %s\n", args[0])
			return nil
		}
		for _, suggestion := range suggestions {
			fmt.Println(suggestion)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}
