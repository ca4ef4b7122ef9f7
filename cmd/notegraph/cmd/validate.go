package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Report circular references and broken link targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, files, err := buildPipeline(context.Background())
		if err != nil {
			return err
		}

		problems := g.ValidateLinks(files.Contains)
		if len(problems) == 0 {
			fmt.Println("No link problems found")
			return nil
		}
		for _, problem := range problems {
			fmt.Println(problem)
		}
		return fmt.Errorf("%d link problem(s) found", len(problems))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
