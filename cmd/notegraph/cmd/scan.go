package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Extract links from the corpus and summarize the graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, files, err := buildPipeline(context.Background())
		if err != nil {
			return err
		}

		known := g.Files()
		broken := 0
		for _, file := range known {
			for _, link := range g.GetOutgoingLinks(file) {
				if !files.Contains(link.TargetFile) {
					broken++
				}
			}
		}

		fmt.Printf("Corpus files:  %d\n", len(files))
		fmt.Printf("Linked files:  %d\n", len(known))
		fmt.Printf("Broken links:  %d\n", broken)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
