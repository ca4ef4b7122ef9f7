package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Show link health counters for a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, files, err := buildPipeline(context.Background())
		if err != nil {
			return err
		}

		file := args[0]
		health := g.GetHealthReport(file)

		fmt.Printf("File:                %s\n", file)
		fmt.Printf("Exists on disk:      %v\n", files.Contains(file))
		fmt.Printf("Total links:         %d\n", health.TotalLinks)
		fmt.Printf("Outgoing links:      %d\n", health.OutgoingLinks)
		fmt.Printf("Incoming links:      %d\n", health.IncomingLinks)
		fmt.Printf("Bidirectional links: %d\n", health.BidirectionalLinks)
		fmt.Printf("Repair attempts:     %d\n", health.RepairAttempts)
		fmt.Printf("Repaired links:      %d\n", health.RepairedLinks)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
