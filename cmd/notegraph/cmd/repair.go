package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"notegraph/internal/consolidate"
	"notegraph/internal/graph"
)

var (
	repairApply         bool
	repairMinConfidence float64
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Repair links whose target no longer exists",
	Long: `Repair runs the strategy chain (fuzzy match, nearest path, alternative
path, remove) against every broken link and prints the outcome. Without
--apply nothing is written; with it, repairs at or above --min-confidence
are applied to the source documents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, files, err := buildPipeline(context.Background())
		if err != nil {
			return err
		}

		if !cmd.Flags().Changed("min-confidence") {
			repairMinConfidence = cfg.MinConfidence
		}

		available := files.List()
		bySource := make(map[string][]*graph.LinkRepairResult)
		repaired, removed, failed := 0, 0, 0

		for _, file := range g.Files() {
			for _, link := range g.GetOutgoingLinks(file) {
				if files.Contains(link.TargetFile) {
					continue
				}
				result := g.RepairLink(link, available)
				bySource[file] = append(bySource[file], result)

				switch {
				case result.Success && result.RepairedLink != nil:
					repaired++
					fmt.Printf("%s: %s -> %s (%s, %.2f)\n",
						file, link.TargetFile, result.RepairedLink.TargetFile,
						result.StrategyUsed, result.Confidence)
				case result.Success:
					removed++
					fmt.Printf("%s: %s -> remove (%.2f)\n", file, link.TargetFile, result.Confidence)
				default:
					failed++
					fmt.Printf("%s: %s -> FAILED: %s\n", file, link.TargetFile, result.RepairNotes)
				}
			}
		}

		fmt.Printf("\nRepaired: %d  Removed: %d  Failed: %d\n", repaired, removed, failed)

		if !repairApply {
			return nil
		}

		applier := consolidate.NewApplier(repairMinConfidence)
		applied := 0
		for file, results := range bySource {
			n, err := applier.ApplyToFile(cfg.NotesDir, file, results)
			if err != nil {
				return err
			}
			applied += n
		}
		fmt.Printf("Applied %d repair(s) to disk\n", applied)
		return nil
	},
}

func init() {
	repairCmd.Flags().BoolVar(&repairApply, "apply", false, "write repairs back to the source documents")
	repairCmd.Flags().Float64Var(&repairMinConfidence, "min-confidence", 0.8, "minimum confidence for applying a repair")
	rootCmd.AddCommand(repairCmd)
}
