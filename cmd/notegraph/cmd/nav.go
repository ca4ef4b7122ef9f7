package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"notegraph/internal/nav"
)

var navMaxDepth int

var navCmd = &cobra.Command{
	Use:   "nav <source> <target>",
	Short: "Show navigation paths between two documents",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, _, err := buildPipeline(context.Background())
		if err != nil {
			return err
		}

		if navMaxDepth < 1 {
			navMaxDepth = cfg.MaxNavDepth
		}
		paths := g.GetNavigationPaths(args[0], args[1], navMaxDepth)
		if len(paths) == 0 {
			fmt.Printf("No path from %s to %s within %d hops\n", args[0], args[1], navMaxDepth)
			return nil
		}
		for _, path := range paths {
			files := make([]string, len(path.Nodes))
			for i, node := range path.Nodes {
				files[i] = node.FilePath
			}
			fmt.Printf("%-8s %s\n", path.PathType, strings.Join(files, " -> "))
		}
		return nil
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu <file>",
	Short: "Render the navigation menu block for a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, _, err := buildPipeline(context.Background())
		if err != nil {
			return err
		}

		menu := nav.NewBuilder(g).BuildMenu(args[0])
		block := menu.Render()
		if block == "" {
			fmt.Printf("%s has no navigation neighbors\n", args[0])
			return nil
		}
		fmt.Print(block)
		return nil
	},
}

func init() {
	navCmd.Flags().IntVar(&navMaxDepth, "max-depth", 0, "maximum path length in hops (defaults to MAX_NAV_DEPTH)")
	rootCmd.AddCommand(navCmd)
	rootCmd.AddCommand(menuCmd)
}
