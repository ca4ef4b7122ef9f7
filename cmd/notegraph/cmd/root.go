package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notegraph/internal/corpus"
	"notegraph/internal/extract"
	"notegraph/internal/graph"
	"notegraph/pkg/config"
	"notegraph/pkg/logger"
)

var (
	notesDir string
	cfg      *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "notegraph",
	Short: "Link relationship and repair engine for a notes corpus",
	Long: `notegraph maintains cross-references between documents in a processed
corpus of notes. It extracts links, validates them, builds navigation
data, and repairs links whose target no longer exists.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if notesDir != "" {
			cfg.NotesDir = notesDir
		}
		if err := logger.Init(cfg.Env); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&notesDir, "notes-dir", "n", "", "path to the notes corpus (overrides NOTES_DIR)")
}

// buildPipeline scans the corpus, extracts every link and feeds the graph.
// Extraction runs concurrently; graph mutation stays serialized here.
func buildPipeline(ctx context.Context) (*graph.RelationshipGraph, corpus.FileSet, error) {
	files, err := corpus.Scan(cfg.NotesDir)
	if err != nil {
		return nil, nil, err
	}

	extractor := extract.New(cfg.NotesDir, cfg.ExtractWorkers)
	links, err := extractor.ExtractCorpus(ctx, files.List())
	if err != nil {
		return nil, nil, err
	}

	g := graph.NewRelationshipGraph()
	for _, link := range links {
		g.AddLink(link)
	}
	return g, files, nil
}
