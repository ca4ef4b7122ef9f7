package consolidate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"notegraph/internal/graph"
	"notegraph/pkg/errors"
	"notegraph/pkg/logger"
)

// ============================================================================
// Repair Application
// ============================================================================

// Applier rewrites broken references in markdown sources according to repair
// results. Results below the confidence threshold are skipped so callers can
// auto-apply confident repairs and leave the rest for review.
type Applier struct {
	minConfidence float64
	log           *zap.Logger
}

// NewApplier creates an applier with the given confidence threshold
func NewApplier(minConfidence float64) *Applier {
	return &Applier{
		minConfidence: minConfidence,
		log:           logger.Named("consolidate"),
	}
}

// Apply rewrites one repaired reference inside document content. The raw
// reference text recorded on the original link (TargetContext) locates the
// occurrence to rewrite; a remove outcome unwraps the reference to its
// title text. Returns the updated content and whether anything changed.
func (a *Applier) Apply(content string, result *graph.LinkRepairResult) (string, bool) {
	if result == nil || !result.Success || result.Confidence < a.minConfidence {
		return content, false
	}
	raw := rawReference(result.OriginalLink)
	if raw == "" {
		return content, false
	}

	if result.RepairedLink != nil {
		updated := rewriteTarget(content, raw, result.RepairedLink.TargetFile)
		return updated, updated != content
	}

	updated := removeReference(content, raw)
	return updated, updated != content
}

// ApplyToFile runs every result against one document on disk, writing the
// file back only when something changed. Returns how many results were
// applied.
func (a *Applier) ApplyToFile(root, file string, results []*graph.LinkRepairResult) (int, error) {
	full := filepath.Join(root, filepath.FromSlash(file))
	raw, err := os.ReadFile(full)
	if err != nil {
		return 0, errors.NewFileUnreadable(file, err)
	}

	content := string(raw)
	applied := 0
	for _, result := range results {
		updated, changed := a.Apply(content, result)
		if changed {
			content = updated
			applied++
			a.log.Info("repair applied",
				zap.String("file", file),
				zap.String("strategy", string(result.StrategyUsed)),
				zap.Float64("confidence", result.Confidence))
		}
	}
	if applied == 0 {
		return 0, nil
	}

	info, err := os.Stat(full)
	if err != nil {
		return 0, errors.NewFileUnreadable(file, err)
	}
	if err := os.WriteFile(full, []byte(content), info.Mode()); err != nil {
		return 0, errors.NewBaseError(errors.ErrorTypeConsolidate, fmt.Sprintf("cannot write document: %s", file), err)
	}
	return applied, nil
}

// rawReference recovers the reference text as it appears in the document.
// Extraction records it on TargetContext; the resolved id is the fallback.
func rawReference(link *graph.LinkContext) string {
	if link == nil {
		return ""
	}
	if link.TargetContext != "" {
		return link.TargetContext
	}
	return link.TargetFile
}

// rewriteTarget swaps the reference target in both markdown link forms
func rewriteTarget(content, raw, newTarget string) string {
	quoted := regexp.QuoteMeta(raw)

	inline := regexp.MustCompile(`(\[[^\]]*\]\()` + quoted + `(\))`)
	content = inline.ReplaceAllString(content, "${1}"+newTarget+"${2}")

	wiki := regexp.MustCompile(`\[\[` + quoted + `(\|[^\]]+)?\]\]`)
	content = wiki.ReplaceAllString(content, "[["+newTarget+"${1}]]")

	return content
}

// removeReference unwraps a reference, keeping its visible title text
func removeReference(content, raw string) string {
	quoted := regexp.QuoteMeta(raw)

	inline := regexp.MustCompile(`\[([^\]]*)\]\(` + quoted + `\)`)
	content = inline.ReplaceAllString(content, "$1")

	wikiTitled := regexp.MustCompile(`\[\[` + quoted + `\|([^\]]+)\]\]`)
	content = wikiTitled.ReplaceAllString(content, "$1")

	wikiBare := regexp.MustCompile(`\[\[` + quoted + `\]\]`)
	content = wikiBare.ReplaceAllString(content, strings.TrimSuffix(filepath.Base(raw), filepath.Ext(raw)))

	return content
}
