package graph

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"notegraph/pkg/logger"
)

// ============================================================================
// Repair Engine
// ============================================================================

// repairHandler attempts one strategy against a broken link
type repairHandler func(link *LinkContext, availableFiles []string) *LinkRepairResult

// RepairEngine runs an ordered chain of heuristics against broken links and
// records the outcomes in the graph's history and health counters. A batch
// of N broken links always degrades to N best-effort results; nothing here
// returns an error or panics.
type RepairEngine struct {
	graph    *RelationshipGraph
	handlers map[RepairStrategy]repairHandler
	log      *zap.Logger
}

func newRepairEngine(g *RelationshipGraph) *RepairEngine {
	e := &RepairEngine{
		graph: g,
		log:   logger.Named("repair"),
	}
	e.handlers = map[RepairStrategy]repairHandler{
		StrategyFuzzyMatch:      e.repairByFuzzyMatch,
		StrategyNearestPath:     e.repairByNearestPath,
		StrategyAlternativePath: e.repairByAlternativePath,
		StrategyRemoveLink:      e.repairByRemoval,
	}
	return e
}

// RepairLink tries each strategy in order and stops at the first success.
// The repair-attempt counter for the link's source is bumped exactly once,
// before any strategy runs. The first successful result is appended to the
// source's repair history and bumps its repaired-links counter. When every
// strategy fails, a final failure result is recorded instead.
func (e *RepairEngine) RepairLink(link *LinkContext, availableFiles []string, strategies ...RepairStrategy) *LinkRepairResult {
	if len(strategies) == 0 {
		strategies = DefaultRepairStrategies
	}

	e.graph.metricsFor(link.SourceFile).RepairAttempts++

	for _, strategy := range strategies {
		handler, ok := e.handlers[strategy]
		if !ok {
			continue
		}
		result := handler(link, availableFiles)
		if result.Success {
			e.graph.appendRepairHistory(link.SourceFile, result)
			e.graph.metricsFor(link.SourceFile).RepairedLinks++
			e.log.Debug("link repaired",
				zap.String("source", link.SourceFile),
				zap.String("target", link.TargetFile),
				zap.String("strategy", string(result.StrategyUsed)),
				zap.Float64("confidence", result.Confidence))
			return result
		}
	}

	failure := e.newResult(link)
	failure.RepairNotes = "All repair strategies failed"
	e.graph.appendRepairHistory(link.SourceFile, failure)
	e.log.Debug("link repair failed",
		zap.String("source", link.SourceFile),
		zap.String("target", link.TargetFile))
	return failure
}

// GetRepairSuggestions previews the non-destructive strategies without
// short-circuiting: fuzzy match, nearest path and alternative path each get
// a run, and every produced replacement target is collected with its
// confidence, best first. Metrics and history are left untouched.
func (e *RepairEngine) GetRepairSuggestions(link *LinkContext, availableFiles []string) []RepairSuggestion {
	preview := []RepairStrategy{StrategyFuzzyMatch, StrategyNearestPath, StrategyAlternativePath}

	var suggestions []RepairSuggestion
	for _, strategy := range preview {
		result := e.handlers[strategy](link, availableFiles)
		if result.RepairedLink != nil {
			suggestions = append(suggestions, RepairSuggestion{
				TargetFile: result.RepairedLink.TargetFile,
				Confidence: result.Confidence,
			})
		}
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})
	return suggestions
}

// ============================================================================
// Strategies
// ============================================================================

// repairByFuzzyMatch looks for the single best string-similarity match among
// the available files. Candidates must clear a 0.6 cutoff to be considered
// at all; the best one repairs the link only when its ratio reaches 0.8.
func (e *RepairEngine) repairByFuzzyMatch(link *LinkContext, availableFiles []string) *LinkRepairResult {
	result := e.newResult(link)

	matches := closeMatches(link.TargetFile, availableFiles, 1, 0.6)
	if len(matches) == 0 {
		result.RepairNotes = "No close matches found"
		return result
	}

	best := matches[0]
	ratio := similarityRatio(link.TargetFile, best)
	if ratio < 0.8 {
		result.RepairNotes = fmt.Sprintf("Best match %s scored %.2f, below threshold", best, ratio)
		return result
	}

	result.Success = true
	result.Confidence = ratio
	result.StrategyUsed = StrategyFuzzyMatch
	result.RepairedLink = link.WithTarget(best)
	result.RepairNotes = fmt.Sprintf("Fuzzy matched to %s", best)
	return result
}

// repairByNearestPath looks for a file with the exact same name that moved
// to a different directory, scoring candidates by the similarity of their
// parent directories.
func (e *RepairEngine) repairByNearestPath(link *LinkContext, availableFiles []string) *LinkRepairResult {
	result := e.newResult(link)

	baseName := path.Base(link.TargetFile)
	var candidates []string
	for _, file := range availableFiles {
		if path.Base(file) == baseName {
			candidates = append(candidates, file)
		}
	}
	if len(candidates) == 0 {
		result.RepairNotes = "No files with same name found"
		return result
	}

	brokenDir := path.Dir(link.TargetFile)
	var best string
	bestRatio := -1.0
	for _, candidate := range candidates {
		if ratio := similarityRatio(brokenDir, path.Dir(candidate)); ratio > bestRatio {
			best = candidate
			bestRatio = ratio
		}
	}
	if bestRatio < 0.5 {
		result.RepairNotes = "No suitable path matches found"
		return result
	}

	result.Success = true
	result.Confidence = bestRatio
	result.StrategyUsed = StrategyNearestPath
	result.RepairedLink = link.WithTarget(best)
	result.RepairNotes = fmt.Sprintf("Found file at new path: %s", best)
	return result
}

// repairByAlternativePath redirects the link to a file the source can still
// reach through the graph within two hops. Candidate scan order follows the
// caller's slice; equally short paths between candidates are not tie-broken
// beyond that.
func (e *RepairEngine) repairByAlternativePath(link *LinkContext, availableFiles []string) *LinkRepairResult {
	result := e.newResult(link)

	for _, candidate := range availableFiles {
		paths := e.graph.finder.FindNavigationPaths(link.SourceFile, candidate, DefaultMaxDepth)

		var best *NavigationPath
		for i := range paths {
			p := &paths[i]
			if p.TotalLinks < 1 || p.TotalLinks > 2 {
				continue
			}
			if best == nil || p.TotalLinks < best.TotalLinks {
				best = p
			}
		}
		if best == nil {
			continue
		}

		names := make([]string, len(best.Nodes))
		for i, node := range best.Nodes {
			names[i] = node.FilePath
		}
		result.Success = true
		result.Confidence = 1.0 / float64(best.TotalLinks)
		result.StrategyUsed = StrategyAlternativePath
		result.RepairedLink = link.WithTarget(candidate)
		result.RepairNotes = "Alternative path found: " + strings.Join(names, " -> ")
		return result
	}

	result.RepairNotes = "No suitable alternative paths found"
	return result
}

// repairByRemoval always succeeds with full confidence and no repaired
// link, signalling the caller to drop the reference.
func (e *RepairEngine) repairByRemoval(link *LinkContext, availableFiles []string) *LinkRepairResult {
	result := e.newResult(link)
	result.Success = true
	result.Confidence = 1.0
	result.StrategyUsed = StrategyRemoveLink
	result.RepairNotes = "Link removed: no replacement target"
	return result
}

func (e *RepairEngine) newResult(link *LinkContext) *LinkRepairResult {
	return &LinkRepairResult{
		ID:           uuid.NewString(),
		OriginalLink: link,
	}
}
