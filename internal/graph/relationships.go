package graph

import (
	"sort"

	"go.uber.org/zap"

	"notegraph/pkg/logger"
)

// ============================================================================
// Relationship Graph
// ============================================================================

type pathKey struct {
	source string
	target string
}

// RelationshipGraph is the long-lived, append-mostly structure tracking
// file-level relationships for one corpus-processing run. It owns the raw
// link index, the per-file health metrics, the navigation-path cache and the
// repair history.
//
// The graph is single-threaded by contract: callers must serialize AddLink
// and RepairLink. Pure queries may run concurrently with each other but not
// with mutation. There is no internal locking.
type RelationshipGraph struct {
	index *LinkIndex

	// direct maps source file -> set of target files (deduplicated)
	direct map[string]map[string]struct{}
	// reverse maps target file -> set of source files
	reverse map[string]map[string]struct{}

	// navigationPaths is a point-in-time snapshot cache keyed by
	// (source, target). It is never invalidated by later AddLink calls;
	// callers that need freshness re-query via FindNavigationPaths.
	navigationPaths map[pathKey][]NavigationPath

	health        map[string]*HealthMetrics
	repairHistory map[string][]*LinkRepairResult

	finder   *PathFinder
	repairer *RepairEngine

	log *zap.Logger
}

// NewRelationshipGraph creates an empty graph with its path finder and
// repair engine wired in
func NewRelationshipGraph() *RelationshipGraph {
	g := &RelationshipGraph{
		index:           NewLinkIndex(),
		direct:          make(map[string]map[string]struct{}),
		reverse:         make(map[string]map[string]struct{}),
		navigationPaths: make(map[pathKey][]NavigationPath),
		health:          make(map[string]*HealthMetrics),
		repairHistory:   make(map[string][]*LinkRepairResult),
		log:             logger.Named("graph"),
	}
	g.finder = newPathFinder(g)
	g.repairer = newRepairEngine(g)
	return g
}

// AddLink records one extracted link: the raw record goes into the index,
// the file-level adjacency sets are updated, and health counters are bumped.
// An edge counts as bidirectional for both endpoints as soon as its reverse
// edge has been recorded, so a single AddLink can retroactively mark an
// earlier edge bidirectional.
func (g *RelationshipGraph) AddLink(link *LinkContext) {
	g.index.AddLink(link)

	source, target := link.SourceFile, link.TargetFile
	setFor(g.direct, source)[target] = struct{}{}
	setFor(g.reverse, target)[source] = struct{}{}

	sourceMetrics := g.metricsFor(source)
	targetMetrics := g.metricsFor(target)
	sourceMetrics.TotalLinks++
	sourceMetrics.OutgoingLinks++
	targetMetrics.TotalLinks++
	targetMetrics.IncomingLinks++

	// The reverse edge target -> source exists iff target appears among
	// the sources linking into source.
	if _, ok := g.reverse[source][target]; ok {
		sourceMetrics.BidirectionalLinks++
		targetMetrics.BidirectionalLinks++
	}
}

// GetRelatedFiles partitions a file's neighbors into outgoing-only,
// incoming-only and bidirectional. Results are sorted for stable output.
func (g *RelationshipGraph) GetRelatedFiles(file string) RelatedFiles {
	bidi := make(map[string]struct{})
	for target := range g.direct[file] {
		if _, ok := g.reverse[file][target]; ok {
			bidi[target] = struct{}{}
		}
	}

	related := RelatedFiles{
		Outgoing:      []string{},
		Incoming:      []string{},
		Bidirectional: sortedKeys(bidi),
	}
	for target := range g.direct[file] {
		if _, ok := bidi[target]; !ok {
			related.Outgoing = append(related.Outgoing, target)
		}
	}
	for source := range g.reverse[file] {
		if _, ok := bidi[source]; !ok {
			related.Incoming = append(related.Incoming, source)
		}
	}
	sort.Strings(related.Outgoing)
	sort.Strings(related.Incoming)
	return related
}

// GetLinkSuggestions proposes two-hop neighbors as new link targets: targets
// of the file's targets plus sources of the file's incoming sources, minus
// the file itself and anything it already links to. Sorted and deduplicated.
func (g *RelationshipGraph) GetLinkSuggestions(file string) []string {
	candidates := make(map[string]struct{})
	for target := range g.direct[file] {
		for twoHop := range g.direct[target] {
			candidates[twoHop] = struct{}{}
		}
	}
	for source := range g.reverse[file] {
		for twoHop := range g.reverse[source] {
			candidates[twoHop] = struct{}{}
		}
	}

	delete(candidates, file)
	for target := range g.direct[file] {
		delete(candidates, target)
	}
	return sortedKeys(candidates)
}

// GetHealthReport returns the counters for a file. Files never seen report
// all-zero metrics; "no links" and "unknown file" are indistinguishable.
func (g *RelationshipGraph) GetHealthReport(file string) HealthMetrics {
	if m, ok := g.health[file]; ok {
		return *m
	}
	return HealthMetrics{}
}

// GetRepairHistory returns the ordered repair results recorded for a file
func (g *RelationshipGraph) GetRepairHistory(file string) []*LinkRepairResult {
	return g.repairHistory[file]
}

// ============================================================================
// Component delegation
// ============================================================================

// GetOutgoingLinks returns the raw link records originating at the file
func (g *RelationshipGraph) GetOutgoingLinks(file string) []*LinkContext {
	return g.index.GetOutgoingLinks(file)
}

// GetIncomingLinks returns the raw link records targeting the file
func (g *RelationshipGraph) GetIncomingLinks(file string) []*LinkContext {
	return g.index.GetIncomingLinks(file)
}

// GetLinksByType returns all records of one link type
func (g *RelationshipGraph) GetLinksByType(linkType LinkType) []*LinkContext {
	return g.index.GetLinksByType(linkType)
}

// Files returns every file the graph has seen, sorted
func (g *RelationshipGraph) Files() []string {
	return g.index.Files()
}

// ValidateLinks reports cycles and broken targets as descriptive strings
func (g *RelationshipGraph) ValidateLinks(exists func(file string) bool) []string {
	problems := g.index.ValidateLinks(exists)
	if len(problems) > 0 {
		g.log.Debug("link validation found problems", zap.Int("count", len(problems)))
	}
	return problems
}

// FindNavigationPaths recomputes paths between two files, refreshing the cache
func (g *RelationshipGraph) FindNavigationPaths(source, target string, maxDepth int) []NavigationPath {
	return g.finder.FindNavigationPaths(source, target, maxDepth)
}

// GetNavigationPaths returns cached paths when available, computing otherwise
func (g *RelationshipGraph) GetNavigationPaths(source, target string, maxDepth int) []NavigationPath {
	return g.finder.GetNavigationPaths(source, target, maxDepth)
}

// RepairLink attempts to fix a broken link using the given strategies, or
// the default chain when none are given
func (g *RelationshipGraph) RepairLink(link *LinkContext, availableFiles []string, strategies ...RepairStrategy) *LinkRepairResult {
	return g.repairer.RepairLink(link, availableFiles, strategies...)
}

// GetRepairSuggestions previews candidate replacement targets without
// mutating metrics or history
func (g *RelationshipGraph) GetRepairSuggestions(link *LinkContext, availableFiles []string) []RepairSuggestion {
	return g.repairer.GetRepairSuggestions(link, availableFiles)
}

// ============================================================================
// Helpers
// ============================================================================

// setFor is an explicit get-or-insert-default for adjacency sets
func setFor(m map[string]map[string]struct{}, key string) map[string]struct{} {
	if s, ok := m[key]; ok {
		return s
	}
	s := make(map[string]struct{})
	m[key] = s
	return s
}

// metricsFor is an explicit get-or-insert-default for health counters
func (g *RelationshipGraph) metricsFor(file string) *HealthMetrics {
	if m, ok := g.health[file]; ok {
		return m
	}
	m := &HealthMetrics{}
	g.health[file] = m
	return m
}

func (g *RelationshipGraph) appendRepairHistory(file string, result *LinkRepairResult) {
	g.repairHistory[file] = append(g.repairHistory[file], result)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
