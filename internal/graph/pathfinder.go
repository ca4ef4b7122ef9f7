package graph

import "time"

// ============================================================================
// Path Finder
// ============================================================================

// DefaultMaxDepth bounds the navigation search. The DFS is cheap on typical
// note corpora but can fan out badly on dense ones, so callers should keep
// the depth small rather than expect an internal deadline.
const DefaultMaxDepth = 3

// PathFinder enumerates navigation paths over the graph's file-level
// adjacency using a bounded depth-first search with memoized results.
type PathFinder struct {
	graph *RelationshipGraph
}

func newPathFinder(g *RelationshipGraph) *PathFinder {
	return &PathFinder{graph: g}
}

// FindNavigationPaths enumerates every path from source to target within
// maxDepth edges and unconditionally overwrites the cache entry for the
// (source, target) pair with the result.
func (f *PathFinder) FindNavigationPaths(source, target string, maxDepth int) []NavigationPath {
	paths := []NavigationPath{}
	visited := make(map[string]struct{})
	f.walk(source, target, visited, []string{source}, 0, maxDepth, &paths)
	f.graph.navigationPaths[pathKey{source, target}] = paths
	return paths
}

// GetNavigationPaths returns the cached entry for the pair when present,
// regardless of the depth the cache entry was computed with; otherwise it
// computes and caches via FindNavigationPaths.
func (f *PathFinder) GetNavigationPaths(source, target string, maxDepth int) []NavigationPath {
	if cached, ok := f.graph.navigationPaths[pathKey{source, target}]; ok {
		return cached
	}
	return f.FindNavigationPaths(source, target, maxDepth)
}

// walk explores outgoing edges depth-first. The visited set is shared across
// sibling branches of the same call: a node is marked before its neighbors
// are explored and unmarked only after its exploration returns. Two sibling
// subtrees without a still-open ancestor may therefore both visit the same
// node, but no single open branch revisits one.
func (f *PathFinder) walk(current, target string, visited map[string]struct{}, trail []string, depth, maxDepth int, out *[]NavigationPath) {
	if depth > maxDepth {
		return
	}
	if current == target {
		*out = append(*out, f.buildPath(trail))
		return
	}

	visited[current] = struct{}{}
	for neighbor := range f.graph.direct[current] {
		if _, seen := visited[neighbor]; seen {
			continue
		}
		next := append(append([]string{}, trail...), neighbor)
		f.walk(neighbor, target, visited, next, depth+1, maxDepth, out)
	}
	delete(visited, current)
}

// buildPath materializes a NavigationPath from the node trail. The
// bidirectional flag checks every consecutive pair against the forward
// adjacency; any path the search can produce satisfies this by
// construction, and that behavior is kept as-is.
func (f *PathFinder) buildPath(trail []string) NavigationPath {
	nodes := make([]NavigationNode, len(trail))
	for i, file := range trail {
		nodes[i] = NavigationNode{FilePath: file}
	}

	pathType := PathIndirect
	if len(nodes) == 2 {
		pathType = PathDirect
	}

	bidirectional := true
	for i := 0; i+1 < len(trail); i++ {
		if _, ok := f.graph.direct[trail[i]][trail[i+1]]; !ok {
			bidirectional = false
			break
		}
	}

	return NavigationPath{
		PathType:      pathType,
		Nodes:         nodes,
		TotalLinks:    len(nodes) - 1,
		Bidirectional: bidirectional,
		LastValidated: time.Now(),
	}
}
