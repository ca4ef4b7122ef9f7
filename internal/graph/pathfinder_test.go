package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T, edges [][2]string) *RelationshipGraph {
	t.Helper()
	g := NewRelationshipGraph()
	for _, edge := range edges {
		g.AddLink(NewLink(edge[0], edge[1]))
	}
	return g
}

func pathFiles(p NavigationPath) []string {
	files := make([]string, len(p.Nodes))
	for i, node := range p.Nodes {
		files[i] = node.FilePath
	}
	return files
}

func TestPathFinder_DirectPath(t *testing.T) {
	g := buildGraph(t, [][2]string{{"a.md", "b.md"}})

	paths := g.FindNavigationPaths("a.md", "b.md", DefaultMaxDepth)
	require.Len(t, paths, 1)

	path := paths[0]
	assert.Equal(t, PathDirect, path.PathType)
	assert.Equal(t, []string{"a.md", "b.md"}, pathFiles(path))
	assert.Equal(t, 1, path.TotalLinks)
	assert.True(t, path.Bidirectional)
	assert.False(t, path.LastValidated.IsZero())
}

func TestPathFinder_IndirectPath(t *testing.T) {
	g := buildGraph(t, [][2]string{
		{"a.md", "b.md"},
		{"b.md", "c.md"},
	})

	paths := g.FindNavigationPaths("a.md", "c.md", DefaultMaxDepth)
	require.Len(t, paths, 1)
	assert.Equal(t, PathIndirect, paths[0].PathType)
	assert.Equal(t, []string{"a.md", "b.md", "c.md"}, pathFiles(paths[0]))
	assert.Equal(t, 2, paths[0].TotalLinks)
}

func TestPathFinder_SiblingBranchesMayShareNodes(t *testing.T) {
	// Diamond: both branches run through d.md. A closed sibling branch
	// must not block the other branch from visiting d.md again.
	g := buildGraph(t, [][2]string{
		{"a.md", "b.md"},
		{"a.md", "c.md"},
		{"b.md", "d.md"},
		{"c.md", "d.md"},
	})

	paths := g.FindNavigationPaths("a.md", "d.md", DefaultMaxDepth)
	require.Len(t, paths, 2)

	found := map[string]bool{}
	for _, p := range paths {
		if len(p.Nodes) == 3 {
			found[p.Nodes[1].FilePath] = true
		}
	}
	assert.True(t, found["b.md"])
	assert.True(t, found["c.md"])
}

func TestPathFinder_DepthBound(t *testing.T) {
	g := buildGraph(t, [][2]string{
		{"a.md", "b.md"},
		{"b.md", "c.md"},
		{"c.md", "d.md"},
		{"d.md", "e.md"},
	})

	// Four edges needed, three allowed.
	assert.Empty(t, g.FindNavigationPaths("a.md", "e.md", 3))
	assert.Len(t, g.FindNavigationPaths("a.md", "e.md", 4), 1)
}

func TestPathFinder_CycleDoesNotLoop(t *testing.T) {
	g := buildGraph(t, [][2]string{
		{"a.md", "b.md"},
		{"b.md", "a.md"},
		{"b.md", "c.md"},
	})

	paths := g.FindNavigationPaths("a.md", "c.md", DefaultMaxDepth)
	require.Len(t, paths, 1)
	assert.Equal(t, []string{"a.md", "b.md", "c.md"}, pathFiles(paths[0]))
}

func TestPathFinder_NoPath(t *testing.T) {
	g := buildGraph(t, [][2]string{{"a.md", "b.md"}})
	assert.Empty(t, g.FindNavigationPaths("b.md", "a.md", DefaultMaxDepth))
}

func TestPathFinder_GetUsesCache(t *testing.T) {
	g := buildGraph(t, [][2]string{{"a.md", "b.md"}})

	computed := g.FindNavigationPaths("a.md", "b.md", DefaultMaxDepth)
	cached := g.GetNavigationPaths("a.md", "b.md", DefaultMaxDepth)

	require.Len(t, cached, 1)
	// A recomputation would stamp a fresh LastValidated; the cached entry
	// comes back untouched.
	assert.Equal(t, computed[0].LastValidated, cached[0].LastValidated)
	assert.Equal(t, computed, cached)
}

func TestPathFinder_CacheIgnoresDepth(t *testing.T) {
	g := buildGraph(t, [][2]string{
		{"a.md", "b.md"},
		{"b.md", "c.md"},
	})

	shallow := g.GetNavigationPaths("a.md", "c.md", 1)
	assert.Empty(t, shallow)

	// The cached empty result wins even though a deeper search would
	// find a path; snapshot semantics by design.
	deeper := g.GetNavigationPaths("a.md", "c.md", DefaultMaxDepth)
	assert.Empty(t, deeper)

	// An explicit recomputation refreshes the entry.
	assert.Len(t, g.FindNavigationPaths("a.md", "c.md", DefaultMaxDepth), 1)
	assert.Len(t, g.GetNavigationPaths("a.md", "c.md", 1), 1)
}

func TestPathFinder_CacheIsSnapshot(t *testing.T) {
	g := buildGraph(t, [][2]string{{"a.md", "b.md"}})

	assert.Empty(t, g.GetNavigationPaths("a.md", "c.md", DefaultMaxDepth))

	// New edges do not invalidate the cached answer.
	g.AddLink(NewLink("b.md", "c.md"))
	assert.Empty(t, g.GetNavigationPaths("a.md", "c.md", DefaultMaxDepth))
	assert.Len(t, g.FindNavigationPaths("a.md", "c.md", DefaultMaxDepth), 1)
}
