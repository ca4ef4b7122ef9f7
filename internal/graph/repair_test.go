package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairLink_FuzzyMatch(t *testing.T) {
	g := NewRelationshipGraph()
	link := NewLink("x.md", "missing-fil.md")
	available := []string{"x.md", "missing-file.md", "unrelated.md"}

	result := g.RepairLink(link, available)

	require.True(t, result.Success)
	assert.Equal(t, StrategyFuzzyMatch, result.StrategyUsed)
	require.NotNil(t, result.RepairedLink)
	assert.Equal(t, "missing-file.md", result.RepairedLink.TargetFile)
	assert.GreaterOrEqual(t, result.Confidence, 0.8)
	assert.LessOrEqual(t, result.Confidence, 1.0)
	assert.Contains(t, result.RepairNotes, "missing-file.md")

	// The original record is untouched.
	assert.Equal(t, "missing-fil.md", link.TargetFile)
}

func TestRepairLink_FuzzyWinsOverNearestPath(t *testing.T) {
	g := NewRelationshipGraph()
	link := NewLink("x.md", "docs/missing-fil.md")
	available := []string{
		"docs/missing-file.md",    // one-character edit, fuzzy territory
		"archive/missing-fil.md",  // exact basename elsewhere
	}

	result := g.RepairLink(link, available)

	require.True(t, result.Success)
	assert.Equal(t, StrategyFuzzyMatch, result.StrategyUsed)
	assert.Equal(t, "docs/missing-file.md", result.RepairedLink.TargetFile)
}

func TestRepairLink_NearestPath(t *testing.T) {
	g := NewRelationshipGraph()
	link := NewLink("x.md", "docs/guide.md")
	available := []string{"archive/docs/guide.md"}

	result := g.RepairLink(link, available, StrategyNearestPath)

	require.True(t, result.Success)
	assert.Equal(t, StrategyNearestPath, result.StrategyUsed)
	assert.Equal(t, "archive/docs/guide.md", result.RepairedLink.TargetFile)
	assert.GreaterOrEqual(t, result.Confidence, 0.5)
}

func TestRepairLink_NearestPath_NoSameName(t *testing.T) {
	g := NewRelationshipGraph()
	link := NewLink("x.md", "docs/guide.md")

	result := g.RepairLink(link, []string{"other.md"}, StrategyNearestPath)

	assert.False(t, result.Success)
	// Only the final all-failed note survives on the returned result.
	assert.Equal(t, "All repair strategies failed", result.RepairNotes)
}

func TestRepairLink_AlternativePath(t *testing.T) {
	g := buildGraph(t, [][2]string{
		{"a.md", "b.md"},
		{"b.md", "c.md"},
	})
	link := NewLink("a.md", "missing.md")

	result := g.RepairLink(link, []string{"c.md"})

	require.True(t, result.Success)
	assert.Equal(t, StrategyAlternativePath, result.StrategyUsed)
	assert.Equal(t, "c.md", result.RepairedLink.TargetFile)
	assert.InDelta(t, 0.5, result.Confidence, 1e-9)
	assert.Equal(t, "Alternative path found: a.md -> b.md -> c.md", result.RepairNotes)
}

func TestRepairLink_AlternativePath_DirectNeighbor(t *testing.T) {
	g := buildGraph(t, [][2]string{{"a.md", "b.md"}})
	link := NewLink("a.md", "zzzz.md")

	result := g.RepairLink(link, []string{"b.md"}, StrategyAlternativePath)

	require.True(t, result.Success)
	assert.InDelta(t, 1.0, result.Confidence, 1e-9)
	assert.Equal(t, "Alternative path found: a.md -> b.md", result.RepairNotes)
}

func TestRepairLink_RemoveLink(t *testing.T) {
	g := NewRelationshipGraph()
	link := NewLink("x.md", "missing.md")

	result := g.RepairLink(link, nil, StrategyRemoveLink)

	assert.True(t, result.Success)
	assert.InDelta(t, 1.0, result.Confidence, 1e-9)
	assert.Equal(t, StrategyRemoveLink, result.StrategyUsed)
	assert.Nil(t, result.RepairedLink)
}

func TestRepairLink_DefaultChainNeverFails(t *testing.T) {
	// Remove is the last default strategy and always succeeds.
	g := NewRelationshipGraph()
	link := NewLink("x.md", "missing.md")

	result := g.RepairLink(link, nil)

	assert.True(t, result.Success)
	assert.Equal(t, StrategyRemoveLink, result.StrategyUsed)
}

func TestRepairLink_AllStrategiesFail(t *testing.T) {
	g := NewRelationshipGraph()
	link := NewLink("x.md", "missing.md")

	result := g.RepairLink(link, []string{"zzz.md"}, StrategyFuzzyMatch)

	assert.False(t, result.Success)
	assert.Zero(t, result.Confidence)
	assert.Equal(t, "All repair strategies failed", result.RepairNotes)

	history := g.GetRepairHistory("x.md")
	require.Len(t, history, 1)
	assert.Same(t, result, history[0])
}

func TestRepairLink_MetricsAndHistory(t *testing.T) {
	g := NewRelationshipGraph()
	link := NewLink("x.md", "missing-fil.md")
	available := []string{"missing-file.md"}

	g.RepairLink(link, available)
	g.RepairLink(link, nil, StrategyFuzzyMatch) // fails, no close matches

	health := g.GetHealthReport("x.md")
	assert.Equal(t, 2, health.RepairAttempts)
	assert.Equal(t, 1, health.RepairedLinks)

	history := g.GetRepairHistory("x.md")
	require.Len(t, history, 2)
	assert.True(t, history[0].Success)
	assert.False(t, history[1].Success)
	assert.NotEmpty(t, history[0].ID)
	assert.NotEqual(t, history[0].ID, history[1].ID)
}

func TestGetRepairSuggestions(t *testing.T) {
	g := buildGraph(t, [][2]string{{"x.md", "hub.md"}})
	link := NewLink("x.md", "docs/missing-fil.md")
	available := []string{"docs/missing-file.md", "other/missing-fil.md", "hub.md"}

	suggestions := g.GetRepairSuggestions(link, available)
	require.NotEmpty(t, suggestions)

	// Sorted by confidence, best first.
	for i := 1; i < len(suggestions); i++ {
		assert.GreaterOrEqual(t, suggestions[i-1].Confidence, suggestions[i].Confidence)
	}

	targets := make([]string, len(suggestions))
	for i, s := range suggestions {
		targets[i] = s.TargetFile
	}
	assert.Contains(t, strings.Join(targets, ","), "docs/missing-file.md")
}

func TestGetRepairSuggestions_DoesNotMutate(t *testing.T) {
	g := NewRelationshipGraph()
	link := NewLink("x.md", "missing-fil.md")

	g.GetRepairSuggestions(link, []string{"missing-file.md"})

	assert.Equal(t, HealthMetrics{}, g.GetHealthReport("x.md"))
	assert.Empty(t, g.GetRepairHistory("x.md"))
}
