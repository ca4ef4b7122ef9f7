package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notegraph/internal/graph"
)

func TestBuildMenu(t *testing.T) {
	g := graph.NewRelationshipGraph()
	g.AddLink(graph.NewLink("a.md", "b.md"))
	g.AddLink(graph.NewLink("b.md", "a.md")) // related (mutual)
	g.AddLink(graph.NewLink("a.md", "c.md")) // next
	g.AddLink(graph.NewLink("d.md", "a.md")) // prev
	g.AddLink(graph.NewLink("c.md", "e.md")) // see also, two hops out

	menu := NewBuilder(g).BuildMenu("a.md")

	assert.Equal(t, []string{"d.md"}, menu.Prev)
	assert.Equal(t, []string{"c.md"}, menu.Next)
	assert.Equal(t, []string{"b.md"}, menu.Related)
	assert.Contains(t, menu.SeeAlso, "e.md")
	assert.NotContains(t, menu.SeeAlso, "a.md")
}

func TestMenuRender(t *testing.T) {
	menu := &Menu{
		File: "a.md",
		Prev: []string{"d.md"},
		Next: []string{"b.md", "c.md"},
	}

	out := menu.Render()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "**Navigation**")
	assert.Contains(t, out, "- Prev: [d.md](d.md)")
	assert.Contains(t, out, "- Next: [b.md](b.md) | [c.md](c.md)")
	assert.NotContains(t, out, "Related")
}

func TestMenuRender_Empty(t *testing.T) {
	menu := &Menu{File: "lonely.md"}
	assert.Empty(t, menu.Render())
}

func TestBuildMenu_SuggestionCap(t *testing.T) {
	g := graph.NewRelationshipGraph()
	g.AddLink(graph.NewLink("a.md", "hub.md"))
	for _, leaf := range []string{"1.md", "2.md", "3.md", "4.md", "5.md", "6.md", "7.md"} {
		g.AddLink(graph.NewLink("hub.md", leaf))
	}

	menu := NewBuilder(g).BuildMenu("a.md")
	assert.Len(t, menu.SeeAlso, maxSuggestions)
}
