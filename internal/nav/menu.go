package nav

import (
	"fmt"
	"strings"

	"notegraph/internal/graph"
)

// ============================================================================
// Navigation Menu Building
// ============================================================================

// maxSuggestions caps the "See also" block so dense hubs stay readable
const maxSuggestions = 5

// Menu is the navigation block injected into a finalized document
type Menu struct {
	File    string   `json:"file"`
	Prev    []string `json:"prev,omitempty"`     // documents linking here
	Next    []string `json:"next,omitempty"`     // documents linked from here
	Related []string `json:"related,omitempty"`  // mutually linked documents
	SeeAlso []string `json:"see_also,omitempty"` // two-hop suggestions
}

// Builder derives navigation menus from relationship graph queries
type Builder struct {
	graph *graph.RelationshipGraph
}

// NewBuilder creates a menu builder over the graph
func NewBuilder(g *graph.RelationshipGraph) *Builder {
	return &Builder{graph: g}
}

// BuildMenu assembles the navigation menu for one document: incoming-only
// neighbors become "prev", outgoing-only "next", bidirectional partners
// "related", and two-hop suggestions fill "see also".
func (b *Builder) BuildMenu(file string) *Menu {
	related := b.graph.GetRelatedFiles(file)

	seeAlso := b.graph.GetLinkSuggestions(file)
	if len(seeAlso) > maxSuggestions {
		seeAlso = seeAlso[:maxSuggestions]
	}

	return &Menu{
		File:    file,
		Prev:    related.Incoming,
		Next:    related.Outgoing,
		Related: related.Bidirectional,
		SeeAlso: seeAlso,
	}
}

// Render produces the markdown navigation block for injection into the
// document's finalized output. Empty menus render to an empty string.
func (m *Menu) Render() string {
	if len(m.Prev) == 0 && len(m.Next) == 0 && len(m.Related) == 0 && len(m.SeeAlso) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("---\n\n**Navigation**\n\n")
	writeRow(&sb, "Prev", m.Prev)
	writeRow(&sb, "Next", m.Next)
	writeRow(&sb, "Related", m.Related)
	writeRow(&sb, "See also", m.SeeAlso)
	return sb.String()
}

func writeRow(sb *strings.Builder, label string, files []string) {
	if len(files) == 0 {
		return
	}
	entries := make([]string, len(files))
	for i, file := range files {
		entries[i] = fmt.Sprintf("[%s](%s)", file, file)
	}
	fmt.Fprintf(sb, "- %s: %s\n", label, strings.Join(entries, " | "))
}
