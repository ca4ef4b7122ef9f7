package extract

import (
	"path"
	"strings"

	"notegraph/internal/graph"
)

// ============================================================================
// Link Type Classification
// ============================================================================

// docKind is the corpus role a document plays, derived from its path
type docKind int

const (
	kindNote docKind = iota
	kindSummary
	kindAttachment
)

// classifyDoc infers the document role from corpus conventions: summaries
// live under a summaries/ directory or carry a _summary suffix, anything
// that is not markdown is an attachment, everything else is a note.
func classifyDoc(file string) docKind {
	if !isMarkdown(file) {
		return kindAttachment
	}
	base := strings.TrimSuffix(path.Base(file), path.Ext(file))
	if strings.HasSuffix(base, "_summary") {
		return kindSummary
	}
	for _, segment := range strings.Split(path.Dir(file), "/") {
		if segment == "summaries" {
			return kindSummary
		}
	}
	return kindNote
}

// classifyLinkType maps a (source, target) role pair onto the link type
// recorded on the extracted edge
func classifyLinkType(sourceFile, targetFile string) graph.LinkType {
	source := classifyDoc(sourceFile)
	target := classifyDoc(targetFile)

	switch {
	case source == kindSummary && target == kindNote:
		return graph.LinkSummaryToNotes
	case source == kindNote && target == kindSummary:
		return graph.LinkNotesToSummary
	case source == kindSummary && target == kindAttachment:
		return graph.LinkSummaryToAttachment
	case source == kindNote && target == kindAttachment:
		return graph.LinkNotesToAttachment
	case source == kindAttachment && target == kindSummary:
		return graph.LinkAttachmentToSummary
	case source == kindAttachment && target == kindNote:
		return graph.LinkAttachmentToNotes
	}
	return graph.LinkOutgoing
}
