package graph

import (
	"fmt"
	"sort"
	"strings"
)

// ============================================================================
// Link Index
// ============================================================================

// LinkIndex is a raw bidirectional adjacency index over individual link
// records. Every added record appears exactly once in its source's outgoing
// list and once in its target's incoming list, in insertion order. Records
// are never deduplicated here.
type LinkIndex struct {
	outgoing map[string][]*LinkContext
	incoming map[string][]*LinkContext
}

// NewLinkIndex creates an empty index
func NewLinkIndex() *LinkIndex {
	return &LinkIndex{
		outgoing: make(map[string][]*LinkContext),
		incoming: make(map[string][]*LinkContext),
	}
}

// AddLink appends the record to both adjacency lists
func (ix *LinkIndex) AddLink(link *LinkContext) {
	ix.outgoing[link.SourceFile] = append(ix.outgoing[link.SourceFile], link)
	ix.incoming[link.TargetFile] = append(ix.incoming[link.TargetFile], link)
}

// GetOutgoingLinks returns all links originating at the file, in insertion
// order. Unknown files yield an empty list.
func (ix *LinkIndex) GetOutgoingLinks(file string) []*LinkContext {
	return ix.outgoing[file]
}

// GetIncomingLinks returns all links targeting the file, in insertion order
func (ix *LinkIndex) GetIncomingLinks(file string) []*LinkContext {
	return ix.incoming[file]
}

// GetLinksByType returns every record of the given type, ordered by source
// file then insertion order
func (ix *LinkIndex) GetLinksByType(linkType LinkType) []*LinkContext {
	sources := make([]string, 0, len(ix.outgoing))
	for source := range ix.outgoing {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	var links []*LinkContext
	for _, source := range sources {
		for _, link := range ix.outgoing[source] {
			if link.LinkType == linkType {
				links = append(links, link)
			}
		}
	}
	return links
}

// Files returns every file known to the index, sorted
func (ix *LinkIndex) Files() []string {
	seen := ix.knownFiles()
	files := make([]string, 0, len(seen))
	for file := range seen {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}

// ValidateLinks checks the index for structural problems and returns them as
// descriptive strings, circular references first, then broken targets.
// Nothing is raised; acting on the findings is the caller's business.
// The exists predicate is the caller's materialized view of the corpus.
func (ix *LinkIndex) ValidateLinks(exists func(file string) bool) []string {
	errs := ix.detectCycles()

	// Broken-target pass over every file the index has seen.
	// Iteration order here is not part of the contract.
	for file := range ix.knownFiles() {
		if !exists(file) {
			errs = append(errs, fmt.Sprintf("Broken link: File does not exist: %s", file))
		}
	}
	return errs
}

// detectCycles runs a DFS from every unvisited source. A node re-encountered
// on the current path reports a cycle; the global visited set only prevents
// re-exploring components that some earlier DFS already covered, it must not
// suppress same-path revisits.
func (ix *LinkIndex) detectCycles() []string {
	var errs []string
	visited := make(map[string]bool)

	var walk func(node string, trail []string, onPath map[string]bool)
	walk = func(node string, trail []string, onPath map[string]bool) {
		if onPath[node] {
			start := 0
			for i, step := range trail {
				if step == node {
					start = i
					break
				}
			}
			cycle := append(append([]string{}, trail[start:]...), node)
			errs = append(errs, "Circular reference detected: "+strings.Join(cycle, " -> "))
			return
		}
		if visited[node] {
			return
		}
		visited[node] = true
		onPath[node] = true
		next := append(append([]string{}, trail...), node)
		for _, link := range ix.outgoing[node] {
			walk(link.TargetFile, next, onPath)
		}
		delete(onPath, node)
	}

	for source := range ix.outgoing {
		if !visited[source] {
			walk(source, nil, make(map[string]bool))
		}
	}
	return errs
}

func (ix *LinkIndex) knownFiles() map[string]struct{} {
	seen := make(map[string]struct{}, len(ix.outgoing)+len(ix.incoming))
	for file := range ix.outgoing {
		seen[file] = struct{}{}
	}
	for file := range ix.incoming {
		seen[file] = struct{}{}
	}
	return seen
}
