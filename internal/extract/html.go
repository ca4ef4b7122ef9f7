package extract

import (
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"notegraph/internal/graph"
	"notegraph/pkg/errors"
)

// ============================================================================
// Rendered HTML Extraction
// ============================================================================

// ExtractHTML scans a rendered HTML document for anchor references. Used for
// corpora whose finalized output is HTML rather than markdown; the anchor
// text becomes the link title.
func (e *Extractor) ExtractHTML(sourceFile string, r io.Reader) ([]*graph.LinkContext, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.NewMalformedDocument(sourceFile, err)
	}

	var links []*graph.LinkContext
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		rawTarget, _ := sel.Attr("href")
		target, section := splitFragment(rawTarget)
		if target == "" || isExternal(target) {
			return
		}

		resolved := resolveTarget(sourceFile, target)
		links = append(links, &graph.LinkContext{
			SourceFile:    sourceFile,
			TargetFile:    resolved,
			TargetSection: section,
			TargetContext: rawTarget,
			LinkType:      classifyLinkType(sourceFile, resolved),
			Title:         strings.TrimSpace(sel.Text()),
			CreatedAt:     time.Now(),
		})
	})
	return links, nil
}
