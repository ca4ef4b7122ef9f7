package extract

import (
	"bufio"
	"context"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"notegraph/internal/graph"
	"notegraph/pkg/errors"
	"notegraph/pkg/logger"
)

// ============================================================================
// Link Extraction
// ============================================================================

// Inline markdown links: [title](target), title may be empty.
var inlineLinkRe = regexp.MustCompile(`\[([^\]]*)\]\(([^)\s]+)\)`)

// Wiki links: [[target]] or [[target|title]].
var wikiLinkRe = regexp.MustCompile(`\[\[([^\]|]+)(?:\|([^\]]+))?\]\]`)

// Extractor scans corpus documents for references and turns each one into a
// LinkContext record. It never mutates the graph itself; callers feed the
// returned records to RelationshipGraph.AddLink one by one, which keeps the
// engine single-threaded even though the file scan runs in parallel.
type Extractor struct {
	root    string
	workers int
	runID   string
	log     *zap.Logger
}

// New creates an extractor rooted at the corpus directory
func New(root string, workers int) *Extractor {
	if workers < 1 {
		workers = 1
	}
	runID := uuid.NewString()
	return &Extractor{
		root:    root,
		workers: workers,
		runID:   runID,
		log:     logger.Named("extract").With(zap.String("run_id", runID)),
	}
}

// RunID identifies this extraction run in logs
func (e *Extractor) RunID() string {
	return e.runID
}

// ExtractCorpus reads and scans the given corpus files concurrently. Results
// are merged and sorted by source file then line so the insertion order the
// graph sees is deterministic regardless of scheduling.
func (e *Extractor) ExtractCorpus(ctx context.Context, files []string) ([]*graph.LinkContext, error) {
	var mu sync.Mutex
	var links []*graph.LinkContext

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(e.workers)

	for _, file := range files {
		if !isMarkdown(file) {
			continue
		}
		file := file
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, err := os.ReadFile(filepath.Join(e.root, filepath.FromSlash(file)))
			if err != nil {
				return errors.NewFileUnreadable(file, err)
			}
			extracted := e.ExtractDocument(file, string(content))
			mu.Lock()
			links = append(links, extracted...)
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(links, func(i, j int) bool {
		if links[i].SourceFile != links[j].SourceFile {
			return links[i].SourceFile < links[j].SourceFile
		}
		return links[i].SourceLine < links[j].SourceLine
	})

	e.log.Info("corpus extraction finished",
		zap.Int("files", len(files)),
		zap.Int("links", len(links)))
	return links, nil
}

// ExtractDocument scans one markdown document and returns a record per
// reference found. sourceFile is the document's canonical corpus id.
func (e *Extractor) ExtractDocument(sourceFile, content string) []*graph.LinkContext {
	var links []*graph.LinkContext

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		for _, m := range inlineLinkRe.FindAllStringSubmatch(line, -1) {
			title, rawTarget := m[1], m[2]
			if link := e.newRecord(sourceFile, rawTarget, title, line, lineNo); link != nil {
				links = append(links, link)
			}
		}
		for _, m := range wikiLinkRe.FindAllStringSubmatch(line, -1) {
			rawTarget, title := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
			if title == "" {
				title = rawTarget
			}
			if link := e.newRecord(sourceFile, rawTarget, title, line, lineNo); link != nil {
				links = append(links, link)
			}
		}
	}

	return links
}

// newRecord resolves one raw reference into a LinkContext, or nil when the
// reference points outside the corpus
func (e *Extractor) newRecord(sourceFile, rawTarget, title, line string, lineNo int) *graph.LinkContext {
	target, section := splitFragment(rawTarget)
	if target == "" || isExternal(target) {
		return nil
	}

	resolved := resolveTarget(sourceFile, target)
	return &graph.LinkContext{
		SourceFile:    sourceFile,
		SourceLine:    lineNo,
		SourceContext: strings.TrimSpace(line),
		TargetFile:    resolved,
		TargetSection: section,
		TargetContext: rawTarget,
		LinkType:      classifyLinkType(sourceFile, resolved),
		Title:         title,
		CreatedAt:     time.Now(),
	}
}

// splitFragment separates a "#section" suffix from the target path
func splitFragment(target string) (string, string) {
	if i := strings.Index(target, "#"); i >= 0 {
		return target[:i], target[i+1:]
	}
	return target, ""
}

func isExternal(target string) bool {
	return strings.Contains(target, "://") || strings.HasPrefix(target, "mailto:")
}

// resolveTarget turns a raw reference into a canonical root-relative id.
// Absolute references are taken from the corpus root; relative ones resolve
// against the source document's directory.
func resolveTarget(sourceFile, target string) string {
	target = filepath.ToSlash(target)
	if strings.HasPrefix(target, "/") {
		return path.Clean(strings.TrimPrefix(target, "/"))
	}
	resolved := path.Join(path.Dir(sourceFile), target)
	return path.Clean(resolved)
}

func isMarkdown(file string) bool {
	switch strings.ToLower(path.Ext(file)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
