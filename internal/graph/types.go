package graph

import "time"

// ============================================================================
// Link Types
// ============================================================================

// LinkType classifies a directed reference between two corpus documents
type LinkType string

const (
	LinkOutgoing            LinkType = "outgoing"
	LinkIncoming            LinkType = "incoming"
	LinkBidirectional       LinkType = "bidirectional"
	LinkSummaryToNotes      LinkType = "summary_to_notes"
	LinkNotesToSummary      LinkType = "notes_to_summary"
	LinkSummaryToAttachment LinkType = "summary_to_attachment"
	LinkNotesToAttachment   LinkType = "notes_to_attachment"
	LinkAttachmentToSummary LinkType = "attachment_to_summary"
	LinkAttachmentToNotes   LinkType = "attachment_to_notes"
)

// LinkContext describes one directed edge between two documents.
// Records are immutable once created; a repair produces a new record.
type LinkContext struct {
	SourceFile    string    `json:"source_file"`
	SourceSection string    `json:"source_section,omitempty"`
	SourceLine    int       `json:"source_line,omitempty"`
	SourceContext string    `json:"source_context,omitempty"`
	TargetFile    string    `json:"target_file"`
	TargetSection string    `json:"target_section,omitempty"`
	TargetLine    int       `json:"target_line,omitempty"`
	TargetContext string    `json:"target_context,omitempty"`
	LinkType      LinkType  `json:"link_type"`
	Title         string    `json:"title,omitempty"`
	Context       string    `json:"context,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewLink creates a link record with the default type
func NewLink(sourceFile, targetFile string) *LinkContext {
	return &LinkContext{
		SourceFile: sourceFile,
		TargetFile: targetFile,
		LinkType:   LinkOutgoing,
		CreatedAt:  time.Now(),
	}
}

// WithTarget returns a copy of the link pointing at a new target.
// Used by repair strategies; the original record is left untouched.
func (l *LinkContext) WithTarget(targetFile string) *LinkContext {
	clone := *l
	clone.TargetFile = targetFile
	clone.CreatedAt = time.Now()
	return &clone
}

// ============================================================================
// Navigation Types
// ============================================================================

// NavigationPathType distinguishes single-hop from multi-hop paths
type NavigationPathType string

const (
	PathDirect   NavigationPathType = "direct"   // exactly 2 nodes
	PathIndirect NavigationPathType = "indirect" // more than 2 nodes
)

// NavigationNode is one document along a navigation path
type NavigationNode struct {
	FilePath  string `json:"file_path"`
	SectionID string `json:"section_id,omitempty"`
	Title     string `json:"title,omitempty"`
	Context   string `json:"context,omitempty"`
}

// NavigationPath is an ordered document sequence from source to target
type NavigationPath struct {
	PathType      NavigationPathType `json:"path_type"`
	Nodes         []NavigationNode   `json:"nodes"`
	TotalLinks    int                `json:"total_links"`
	Bidirectional bool               `json:"bidirectional"`
	LastValidated time.Time          `json:"last_validated"`
}

// ============================================================================
// Repair Types
// ============================================================================

// RepairStrategy identifies one heuristic for fixing a broken link
type RepairStrategy string

const (
	StrategyFuzzyMatch      RepairStrategy = "fuzzy_match"
	StrategyNearestPath     RepairStrategy = "nearest_path"
	StrategyAlternativePath RepairStrategy = "alternative_path"
	StrategyRemoveLink      RepairStrategy = "remove_link"
)

// DefaultRepairStrategies is the fixed order strategies are tried in
var DefaultRepairStrategies = []RepairStrategy{
	StrategyFuzzyMatch,
	StrategyNearestPath,
	StrategyAlternativePath,
	StrategyRemoveLink,
}

// LinkRepairResult is the outcome of one repair attempt.
// RepairedLink is nil when the link should be dropped instead of rewritten.
type LinkRepairResult struct {
	ID           string         `json:"id"`
	OriginalLink *LinkContext   `json:"original_link"`
	RepairedLink *LinkContext   `json:"repaired_link,omitempty"`
	StrategyUsed RepairStrategy `json:"strategy_used,omitempty"`
	Success      bool           `json:"success"`
	Confidence   float64        `json:"confidence"`
	RepairNotes  string         `json:"repair_notes"`
}

// RepairSuggestion is one candidate replacement target with its score
type RepairSuggestion struct {
	TargetFile string  `json:"target_file"`
	Confidence float64 `json:"confidence"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthMetrics holds per-file link counters
type HealthMetrics struct {
	TotalLinks         int `json:"total_links"`
	ValidLinks         int `json:"valid_links"`
	BrokenLinks        int `json:"broken_links"`
	IncomingLinks      int `json:"incoming_links"`
	OutgoingLinks      int `json:"outgoing_links"`
	BidirectionalLinks int `json:"bidirectional_links"`
	RepairedLinks      int `json:"repaired_links"`
	RepairAttempts     int `json:"repair_attempts"`
}

// RelatedFiles partitions a file's neighbors by link direction
type RelatedFiles struct {
	Outgoing      []string `json:"outgoing"`
	Incoming      []string `json:"incoming"`
	Bidirectional []string `json:"bidirectional"`
}
