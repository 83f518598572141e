package analyses

// Canonical section names, in display order.
const (
	SectionStructure  = "Structure"
	SectionContent    = "Content"
	SectionKeywords   = "Keywords/Skills"
	SectionFormatting = "Formatting"
)

// Impact levels for recommendations.
const (
	ImpactHigh   = "High"
	ImpactMedium = "Medium"
	ImpactLow    = "Low"
)

// Fallback reasons recorded when the heuristic engine produced the result.
const (
	FallbackQuotaExceeded = "quota_exceeded"
	FallbackAIError       = "ai_error"
	FallbackNoAPIKey      = "no_api_key"
)

// SectionScores holds the four component scores, each in [0,100].
type SectionScores struct {
	Structure  int `json:"structure"`
	Content    int `json:"content"`
	Keywords   int `json:"keywords"`
	Formatting int `json:"formatting"`
}

// SectionFeedback is per-section feedback with canned suggestions.
type SectionFeedback struct {
	Section     string   `json:"section"`
	Score       int      `json:"score"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions"`
}

// Recommendation is a single improvement recommendation. Order is assigned by
// the producer and preserved downstream.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// ResumeAnalysis is the central analysis result.
//
// JobRelevanceScore and MissingKeywords are present together or not at all:
// producers set MissingKeywords to a non-nil slice whenever JobRelevanceScore
// is set, and the omitzero tag keeps an empty-but-present list on the wire as
// []. FallbackReason is set only when UsingFallback is true.
type ResumeAnalysis struct {
	OverallScore      int               `json:"overallScore"`
	SectionScores     SectionScores     `json:"sectionScores"`
	SectionFeedback   []SectionFeedback `json:"sectionFeedback"`
	Recommendations   []Recommendation  `json:"recommendations"`
	JobRelevanceScore *int              `json:"jobRelevanceScore,omitempty"`
	MissingKeywords   []string          `json:"missingKeywords,omitzero"`
	UsingFallback     bool              `json:"usingFallback,omitempty"`
	FallbackReason    string            `json:"fallbackReason,omitempty"`
}

// Result is the orchestrator's answer for one analyze request.
type Result struct {
	Analysis  ResumeAnalysis `json:"analysis"`
	FromCache bool           `json:"fromCache,omitempty"`
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func intPtr(v int) *int { return &v }
