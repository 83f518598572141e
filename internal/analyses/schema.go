package analyses

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseLLMAnalysis validates raw LLM output against the ResumeAnalysis shape
// and normalizes it: scores clamped to [0,100], impacts normalized to the
// High/Medium/Low enum, and the relevance/missing-keywords pairing enforced.
func ParseLLMAnalysis(raw json.RawMessage) (ResumeAnalysis, error) {
	var parsed ResumeAnalysis
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return ResumeAnalysis{}, fmt.Errorf("llm output parse: %w", err)
	}
	if len(parsed.SectionFeedback) == 0 {
		return ResumeAnalysis{}, fmt.Errorf("llm output invalid: sectionFeedback is empty")
	}
	if len(parsed.Recommendations) == 0 {
		return ResumeAnalysis{}, fmt.Errorf("llm output invalid: recommendations is empty")
	}

	parsed.OverallScore = clampScore(parsed.OverallScore)
	parsed.SectionScores.Structure = clampScore(parsed.SectionScores.Structure)
	parsed.SectionScores.Content = clampScore(parsed.SectionScores.Content)
	parsed.SectionScores.Keywords = clampScore(parsed.SectionScores.Keywords)
	parsed.SectionScores.Formatting = clampScore(parsed.SectionScores.Formatting)
	for i := range parsed.SectionFeedback {
		parsed.SectionFeedback[i].Score = clampScore(parsed.SectionFeedback[i].Score)
	}
	for i := range parsed.Recommendations {
		parsed.Recommendations[i].Impact = normalizeImpact(parsed.Recommendations[i].Impact)
	}

	if parsed.JobRelevanceScore != nil {
		parsed.JobRelevanceScore = intPtr(clampScore(*parsed.JobRelevanceScore))
		if parsed.MissingKeywords == nil {
			parsed.MissingKeywords = []string{}
		}
	} else {
		parsed.MissingKeywords = nil
	}

	// The AI path never reports itself as fallback, whatever the model says.
	parsed.UsingFallback = false
	parsed.FallbackReason = ""

	return parsed, nil
}

func normalizeImpact(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high":
		return ImpactHigh
	case "low":
		return ImpactLow
	default:
		return ImpactMedium
	}
}
