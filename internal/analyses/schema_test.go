package analyses

import (
	"encoding/json"
	"strings"
	"testing"
)

const validLLMOutput = `{
	"overallScore": 82,
	"sectionScores": {"structure": 85, "content": 80, "keywords": 78, "formatting": 88},
	"sectionFeedback": [
		{"section": "Structure", "score": 85, "feedback": "Well organized.", "suggestions": ["Keep it up"]}
	],
	"recommendations": [
		{"title": "Quantify Achievements", "description": "Add numbers.", "impact": "High"}
	]
}`

func TestParseLLMAnalysisValid(t *testing.T) {
	analysis, err := ParseLLMAnalysis(json.RawMessage(validLLMOutput))
	if err != nil {
		t.Fatalf("parse valid output: %v", err)
	}
	if analysis.OverallScore != 82 {
		t.Fatalf("expected overall 82, got %d", analysis.OverallScore)
	}
	if analysis.UsingFallback || analysis.FallbackReason != "" {
		t.Fatalf("AI output must never carry fallback markers: %+v", analysis)
	}
	if analysis.JobRelevanceScore != nil || analysis.MissingKeywords != nil {
		t.Fatalf("relevance fields should stay absent when not provided")
	}
}

func TestParseLLMAnalysisClampsScores(t *testing.T) {
	raw := strings.Replace(validLLMOutput, `"overallScore": 82`, `"overallScore": 150`, 1)
	raw = strings.Replace(raw, `"structure": 85`, `"structure": -20`, 1)

	analysis, err := ParseLLMAnalysis(json.RawMessage(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if analysis.OverallScore != 100 {
		t.Fatalf("expected overall clamped to 100, got %d", analysis.OverallScore)
	}
	if analysis.SectionScores.Structure != 0 {
		t.Fatalf("expected structure clamped to 0, got %d", analysis.SectionScores.Structure)
	}
}

func TestParseLLMAnalysisNormalizesImpact(t *testing.T) {
	cases := map[string]string{
		"HIGH":     ImpactHigh,
		" low ":    ImpactLow,
		"critical": ImpactMedium,
		"":         ImpactMedium,
	}
	for raw, want := range cases {
		payload := strings.Replace(validLLMOutput, `"impact": "High"`, `"impact": "`+raw+`"`, 1)
		analysis, err := ParseLLMAnalysis(json.RawMessage(payload))
		if err != nil {
			t.Fatalf("parse with impact %q: %v", raw, err)
		}
		if got := analysis.Recommendations[0].Impact; got != want {
			t.Fatalf("impact %q: expected %q, got %q", raw, want, got)
		}
	}
}

func TestParseLLMAnalysisRejectsEmptySections(t *testing.T) {
	raw := `{"overallScore": 50, "sectionScores": {}, "sectionFeedback": [], "recommendations": [{"title": "t", "description": "d", "impact": "High"}]}`
	if _, err := ParseLLMAnalysis(json.RawMessage(raw)); err == nil {
		t.Fatalf("expected error for empty sectionFeedback")
	}

	raw = `{"overallScore": 50, "sectionScores": {}, "sectionFeedback": [{"section": "Structure", "score": 50, "feedback": "f", "suggestions": []}], "recommendations": []}`
	if _, err := ParseLLMAnalysis(json.RawMessage(raw)); err == nil {
		t.Fatalf("expected error for empty recommendations")
	}
}

func TestParseLLMAnalysisRejectsMalformedJSON(t *testing.T) {
	if _, err := ParseLLMAnalysis(json.RawMessage(`not json at all`)); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
}

func TestParseLLMAnalysisRelevancePairing(t *testing.T) {
	raw := strings.Replace(validLLMOutput, `"overallScore": 82,`,
		`"overallScore": 82, "jobRelevanceScore": 130,`, 1)

	analysis, err := ParseLLMAnalysis(json.RawMessage(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if analysis.JobRelevanceScore == nil || *analysis.JobRelevanceScore != 100 {
		t.Fatalf("expected relevance clamped to 100, got %+v", analysis.JobRelevanceScore)
	}
	if analysis.MissingKeywords == nil {
		t.Fatalf("missing keywords must be non-nil alongside a relevance score")
	}

	// A stray missingKeywords array without a relevance score is dropped.
	raw = strings.Replace(validLLMOutput, `"overallScore": 82,`,
		`"overallScore": 82, "missingKeywords": ["Docker"],`, 1)
	analysis, err = ParseLLMAnalysis(json.RawMessage(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if analysis.MissingKeywords != nil {
		t.Fatalf("expected missing keywords dropped without a relevance score, got %v", analysis.MissingKeywords)
	}
}

func TestParseLLMAnalysisStripsFallbackClaims(t *testing.T) {
	raw := strings.Replace(validLLMOutput, `"overallScore": 82,`,
		`"overallScore": 82, "usingFallback": true, "fallbackReason": "ai_error",`, 1)
	analysis, err := ParseLLMAnalysis(json.RawMessage(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if analysis.UsingFallback || analysis.FallbackReason != "" {
		t.Fatalf("fallback claims from the model must be stripped: %+v", analysis)
	}
}
