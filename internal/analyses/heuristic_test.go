package analyses

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

const sampleResume = `Jane Doe
jane.doe@example.com | 555-123-4567 | linkedin.com/in/janedoe

Professional Summary
Backend engineer with 5 years of experience building data platforms.

Work Experience
Senior Engineer, Acme Corp
- Designed Python services on AWS backed by SQL databases
- Improved pipeline throughput by 40% across three product teams
- Built streaming ingestion for clickstream events feeding the warehouse
- Partnered with analysts to define service levels for reporting
- Mentored junior engineers and ran the on-call rotation

Education
B.S. Computer Science, State University
`

func TestHeuristicAnalyzeSampleResume(t *testing.T) {
	if len(sampleResume) <= longTextThreshold {
		t.Fatalf("sample resume must exceed %d chars, has %d", longTextThreshold, len(sampleResume))
	}

	analysis := HeuristicAnalyze(sampleResume, "")

	// Email, phone, and LinkedIn are all present.
	if analysis.SectionScores.Structure != 100 {
		t.Fatalf("structure: expected 100, got %d", analysis.SectionScores.Structure)
	}
	// Python, AWS, SQL: three recognized skills.
	if analysis.SectionScores.Keywords != 70 {
		t.Fatalf("keywords: expected 70, got %d", analysis.SectionScores.Keywords)
	}
	if analysis.SectionScores.Formatting != 85 {
		t.Fatalf("formatting: expected 85, got %d", analysis.SectionScores.Formatting)
	}
	if c := analysis.SectionScores.Content; c < 30 || c > 100 {
		t.Fatalf("content out of range: %d", c)
	}

	weighted := weightStructure*float64(analysis.SectionScores.Structure) +
		weightContent*float64(analysis.SectionScores.Content) +
		weightKeywords*float64(analysis.SectionScores.Keywords) +
		weightFormatting*float64(analysis.SectionScores.Formatting)
	want := clampScore(int(math.Round(weighted)) + achievementBonus)
	if analysis.OverallScore != want {
		t.Fatalf("overall: expected %d, got %d", want, analysis.OverallScore)
	}

	if analysis.JobRelevanceScore != nil || analysis.MissingKeywords != nil {
		t.Fatalf("relevance fields must be absent without a job description")
	}
	if analysis.UsingFallback || analysis.FallbackReason != "" {
		t.Fatalf("heuristic output must not tag itself as fallback")
	}
}

func TestHeuristicAnalyzeEmptyInput(t *testing.T) {
	analysis := HeuristicAnalyze("", "")

	want := SectionScores{Structure: 0, Content: 30, Keywords: 40, Formatting: 75}
	if analysis.SectionScores != want {
		t.Fatalf("section scores: expected %+v, got %+v", want, analysis.SectionScores)
	}
	if analysis.OverallScore != 34 {
		t.Fatalf("overall: expected 34, got %d", analysis.OverallScore)
	}
	if len(analysis.SectionFeedback) != 4 {
		t.Fatalf("expected 4 feedback sections, got %d", len(analysis.SectionFeedback))
	}
	if len(analysis.Recommendations) == 0 {
		t.Fatalf("expected recommendations even for empty input")
	}
}

func TestHeuristicAnalyzeCanonicalSectionOrder(t *testing.T) {
	wantOrder := []string{SectionStructure, SectionContent, SectionKeywords, SectionFormatting}
	for _, text := range []string{"", sampleResume, "just a few words"} {
		analysis := HeuristicAnalyze(text, "")
		if len(analysis.SectionFeedback) != len(wantOrder) {
			t.Fatalf("expected %d sections, got %d", len(wantOrder), len(analysis.SectionFeedback))
		}
		for i, fb := range analysis.SectionFeedback {
			if fb.Section != wantOrder[i] {
				t.Fatalf("section %d: expected %q, got %q", i, wantOrder[i], fb.Section)
			}
			if fb.Score < 0 || fb.Score > 100 {
				t.Fatalf("section %q score out of range: %d", fb.Section, fb.Score)
			}
			if fb.Feedback == "" || len(fb.Suggestions) == 0 {
				t.Fatalf("section %q missing feedback or suggestions", fb.Section)
			}
		}
	}
}

func TestHeuristicAnalyzeDeterministic(t *testing.T) {
	first := HeuristicAnalyze(sampleResume, "Python and AWS role")
	second := HeuristicAnalyze(sampleResume, "Python and AWS role")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated analysis differed:\n%+v\n%+v", first, second)
	}
}

func TestHeuristicAnalyzeRecommendationsForSparseResume(t *testing.T) {
	analysis := HeuristicAnalyze("short resume with no contact info", "")

	titles := make([]string, 0, len(analysis.Recommendations))
	for _, rec := range analysis.Recommendations {
		titles = append(titles, rec.Title)
	}
	if titles[0] != "Quantify Your Achievements" {
		t.Fatalf("expected achievements recommendation first, got %q", titles[0])
	}
	if titles[len(titles)-1] != "Optimize for ATS" {
		t.Fatalf("expected ATS recommendation last, got %q", titles[len(titles)-1])
	}
	for _, rec := range analysis.Recommendations {
		switch rec.Impact {
		case ImpactHigh, ImpactMedium, ImpactLow:
		default:
			t.Fatalf("recommendation %q has invalid impact %q", rec.Title, rec.Impact)
		}
	}
}

func TestRelevanceScore(t *testing.T) {
	if got := relevanceScore("go python sql", "python sql"); got != 100 {
		t.Fatalf("full overlap: expected 100, got %d", got)
	}
	if got := relevanceScore("go", "rust kubernetes"); got != 0 {
		t.Fatalf("no overlap: expected 0, got %d", got)
	}
	if got := relevanceScore("anything", ""); got != 0 {
		t.Fatalf("empty job description: expected 0, got %d", got)
	}
}

func TestHeuristicAnalyzeRelevancePairing(t *testing.T) {
	analysis := HeuristicAnalyze(sampleResume, "Looking for Docker and Kubernetes experience with Agile delivery")
	if analysis.JobRelevanceScore == nil {
		t.Fatalf("expected a relevance score with a job description")
	}
	if *analysis.JobRelevanceScore < 0 || *analysis.JobRelevanceScore > 100 {
		t.Fatalf("relevance out of range: %d", *analysis.JobRelevanceScore)
	}
	if analysis.MissingKeywords == nil {
		t.Fatalf("missing keywords must accompany the relevance score")
	}
}

func TestMissingFromResume(t *testing.T) {
	job := "We need Docker, Kubernetes, Agile, and Python on day one"
	resume := "I know Python well"
	missing := missingFromResume(resume, job)

	want := []string{"Docker", "Kubernetes", "Agile"}
	if !reflect.DeepEqual(missing, want) {
		t.Fatalf("expected %v, got %v", want, missing)
	}

	// The cap holds even when everything is missing.
	allOfThem := strings.Join(importantKeywords, " ")
	missing = missingFromResume("", allOfThem)
	if len(missing) > maxMissingKeywords {
		t.Fatalf("expected at most %d keywords, got %d", maxMissingKeywords, len(missing))
	}
}
