package analyses

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
)

// Display variation bounds. The overall score is redrawn inside [60,85] and
// each section jitters around it within its own floor/ceiling.
const (
	varyOverallLo = 60
	varyOverallHi = 85

	varyRelevanceLo = 30
	varyRelevanceHi = 85

	tierHigh   = 75
	tierMedium = 55
)

// Weights for the authoritative displayed overall score.
const (
	varyWeightStructure  = 0.25
	varyWeightContent    = 0.35
	varyWeightKeywords   = 0.25
	varyWeightFormatting = 0.15
)

type sectionVariation struct {
	name   string
	jitter int
	floor  int
	ceil   int
}

var sectionVariations = []sectionVariation{
	{SectionStructure, 10, 40, 95},
	{SectionContent, 8, 45, 90},
	{SectionKeywords, 12, 35, 85},
	{SectionFormatting, 7, 50, 95},
}

// Three-tier feedback templates per canonical section: high, medium, low.
var feedbackTiers = map[string][3]string{
	SectionStructure: {
		"Clear structure with well-ordered sections and complete contact details.",
		"The overall structure works, but section ordering and headers could be tightened.",
		"Structure needs work: sections are hard to locate and contact details are incomplete.",
	},
	SectionContent: {
		"Content is specific and results-oriented with strong supporting detail.",
		"Content covers the essentials but leans on duties rather than outcomes.",
		"Content is thin; roles need scope, technologies, and measurable results.",
	},
	SectionKeywords: {
		"Keyword coverage is strong and aligned with current industry terminology.",
		"A reasonable keyword base, though several in-demand skills are absent.",
		"Keyword coverage is weak; the skills section needs significant expansion.",
	},
	SectionFormatting: {
		"Formatting is consistent and should parse cleanly in applicant tracking systems.",
		"Formatting is mostly consistent with a few uneven bullets and date styles.",
		"Formatting inconsistencies will hurt both readability and ATS parsing.",
	},
}

var suggestionPool = map[string][]string{
	SectionStructure: {
		"Lead with contact details and a short summary",
		"Order sections by relevance to the target role",
		"Use conventional section headings",
	},
	SectionContent: {
		"Quantify at least half of your bullet points",
		"Open each bullet with a strong action verb",
		"Cut filler phrases and passive voice",
	},
	SectionKeywords: {
		"Mirror skill names from job postings you target",
		"Add cloud, CI/CD, and infrastructure tooling",
		"Group skills into labeled categories",
	},
	SectionFormatting: {
		"Normalize date formats across all roles",
		"Keep bullet indentation and markers uniform",
		"Stick to a single, readable font family",
	},
}

var recommendationPool = []Recommendation{
	{Title: "Quantify Your Achievements", Description: "Add specific metrics and numbers to demonstrate the impact of your work.", Impact: ImpactHigh},
	{Title: "Strengthen Action Verbs", Description: "Replace weak verbs like 'worked' and 'learned' with verbs that show ownership and initiative.", Impact: ImpactHigh},
	{Title: "Expand Technical Skills", Description: "Add more current technologies, frameworks, and tools to show you're up-to-date.", Impact: ImpactMedium},
	{Title: "Add a Projects Section", Description: "Highlight key projects with the technologies used and the outcomes achieved.", Impact: ImpactMedium},
	{Title: "Tailor to Each Application", Description: "Adjust the summary and skills emphasis for every role you apply to.", Impact: ImpactMedium},
	{Title: "Improve Formatting Consistency", Description: "Ensure consistent date formats, bullet points, and spacing throughout.", Impact: ImpactLow},
	{Title: "Add a Professional Summary", Description: "Open with two or three lines positioning your experience for the target role.", Impact: ImpactLow},
	{Title: "Optimize for ATS", Description: "Use standard headings and plain formatting so tracking systems parse the resume cleanly.", Impact: ImpactMedium},
}

var missingKeywordPool = []string{
	"Python", "AWS", "Docker", "Kubernetes", "Agile", "Scrum", "CI/CD", "REST APIs",
}

// VaryForDisplay expands a base analysis into display scores that look varied
// across different analyses but are byte-identical across repeated calls with
// the same input. The seed is derived from the serialized base, so any content
// difference reshuffles every derived value.
func VaryForDisplay(base ResumeAnalysis) ResumeAnalysis {
	r := rand.New(rand.NewSource(varySeed(base)))

	draw := varyOverallLo + r.Intn(varyOverallHi-varyOverallLo+1)

	scores := make([]int, len(sectionVariations))
	for i, sv := range sectionVariations {
		jitter := r.Intn(2*sv.jitter+1) - sv.jitter
		scores[i] = clampRange(draw+jitter, sv.floor, sv.ceil)
	}
	structure, content, keywords, formatting := scores[0], scores[1], scores[2], scores[3]

	overall := int(math.Round(
		varyWeightStructure*float64(structure) +
			varyWeightContent*float64(content) +
			varyWeightKeywords*float64(keywords) +
			varyWeightFormatting*float64(formatting)))
	overall = clampScore(overall)

	out := ResumeAnalysis{
		OverallScore: overall,
		SectionScores: SectionScores{
			Structure:  structure,
			Content:    content,
			Keywords:   keywords,
			Formatting: formatting,
		},
		SectionFeedback: make([]SectionFeedback, 0, len(sectionVariations)),
		UsingFallback:   base.UsingFallback,
		FallbackReason:  base.FallbackReason,
	}

	for i, sv := range sectionVariations {
		out.SectionFeedback = append(out.SectionFeedback, varySection(r, sv.name, scores[i]))
	}

	out.Recommendations = varyRecommendations(r, overall)

	if base.JobRelevanceScore != nil {
		out.JobRelevanceScore = intPtr(varyRelevanceLo + r.Intn(varyRelevanceHi-varyRelevanceLo+1))
		count := 2 + r.Intn(3)
		out.MissingKeywords = append([]string(nil), missingKeywordPool[:count]...)
	}

	return out
}

func varySeed(base ResumeAnalysis) int64 {
	serialized, err := json.Marshal(base)
	if err != nil {
		// Marshal of ResumeAnalysis cannot fail, but stay total.
		serialized = []byte(fmt.Sprintf("%+v", base))
	}
	return int64(contentHash(string(serialized)))
}

func varySection(r *rand.Rand, name string, score int) SectionFeedback {
	tiers := feedbackTiers[name]
	var feedback string
	var count int
	switch {
	case score >= tierHigh:
		feedback, count = tiers[0], 1
	case score >= tierMedium:
		feedback, count = tiers[1], 2
	default:
		feedback, count = tiers[2], 3
	}

	pool := append([]string(nil), suggestionPool[name]...)
	r.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if count > len(pool) {
		count = len(pool)
	}

	return SectionFeedback{
		Section:     name,
		Score:       score,
		Feedback:    feedback,
		Suggestions: pool[:count],
	}
}

func varyRecommendations(r *rand.Rand, overall int) []Recommendation {
	pool := append([]Recommendation(nil), recommendationPool...)
	r.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	count := 5
	switch {
	case overall >= tierHigh:
		count = 3
	case overall >= 60:
		count = 4
	}
	return pool[:count]
}
