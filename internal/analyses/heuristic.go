package analyses

import (
	"math"
	"regexp"
	"strings"
)

// Scoring constants. The bounds are contractual; the individual weights were
// tuned so that richer resumes score monotonically higher.
const (
	emailPoints    = 40
	phonePoints    = 30
	linkedinPoints = 30

	keywordsBase     = 40
	keywordsPerSkill = 10

	contentFloor      = 30
	contentCharsPerPt = 25
	contentPerYearHit = 10

	formattingBase      = 75
	formattingLongBonus = 10
	longTextThreshold   = 500
	shortTextThreshold  = 800

	achievementBonus = 5

	weightStructure  = 0.25
	weightContent    = 0.30
	weightKeywords   = 0.25
	weightFormatting = 0.20

	fewSkillsThreshold = 4
	maxMissingKeywords = 8
)

var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe    = regexp.MustCompile(`(\+?\d{1,2}[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
	yearsRe    = regexp.MustCompile(`(?i)\d+\+?\s*years?\s+(of\s+)?experience`)
	metricRe   = regexp.MustCompile(`(?i)\d+(\.\d+)?\s*%|\$\s?\d|increas|improv|reduc|sav(e|ed|ing)|optimiz`)
	summaryRe  = regexp.MustCompile(`(?im)^\s*(professional\s+summary|summary|objective)\b`)
	experRe    = regexp.MustCompile(`(?im)^\s*(work\s+experience|experience|employment\s+history)\b`)
	wordTokRe  = regexp.MustCompile(`[a-z]+`)
	skillTerms = []string{
		"JavaScript", "Python", "Java", "React", "Node.js",
		"HTML", "CSS", "SQL", "AWS", "Docker", "Kubernetes",
	}
	importantKeywords = []string{
		"Python", "AWS", "Docker", "Kubernetes", "Agile", "Scrum",
		"CI/CD", "REST APIs", "Database Design", "Team Leadership",
	}
)

type resumeFeatures struct {
	hasEmail        bool
	hasPhone        bool
	hasLinkedIn     bool
	skillCount      int
	yearsMentions   int
	hasAchievements bool
	hasSummary      bool
	hasExperience   bool
	length          int
}

func extractFeatures(resumeText string) resumeFeatures {
	lower := strings.ToLower(resumeText)
	skills := 0
	for _, term := range skillTerms {
		if strings.Contains(lower, strings.ToLower(term)) {
			skills++
		}
	}
	return resumeFeatures{
		hasEmail:        emailRe.MatchString(resumeText),
		hasPhone:        phoneRe.MatchString(resumeText),
		hasLinkedIn:     strings.Contains(lower, "linkedin.com"),
		skillCount:      skills,
		yearsMentions:   len(yearsRe.FindAllString(resumeText, -1)),
		hasAchievements: metricRe.MatchString(resumeText),
		hasSummary:      summaryRe.MatchString(resumeText),
		hasExperience:   experRe.MatchString(resumeText),
		length:          len(resumeText),
	}
}

// HeuristicAnalyze scores a resume without calling the LLM. It is a pure
// function of its inputs and is total over any string, including empty ones.
func HeuristicAnalyze(resumeText, jobDescription string) ResumeAnalysis {
	f := extractFeatures(resumeText)

	structure := 0
	if f.hasEmail {
		structure += emailPoints
	}
	if f.hasPhone {
		structure += phonePoints
	}
	if f.hasLinkedIn {
		structure += linkedinPoints
	}
	structure = clampScore(structure)

	content := clampRange(f.length/contentCharsPerPt+f.yearsMentions*contentPerYearHit, contentFloor, 100)
	keywords := clampScore(f.skillCount*keywordsPerSkill + keywordsBase)
	formatting := formattingBase
	if f.length > longTextThreshold {
		formatting += formattingLongBonus
	}
	formatting = clampScore(formatting)

	weighted := weightStructure*float64(structure) +
		weightContent*float64(content) +
		weightKeywords*float64(keywords) +
		weightFormatting*float64(formatting)
	overall := int(math.Round(weighted))
	if f.hasAchievements {
		overall += achievementBonus
	}
	overall = clampScore(overall)

	analysis := ResumeAnalysis{
		OverallScore: overall,
		SectionScores: SectionScores{
			Structure:  structure,
			Content:    content,
			Keywords:   keywords,
			Formatting: formatting,
		},
		SectionFeedback: buildSectionFeedback(f, structure, content, keywords, formatting),
		Recommendations: buildRecommendations(f),
	}

	if strings.TrimSpace(jobDescription) != "" {
		analysis.JobRelevanceScore = intPtr(relevanceScore(resumeText, jobDescription))
		analysis.MissingKeywords = missingFromResume(resumeText, jobDescription)
	}

	return analysis
}

func buildSectionFeedback(f resumeFeatures, structure, content, keywords, formatting int) []SectionFeedback {
	structureFeedback := "Contact details are incomplete; recruiters need an easy way to reach you."
	if structure >= 100 {
		structureFeedback = "Contact information is complete with email, phone, and LinkedIn."
	} else if structure >= 70 {
		structureFeedback = "Most contact details are present, but one channel is missing."
	}

	contentFeedback := "Content is brief; add detail about your roles and outcomes."
	switch {
	case f.hasAchievements && f.hasExperience:
		contentFeedback = "Good use of metrics and a clear experience section give your content weight."
	case f.hasAchievements:
		contentFeedback = "Good use of metrics, though a dedicated experience section would anchor them."
	case f.length >= shortTextThreshold:
		contentFeedback = "Reasonable depth of content, but quantifiable results are missing."
	}

	keywordsFeedback := "Few recognized technical skills were found; expand your skills section."
	if keywords >= 75 {
		keywordsFeedback = "Strong technical keyword coverage across your skills section."
	} else if keywords >= 55 {
		keywordsFeedback = "A moderate set of technical skills was found; consider adding more current tools."
	}

	formattingFeedback := "The document reads as quite short; longer resumes tend to format more evenly."
	if f.length > longTextThreshold {
		formattingFeedback = "Document length suggests well-developed sections."
	}

	return []SectionFeedback{
		{
			Section:  SectionStructure,
			Score:    structure,
			Feedback: structureFeedback,
			Suggestions: []string{
				"Put contact details on the first line of the resume",
				"Include a professional email address and phone number",
				"Add a LinkedIn profile URL",
			},
		},
		{
			Section:  SectionContent,
			Score:    content,
			Feedback: contentFeedback,
			Suggestions: []string{
				"Describe outcomes, not duties, in each role",
				"Quantify results with percentages or dollar amounts",
				"Lead bullets with strong action verbs",
				"Mention years of experience explicitly",
			},
		},
		{
			Section:  SectionKeywords,
			Score:    keywords,
			Feedback: keywordsFeedback,
			Suggestions: []string{
				"Group skills by category (languages, frameworks, tools)",
				"Mirror terminology used in target job postings",
				"Include cloud and infrastructure tooling you have used",
			},
		},
		{
			Section:  SectionFormatting,
			Score:    formatting,
			Feedback: formattingFeedback,
			Suggestions: []string{
				"Keep date formats and bullet styles consistent",
				"Use standard section headings for ATS compatibility",
				"Avoid tables and multi-column layouts",
			},
		},
	}
}

func buildRecommendations(f resumeFeatures) []Recommendation {
	recs := make([]Recommendation, 0, 6)
	if !f.hasAchievements {
		recs = append(recs, Recommendation{
			Title:       "Quantify Your Achievements",
			Description: "Add specific metrics and numbers to demonstrate the impact of your work. This is the most important improvement you can make.",
			Impact:      ImpactHigh,
		})
	}
	if f.skillCount < fewSkillsThreshold {
		recs = append(recs, Recommendation{
			Title:       "Expand Technical Skills",
			Description: "Add more current technologies, frameworks, and tools to show you're up-to-date with industry trends.",
			Impact:      ImpactMedium,
		})
	}
	if !f.hasLinkedIn {
		recs = append(recs, Recommendation{
			Title:       "Add Your LinkedIn Profile",
			Description: "A LinkedIn URL in the header gives recruiters a fast way to verify your experience and network.",
			Impact:      ImpactMedium,
		})
	}
	if f.length < shortTextThreshold {
		recs = append(recs, Recommendation{
			Title:       "Expand Your Content",
			Description: "The resume is on the short side. Flesh out roles with scope, technologies, and outcomes.",
			Impact:      ImpactMedium,
		})
	}
	if !f.hasSummary {
		recs = append(recs, Recommendation{
			Title:       "Add a Professional Summary",
			Description: "Open with two or three lines that position your experience for the roles you want.",
			Impact:      ImpactLow,
		})
	}
	recs = append(recs, Recommendation{
		Title:       "Optimize for ATS",
		Description: "Use standard headings, plain formatting, and keywords from target job descriptions so applicant tracking systems parse the resume cleanly.",
		Impact:      ImpactMedium,
	})
	return recs
}

func tokenSet(text string) map[string]struct{} {
	words := wordTokRe.FindAllString(strings.ToLower(text), -1)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func relevanceScore(resumeText, jobDescription string) int {
	resumeWords := tokenSet(resumeText)
	jobWords := tokenSet(jobDescription)
	if len(jobWords) == 0 {
		return 0
	}
	matched := 0
	for w := range jobWords {
		if _, ok := resumeWords[w]; ok {
			matched++
		}
	}
	return clampScore(100 * matched / len(jobWords))
}

func missingFromResume(resumeText, jobDescription string) []string {
	resumeLower := strings.ToLower(resumeText)
	jobLower := strings.ToLower(jobDescription)
	missing := make([]string, 0, maxMissingKeywords)
	for _, kw := range importantKeywords {
		if len(missing) == maxMissingKeywords {
			break
		}
		lower := strings.ToLower(kw)
		if strings.Contains(jobLower, lower) && !strings.Contains(resumeLower, lower) {
			missing = append(missing, kw)
		}
	}
	return missing
}
