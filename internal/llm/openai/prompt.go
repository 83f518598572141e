package openai

import (
	"fmt"
	"strings"
)

// Message represents an OpenAI chat message.
type Message struct {
	Role    string
	Content string
}

const systemPrompt = "You are a resume analysis engine. Respond with JSON only. Never omit keys. Output must match the schema exactly."

const analysisInstructions = `Analyze this resume and provide detailed feedback as a JSON object with keys:
overallScore (0-100), sectionScores ({structure, content, keywords, formatting}, each 0-100),
sectionFeedback (array of {section, score, feedback, suggestions}), and
recommendations (array of {title, description, impact} with impact one of High|Medium|Low).

Please provide:
1. Overall score based on structure, content clarity, keyword usage, and formatting
2. Section-wise scores and feedback for: structure, content, keywords, formatting
3. Specific, actionable recommendations for improvement with impact levels

Focus on:
- Professional presentation and formatting
- Content quality and quantifiable achievements
- Use of action verbs and industry keywords
- Completeness of sections
- Overall readability and ATS compatibility`

const jobMatchInstructions = `Additionally provide:
- jobRelevanceScore (0-100) showing how well the resume matches this role
- missingKeywords: important keywords missing from the resume that appear in the job description`

// BuildPrompt creates the chat messages for a resume analysis request.
func BuildPrompt(resumeText, jobDescription string) []Message {
	var user strings.Builder
	fmt.Fprintf(&user, "%s\n\nRESUME TEXT:\n%s\n", analysisInstructions, resumeText)
	if strings.TrimSpace(jobDescription) != "" {
		fmt.Fprintf(&user, "\nJOB DESCRIPTION FOR MATCHING:\n%s\n\n%s\n", jobDescription, jobMatchInstructions)
	}

	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: user.String()},
	}
}
