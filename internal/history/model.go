package history

import (
	"time"

	"resume-grader/internal/analyses"
)

// Item is one saved analysis result.
type Item struct {
	ID           string                  `json:"id"`
	FileName     string                  `json:"fileName"`
	AnalysisDate time.Time               `json:"analysisDate"`
	Analysis     analyses.ResumeAnalysis `json:"analysis"`
}
