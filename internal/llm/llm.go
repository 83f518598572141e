package llm

import (
	"context"
	"encoding/json"
)

// Client abstracts LLM providers for resume analysis.
type Client interface {
	AnalyzeResume(ctx context.Context, input AnalyzeInput) (json.RawMessage, error)
}

// AnalyzeInput captures the inputs for one resume analysis request.
type AnalyzeInput struct {
	ResumeText     string
	JobDescription string
}
