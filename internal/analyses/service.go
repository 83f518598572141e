package analyses

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resume-grader/internal/extract"
	"resume-grader/internal/llm"
	"resume-grader/internal/shared/metrics"
	"resume-grader/internal/shared/telemetry"
)

const (
	// MaxUploadBytes caps resume uploads at 5 MB.
	MaxUploadBytes = 5 << 20

	defaultMaxAttempts  = 2
	defaultRetryBackoff = 1 * time.Second
)

// AnalyzeRequest describes one uploaded resume plus an optional job
// description to match against.
type AnalyzeRequest struct {
	FileName       string
	MimeType       string
	Content        []byte
	JobDescription string
}

// Service orchestrates a single analysis: validate, extract text, consult the
// cache, attempt the LLM with bounded retries, and fall back to the heuristic
// engine when the LLM is unavailable or failing.
//
// A nil LLM means no provider credentials are configured; every analysis then
// takes the heuristic path tagged with reason "no_api_key".
type Service struct {
	Cache        *Cache
	LLM          llm.Client
	RetryBackoff time.Duration
	MaxAttempts  int
}

// Analyze resolves a request into a complete ResumeAnalysis. It fails only on
// validation or extraction problems; LLM failures are always resolved into a
// usable fallback analysis, visible via usingFallback/fallbackReason.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (Result, error) {
	startedAt := time.Now().UTC()
	metrics.IncAnalysisRequested()

	if len(req.Content) == 0 && strings.TrimSpace(req.FileName) == "" {
		return Result{}, ErrNoFile
	}
	if len(req.Content) > MaxUploadBytes {
		return Result{}, ErrFileTooLarge
	}

	text, err := extract.Text(req.Content, req.MimeType, req.FileName)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrExtractFailed, err)
	}
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrEmptyText
	}

	key := Fingerprint(text, req.JobDescription)
	if s.Cache != nil {
		if entry, ok := s.Cache.Get(key); ok {
			metrics.IncCacheHit()
			telemetry.Info("analysis.cache_hit", map[string]any{
				"file_name": req.FileName,
				"cache_key": key,
			})
			return Result{Analysis: entry.Analysis, FromCache: true}, nil
		}
	}

	analysis, fallbackReason := s.resolve(ctx, text, req.JobDescription)
	if fallbackReason != "" {
		analysis.UsingFallback = true
		analysis.FallbackReason = fallbackReason
		metrics.IncAnalysisFallback()
	}

	if s.Cache != nil {
		s.Cache.Set(key, analysis)
	}

	metrics.IncAnalysisCompleted()
	durationMs := float64(time.Since(startedAt).Microseconds()) / 1000.0
	metrics.ObserveAnalysisDurationMs(durationMs)
	telemetry.Info("analysis.complete", map[string]any{
		"file_name":       req.FileName,
		"using_fallback":  analysis.UsingFallback,
		"fallback_reason": analysis.FallbackReason,
		"overall_score":   analysis.OverallScore,
		"duration_ms":     durationMs,
	})

	return Result{Analysis: analysis}, nil
}

// resolve returns the analysis and, when the heuristic path produced it, the
// fallback reason.
func (s *Service) resolve(ctx context.Context, text, jobDescription string) (ResumeAnalysis, string) {
	if s.LLM == nil {
		return HeuristicAnalyze(text, jobDescription), FallbackNoAPIKey
	}

	attempts := s.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}
	backoff := s.RetryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}

	input := llm.AnalyzeInput{ResumeText: text, JobDescription: jobDescription}
	for attempt := 1; attempt <= attempts; attempt++ {
		raw, err := s.LLM.AnalyzeResume(ctx, input)
		if err == nil {
			analysis, perr := ParseLLMAnalysis(raw)
			if perr == nil {
				return analysis, ""
			}
			err = perr
		}

		telemetry.Error("analysis.llm_attempt_failed", map[string]any{
			"attempt": attempt,
			"error":   sanitizeError(err),
		})

		if isQuotaError(err) {
			// Retrying a quota or billing failure cannot help.
			return HeuristicAnalyze(text, jobDescription), FallbackQuotaExceeded
		}
		if attempt == attempts {
			break
		}
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			// The caller gave up waiting; resolve immediately instead of
			// surfacing the cancellation.
			return HeuristicAnalyze(text, jobDescription), FallbackAIError
		}
	}

	return HeuristicAnalyze(text, jobDescription), FallbackAIError
}

// isQuotaError reports whether an LLM failure is a quota or billing problem,
// judged by error message substrings.
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"quota", "insufficient_quota", "billing", "rate limit", "rate_limit", "429"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	msg = strings.ReplaceAll(msg, "\r", " ")
	msg = strings.TrimSpace(msg)
	const maxLen = 500
	if len(msg) > maxLen {
		msg = msg[:maxLen]
	}
	return msg
}
