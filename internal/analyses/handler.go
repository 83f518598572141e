package analyses

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-grader/internal/shared/server/respond"
	"resume-grader/internal/shared/telemetry"
)

var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".docx": {},
	".txt":  {},
}

// HistorySaver records a completed analysis and returns the stored item's id.
type HistorySaver interface {
	SaveAnalysis(ctx context.Context, analysis ResumeAnalysis, fileName string) (string, error)
}

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc     *Service
	History HistorySaver
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, saver HistorySaver) *Handler {
	return &Handler{Svc: svc, History: saver}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.analyzeResume)
}

type analyzeResponse struct {
	ResumeAnalysis
	FromCache bool   `json:"fromCache,omitempty"`
	HistoryID string `json:"historyId,omitempty"`
}

func (h *Handler) analyzeResume(c *gin.Context) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "no resume file provided", nil)
		return
	}
	c.Set("fileName", fileHeader.Filename)

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "please upload a PDF, DOCX, or TXT file", nil)
		return
	}
	if fileHeader.Size > MaxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file exceeds the 5 MB limit", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusUnprocessableEntity, "extraction_error", "could not process file", nil)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, MaxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusUnprocessableEntity, "extraction_error", "could not process file", nil)
		return
	}

	result, err := h.Svc.Analyze(c.Request.Context(), AnalyzeRequest{
		FileName:       fileHeader.Filename,
		MimeType:       fileHeader.Header.Get("Content-Type"),
		Content:        content,
		JobDescription: c.PostForm("jobDescription"),
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNoFile), errors.Is(err, ErrFileTooLarge), errors.Is(err, ErrEmptyText):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrExtractFailed):
			respond.Error(c, http.StatusUnprocessableEntity, "extraction_error", "could not process file", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze resume", nil)
		}
		return
	}

	resp := analyzeResponse{ResumeAnalysis: result.Analysis, FromCache: result.FromCache}
	if h.History != nil {
		id, err := h.History.SaveAnalysis(c.Request.Context(), result.Analysis, fileHeader.Filename)
		if err != nil {
			// The analysis itself succeeded; losing the history entry is
			// not worth failing the request over.
			telemetry.Warn("history.save_failed", map[string]any{
				"file_name": fileHeader.Filename,
				"error":     err.Error(),
			})
		} else {
			resp.HistoryID = id
		}
	}

	respond.OK(c, resp)
}
