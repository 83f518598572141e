package history

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-grader/internal/analyses"
	"resume-grader/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the history store.
type Handler struct {
	Store Store
}

// NewHandler constructs a Handler.
func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches history routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/history", h.listHistory)
	rg.GET("/history/:id", h.getHistoryItem)
	rg.DELETE("/history", h.clearHistory)
}

func (h *Handler) listHistory(c *gin.Context) {
	items, err := h.Store.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list history", nil)
		return
	}

	resp := make([]gin.H, 0, len(items))
	for _, item := range items {
		resp = append(resp, gin.H{
			"id":            item.ID,
			"fileName":      item.FileName,
			"analysisDate":  item.AnalysisDate,
			"overallScore":  item.Analysis.OverallScore,
			"usingFallback": item.Analysis.UsingFallback,
		})
	}
	respond.OK(c, resp)
}

func (h *Handler) getHistoryItem(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "history item id is required", nil)
		return
	}

	item, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "history item not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch history item", nil)
		}
		return
	}

	// Fallback analyses are demo data; render them through the seeded
	// variation so repeated views of the same item stay identical while
	// different items look distinct.
	if c.Query("display") == "varied" && item.Analysis.UsingFallback {
		item.Analysis = analyses.VaryForDisplay(item.Analysis)
	}

	respond.OK(c, item)
}

func (h *Handler) clearHistory(c *gin.Context) {
	if err := h.Store.Clear(c.Request.Context()); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to clear history", nil)
		return
	}
	respond.OK(c, gin.H{"cleared": true})
}
