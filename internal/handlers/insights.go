package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/driftlog/backend/internal/apierror"
	"github.com/driftlog/backend/internal/models"
	"github.com/driftlog/backend/internal/service"
)

// narratorRetryAfterSeconds is the Retry-After hint returned when the
// narrated-insight endpoint cannot reach its text generator.
const narratorRetryAfterSeconds = 30

type InsightsHandler struct {
	insightService service.InsightService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insightService service.InsightService) *InsightsHandler {
	return &InsightsHandler{
		insightService: insightService,
	}
}

// parseWindow reads the window selector from query parameters. It only
// parses; shape rules (period vs. range, ordering) are enforced by the
// service so every caller gets the same errors.
func parseWindow(c *gin.Context) (models.Window, bool) {
	window := models.Window{Period: c.Query("period")}

	for _, q := range []struct {
		name string
		dst  **time.Time
	}{
		{"start_date", &window.StartDate},
		{"end_date", &window.EndDate},
	} {
		raw := c.Query(q.name)
		if raw == "" {
			continue
		}
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
				{Field: q.name, Message: "must be a date in YYYY-MM-DD format", Code: "invalid_format"},
			}))
			return models.Window{}, false
		}
		*q.dst = &parsed
	}

	return window, true
}

// GetSummary handles GET /api/v1/insights/summary
func (h *InsightsHandler) GetSummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	window, ok := parseWindow(c)
	if !ok {
		return
	}

	summary, err := h.insightService.GetSummary(c.Request.Context(), userID, window)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetCorrelation handles GET /api/v1/insights/correlation
func (h *InsightsHandler) GetCorrelation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	window, ok := parseWindow(c)
	if !ok {
		return
	}

	result, err := h.insightService.GetCorrelation(c.Request.Context(), userID, window)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetChartsData handles GET /api/v1/insights/chartsdata
func (h *InsightsHandler) GetChartsData(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	window, ok := parseWindow(c)
	if !ok {
		return
	}

	charts, err := h.insightService.GetChartsData(c.Request.Context(), userID, window)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, charts)
}

// GetNarratedInsight handles GET /api/v1/insights/narrated. Unlike the
// charts endpoint, the narrated text is the entire payload here, so a
// narrator outage is a 503 instead of a placeholder.
func (h *InsightsHandler) GetNarratedInsight(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	window, ok := parseWindow(c)
	if !ok {
		return
	}

	insight, err := h.insightService.GetNarratedInsight(c.Request.Context(), userID, window)
	if err != nil {
		if isNarratorUnavailable(err) {
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewServiceUnavailableError(requestID, narratorRetryAfterSeconds))
			return
		}
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insight": insight})
}
