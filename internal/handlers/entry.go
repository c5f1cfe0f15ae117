package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/driftlog/backend/internal/apierror"
	"github.com/driftlog/backend/internal/models"
	"github.com/driftlog/backend/internal/service"
)

type EntryHandler struct {
	entryService service.EntryService
}

// NewEntryHandler creates a new entry handler
func NewEntryHandler(entryService service.EntryService) *EntryHandler {
	return &EntryHandler{
		entryService: entryService,
	}
}

// CreateEntry handles POST /api/v1/entries
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	var req models.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid request body"))
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), userID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetEntry handles GET /api/v1/entries/:id
func (h *EntryHandler) GetEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	entryID := c.Param("id")
	entry, err := h.entryService.GetEntry(c.Request.Context(), userID, entryID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if entry == nil {
		apierror.WriteProblem(c, apierror.NewNotFoundError(apierror.GetRequestID(c), "entry", entryID))
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ListEntries handles GET /api/v1/entries
func (h *EntryHandler) ListEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.entryService.GetUserEntries(c.Request.Context(), userID, limit, offset)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if entries == nil {
		entries = []models.Entry{}
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

// UpdateEntry handles PATCH /api/v1/entries/:id
func (h *EntryHandler) UpdateEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	var req models.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid request body"))
		return
	}

	entryID := c.Param("id")
	entry, err := h.entryService.UpdateEntry(c.Request.Context(), userID, entryID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if entry == nil {
		apierror.WriteProblem(c, apierror.NewNotFoundError(apierror.GetRequestID(c), "entry", entryID))
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteEntry handles DELETE /api/v1/entries/:id
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	entryID := c.Param("id")
	if err := h.entryService.DeleteEntry(c.Request.Context(), userID, entryID); err != nil {
		apierror.WriteProblem(c, apierror.NewNotFoundError(apierror.GetRequestID(c), "entry", entryID))
		return
	}

	c.Status(http.StatusNoContent)
}
