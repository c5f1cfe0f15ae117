package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/driftlog/backend/internal/apierror"
	"github.com/driftlog/backend/internal/logger"
	"github.com/driftlog/backend/internal/narrator"
	"github.com/driftlog/backend/internal/service"
)

// isNarratorUnavailable reports whether err is a narrator outage rather than
// a data or validation problem.
func isNarratorUnavailable(err error) bool {
	return errors.Is(err, narrator.ErrUnavailable)
}

// currentUserID pulls the authenticated user id set by the auth middleware.
// The bool is false when the route was somehow reached unauthenticated.
func currentUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	id, ok := value.(string)
	return id, ok && id != ""
}

// writeServiceError maps a service-layer error onto a problem response.
// Validation failures become 400s naming the fields; integrity faults become
// 500s naming the field but never echoing the record; everything else is an
// opaque 500.
func writeServiceError(c *gin.Context, err error) {
	requestID := apierror.GetRequestID(c)

	var verr *service.ValidationError
	if errors.As(err, &verr) {
		fieldErrors := make([]apierror.FieldError, 0, len(verr.Fields))
		for _, field := range verr.Fields {
			fieldErrors = append(fieldErrors, apierror.FieldError{
				Field:   field,
				Message: verr.Message,
				Code:    "invalid",
			})
		}
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, fieldErrors))
		return
	}

	var derr *service.DataIntegrityError
	if errors.As(err, &derr) {
		logger.Ctx(c.Request.Context()).Error("stored entry failed shape check",
			logger.String("entry_id", derr.EntryID),
			logger.String("field", derr.Field),
			logger.String("reason", derr.Reason),
		)
		apierror.WriteProblem(c, apierror.NewDataIntegrityError(requestID, derr.Error()))
		return
	}

	logger.Ctx(c.Request.Context()).Error("request failed", logger.Err(err))
	apierror.WriteProblem(c, apierror.NewInternalError(requestID))
}
