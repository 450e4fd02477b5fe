package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"coursepulse/internal/app/models/dto"
	"coursepulse/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to HTTP responses in one place
// so controllers stay free of status-code switches.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeCourseNotFound, "Course not found"),
		})
		return
	case errors.Is(err, apperrors.ErrNoReviewsFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeNoReviewsFound, "No reviews found for course"),
		})
		return
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
		})
		return
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed"),
		})
		return
	case errors.Is(err, apperrors.ErrTemplateNotFound), errors.Is(err, apperrors.ErrMissingPlaceholder):
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeTemplateError, "Prompt template error"),
		})
		return
	case errors.Is(err, apperrors.ErrCompletionFailed):
		// The orchestrator normally absorbs these; reaching here means a
		// caller chose to surface the failure instead.
		c.JSON(502, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "Completion endpoint failed"),
		})
		return
	case errors.Is(err, apperrors.ErrPersistenceFailed):
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Failed to persist record"),
		})
		return
	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
		return
	}
}
