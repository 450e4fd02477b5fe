package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"coursepulse/internal/app/models"
	"coursepulse/internal/app/models/dto"
	"coursepulse/internal/app/services"
	"coursepulse/internal/middleware"
)

// SummaryController handles summary read endpoints
type SummaryController struct {
	summaryService services.SummaryService
}

// NewSummaryController creates a new SummaryController
func NewSummaryController(summaryService services.SummaryService) *SummaryController {
	return &SummaryController{
		summaryService: summaryService,
	}
}

// GetSummaries retrieves summaries, optionally filtered by course code.
// Empty results answer 404, same as an unmatched filter.
// @Summary List summaries
// @Description Retrieves all summaries, or the summaries of one course when course_code is supplied
// @Tags summaries
// @Accept json
// @Produce json
// @Param course_code query string false "Course code filter" example(CS101)
// @Success 200 {object} dto.APIResponse{data=[]dto.SummaryResponse} "Summaries retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "No summaries found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /summaries [get]
func (c *SummaryController) GetSummaries(ctx *gin.Context) {
	var (
		summaries []*models.Summary
		err       error
	)

	if code, ok := ctx.GetQuery("course_code"); ok {
		summaries, err = c.summaryService.GetSummariesByCourseCode(ctx, code)
	} else {
		summaries, err = c.summaryService.GetAllSummaries(ctx)
	}

	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if len(summaries) == 0 {
		ctx.JSON(http.StatusNotFound, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "No summaries found"),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewSummaryListResponse(summaries),
		Timestamp: time.Now(),
	})
}
