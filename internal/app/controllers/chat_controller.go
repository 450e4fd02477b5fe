package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"coursepulse/internal/app/models/dto"
	"coursepulse/internal/app/services"
	"coursepulse/internal/middleware"
)

// ChatController handles the question answering endpoint
type ChatController struct {
	chatService services.ChatService
}

// NewChatController creates a new ChatController
func NewChatController(chatService services.ChatService) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// AskQuestion answers a natural-language question about a course from
// its reviews and records the exchange.
// @Summary Ask a question about a course
// @Description Generates an answer from the course's reviews via the completion endpoint
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.AskQuestionRequest true "Question and course code"
// @Success 200 {object} dto.APIResponse{data=dto.AskQuestionResponse} "Answer generated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found or has no reviews"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /ai_interaction [post]
func (c *ChatController) AskQuestion(ctx *gin.Context) {
	var req dto.AskQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid question data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	answer, err := c.chatService.AnswerQuestion(ctx, req.Question, req.CourseCode, req.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.AskQuestionResponse{Answer: answer},
		Timestamp: time.Now(),
	})
}
