package routes

import (
	"github.com/gin-gonic/gin"

	"coursepulse/internal/app/controllers"
	"coursepulse/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	postController *controllers.PostController,
	summaryController *controllers.SummaryController,
	chatController *controllers.ChatController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Read surface: courses, posts, summaries, each with an optional
	// course_code filter
	v1.GET("/courses", courseController.GetCourses)
	v1.GET("/posts", postController.GetPosts)
	v1.GET("/summaries", summaryController.GetSummaries)

	// Answer generation
	v1.POST("/ai_interaction", chatController.AskQuestion)

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
