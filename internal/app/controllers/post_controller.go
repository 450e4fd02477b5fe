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

// PostController handles post read endpoints
type PostController struct {
	postService services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService services.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

// GetPosts retrieves posts, optionally filtered by course code. Each
// post carries the text of the AI question it answers, when there is one.
// Empty results answer 404, same as an unmatched filter.
// @Summary List posts
// @Description Retrieves all posts, or the posts of one course when course_code is supplied
// @Tags posts
// @Accept json
// @Produce json
// @Param course_code query string false "Course code filter" example(CS101)
// @Success 200 {object} dto.APIResponse{data=[]dto.PostResponse} "Posts retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "No posts found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts [get]
func (c *PostController) GetPosts(ctx *gin.Context) {
	var (
		posts []*models.Post
		err   error
	)

	if code, ok := ctx.GetQuery("course_code"); ok {
		posts, err = c.postService.GetPostsByCourseCode(ctx, code)
	} else {
		posts, err = c.postService.GetAllPosts(ctx)
	}

	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if len(posts) == 0 {
		ctx.JSON(http.StatusNotFound, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "No posts found"),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewPostListResponse(posts),
		Timestamp: time.Now(),
	})
}
