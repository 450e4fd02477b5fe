package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"coursepulse/internal/app/models/dto"
	"coursepulse/internal/app/services"
	"coursepulse/internal/middleware"
)

// CourseController handles course read endpoints
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetCourses retrieves courses, optionally filtered by course code.
// An unmatched filter and an empty course table both answer 404; the API
// does not distinguish empty from absent.
// @Summary List courses
// @Description Retrieves all courses, or a single course when course_code is supplied
// @Tags courses
// @Accept json
// @Produce json
// @Param course_code query string false "Course code filter" example(CS101)
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "No courses found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	if code, ok := ctx.GetQuery("course_code"); ok {
		course, err := c.courseService.GetCourseByCode(ctx, code)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, dto.APIResponse{
			Data:      dto.NewCourseResponse(course),
			Timestamp: time.Now(),
		})
		return
	}

	courses, err := c.courseService.GetAllCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if len(courses) == 0 {
		ctx.JSON(http.StatusNotFound, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "No courses found"),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewCourseListResponse(courses),
		Timestamp: time.Now(),
	})
}
