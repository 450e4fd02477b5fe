package dto

import "coursepulse/internal/app/models"

// CourseResponse mirrors the courses table row shape served by the API.
type CourseResponse struct {
	ID          int64   `json:"id" example:"1"`
	Code        string  `json:"code" example:"CS101"`
	Name        string  `json:"name" example:"Introduction to Programming"`
	Description *string `json:"description,omitempty"`
	ECTS        *int    `json:"ects,omitempty" example:"6"`
	Professor   *string `json:"professor,omitempty" example:"Prof. Meyer"`
	Link        *string `json:"link,omitempty"`
}

// NewCourseResponse maps a course model onto its response shape
func NewCourseResponse(course *models.Course) CourseResponse {
	return CourseResponse{
		ID:          course.ID,
		Code:        course.Code,
		Name:        course.Name,
		Description: course.Description,
		ECTS:        course.ECTS,
		Professor:   course.Professor,
		Link:        course.Link,
	}
}

// NewCourseListResponse maps a course slice onto response shapes
func NewCourseListResponse(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		out = append(out, NewCourseResponse(course))
	}
	return out
}
