package services

import (
	"context"
	"fmt"
	"strings"

	"coursepulse/internal/app/models"
	"coursepulse/internal/app/repositories"
	"coursepulse/internal/pkg/apperrors"
)

// CourseService defines the interface for course read operations
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByCode(ctx context.Context, code string) (*models.Course, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
	}
}

// GetAllCourses retrieves all courses
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAllCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// GetCourseByCode retrieves one course by its code
func (s *courseServiceImpl) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: course code cannot be empty", apperrors.ErrValidationFailed)
	}

	course, err := s.courseRepo.GetCourseByCode(ctx, code)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}
