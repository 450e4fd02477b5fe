package services

import (
	"context"
	"fmt"
	"strings"

	"coursepulse/internal/app/models"
	"coursepulse/internal/app/repositories"
	"coursepulse/internal/pkg/apperrors"
)

// SummaryService defines the interface for summary read operations
type SummaryService interface {
	GetAllSummaries(ctx context.Context) ([]*models.Summary, error)
	GetSummariesByCourseCode(ctx context.Context, courseCode string) ([]*models.Summary, error)
}

// summaryServiceImpl implements the SummaryService interface
type summaryServiceImpl struct {
	summaryRepo *repositories.SummaryRepository
	courseRepo  *repositories.CourseRepository
}

// NewSummaryService creates a new summary service instance
func NewSummaryService(summaryRepo *repositories.SummaryRepository, courseRepo *repositories.CourseRepository) SummaryService {
	return &summaryServiceImpl{
		summaryRepo: summaryRepo,
		courseRepo:  courseRepo,
	}
}

// GetAllSummaries retrieves all summaries
func (s *summaryServiceImpl) GetAllSummaries(ctx context.Context) ([]*models.Summary, error) {
	summaries, err := s.summaryRepo.GetAllSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving summaries: %w", err)
	}
	return summaries, nil
}

// GetSummariesByCourseCode retrieves all summaries for the course with
// the given code. The course must exist; an unknown code is ErrCourseNotFound.
func (s *summaryServiceImpl) GetSummariesByCourseCode(ctx context.Context, courseCode string) ([]*models.Summary, error) {
	if strings.TrimSpace(courseCode) == "" {
		return nil, fmt.Errorf("%w: course code cannot be empty", apperrors.ErrValidationFailed)
	}

	course, err := s.courseRepo.GetCourseByCode(ctx, courseCode)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error resolving course: %w", err)
	}

	summaries, err := s.summaryRepo.GetSummariesByCourseID(ctx, course.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving summaries for course: %w", err)
	}
	return summaries, nil
}
