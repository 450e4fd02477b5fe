package services

import (
	"context"
	"fmt"
	"strings"

	"coursepulse/internal/app/models"
	"coursepulse/internal/app/repositories"
	"coursepulse/internal/pkg/apperrors"
)

// PostService defines the interface for post read operations
type PostService interface {
	GetAllPosts(ctx context.Context) ([]*models.Post, error)
	GetPostsByCourseCode(ctx context.Context, courseCode string) ([]*models.Post, error)
}

// postServiceImpl implements the PostService interface
type postServiceImpl struct {
	postRepo   *repositories.PostRepository
	courseRepo *repositories.CourseRepository
}

// NewPostService creates a new post service instance
func NewPostService(postRepo *repositories.PostRepository, courseRepo *repositories.CourseRepository) PostService {
	return &postServiceImpl{
		postRepo:   postRepo,
		courseRepo: courseRepo,
	}
}

// GetAllPosts retrieves all posts with their optional AI question text
func (s *postServiceImpl) GetAllPosts(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.postRepo.GetAllPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving posts: %w", err)
	}
	return posts, nil
}

// GetPostsByCourseCode retrieves all posts for the course with the given
// code. The course must exist; an unknown code is ErrCourseNotFound.
func (s *postServiceImpl) GetPostsByCourseCode(ctx context.Context, courseCode string) ([]*models.Post, error) {
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

	posts, err := s.postRepo.GetPostsByCourseID(ctx, course.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving posts for course: %w", err)
	}
	return posts, nil
}
