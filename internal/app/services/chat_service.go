package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"coursepulse/internal/app/models"
	"coursepulse/internal/pkg/ai"
	"coursepulse/internal/pkg/apperrors"
	"coursepulse/internal/pkg/prompt"
)

// CourseReader resolves course codes to course records.
type CourseReader interface {
	GetCourseByCode(ctx context.Context, code string) (*models.Course, error)
}

// PostReader lists a course's posts with their optional question text.
type PostReader interface {
	GetPostsByCourseID(ctx context.Context, courseID int64) ([]*models.Post, error)
}

// InteractionWriter persists one question-answer exchange.
type InteractionWriter interface {
	CreateInteraction(ctx context.Context, interaction *models.Interaction) (int64, error)
}

// ChatService answers natural-language questions about a course from its
// collected reviews.
type ChatService interface {
	AnswerQuestion(ctx context.Context, question, courseCode string, userID *string) (string, error)
}

// chatServiceImpl implements ChatService
type chatServiceImpl struct {
	codes           *CourseCodeIndex
	courseRepo      CourseReader
	postRepo        PostReader
	interactionRepo InteractionWriter
	templates       *prompt.Loader
	completer       ai.Completer
	logger          zerolog.Logger
}

// NewChatService creates a new ChatService. The code index is built once
// at startup and passed in here rather than consulted through a global.
func NewChatService(
	codes *CourseCodeIndex,
	courseRepo CourseReader,
	postRepo PostReader,
	interactionRepo InteractionWriter,
	templates *prompt.Loader,
	completer ai.Completer,
	logger zerolog.Logger,
) ChatService {
	return &chatServiceImpl{
		codes:           codes,
		courseRepo:      courseRepo,
		postRepo:        postRepo,
		interactionRepo: interactionRepo,
		templates:       templates,
		completer:       completer,
		logger:          logger,
	}
}

// AnswerQuestion resolves the course, collects its reviews, renders the
// answer prompt, and asks the completion endpoint. A completion failure
// is absorbed here: the failure description becomes the answer text and
// never propagates as an error. A persistence failure is logged and the
// already-computed answer is still returned.
func (s *chatServiceImpl) AnswerQuestion(ctx context.Context, question, courseCode string, userID *string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("%w: question cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(courseCode) == "" {
		return "", fmt.Errorf("%w: course code cannot be empty", apperrors.ErrValidationFailed)
	}

	if _, ok := s.codes.Lookup(courseCode); !ok {
		return "", apperrors.ErrCourseNotFound
	}

	course, err := s.courseRepo.GetCourseByCode(ctx, courseCode)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCourseNotFound) {
			return "", apperrors.ErrCourseNotFound
		}
		return "", fmt.Errorf("error resolving course: %w", err)
	}

	posts, err := s.postRepo.GetPostsByCourseID(ctx, course.ID)
	if err != nil {
		return "", fmt.Errorf("error retrieving posts for course: %w", err)
	}
	if len(posts) == 0 {
		// Answering with no review context would invent content
		return "", apperrors.ErrNoReviewsFound
	}

	reviews := make([]prompt.Review, 0, len(posts))
	for _, post := range posts {
		review := prompt.Review{Text: post.Content}
		if post.QuestionText != nil {
			review.Question = *post.QuestionText
		}
		reviews = append(reviews, review)
	}

	template, err := s.templates.Load(prompt.AnswerTemplate)
	if err != nil {
		return "", err
	}

	rendered, err := prompt.Render(template, map[string]string{
		"course_name": course.Name,
		"question":    question,
		"reviews":     prompt.FormatReviews(reviews),
	})
	if err != nil {
		return "", err
	}

	answer, err := s.completer.Complete(ctx, rendered)
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrCompletionFailed) {
			return "", err
		}
		s.logger.Error().Err(err).Str("courseCode", courseCode).Msg("Completion request failed, returning failure text as answer")
		answer = fmt.Sprintf("An error occurred while processing the reviews: %v", err)
	}

	interaction := &models.Interaction{
		UserID:   userID,
		CourseID: course.ID,
		Question: question,
		Answer:   answer,
	}
	if _, err := s.interactionRepo.CreateInteraction(ctx, interaction); err != nil {
		// The answer is already computed; losing the audit row must not lose it
		s.logger.Warn().Err(err).Int64("courseID", course.ID).Msg("Failed to persist interaction")
	}

	return answer, nil
}
