package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"coursepulse/internal/app/models"
	"coursepulse/internal/pkg/ai"
	"coursepulse/internal/pkg/apperrors"
	"coursepulse/internal/pkg/prompt"
)

// CourseLister lists courses for the generation job.
type CourseLister interface {
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByCode(ctx context.Context, code string) (*models.Course, error)
}

// QuestionStore reads and writes generated prompting questions.
type QuestionStore interface {
	GetQuestionsByCourseID(ctx context.Context, courseID int64) ([]*models.AIQuestion, error)
	CreateQuestions(ctx context.Context, questions []*models.AIQuestion) error
}

// QuestionService generates new AI prompting questions per course. Run
// offline by the questiongen binary, not from the HTTP surface.
type QuestionService interface {
	GenerateQuestions(ctx context.Context, courseCode string, numQuestions int) (int, error)
}

// questionServiceImpl implements QuestionService
type questionServiceImpl struct {
	courseRepo   CourseLister
	postRepo     PostReader
	questionRepo QuestionStore
	templates    *prompt.Loader
	completer    ai.Completer
	logger       zerolog.Logger
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(
	courseRepo CourseLister,
	postRepo PostReader,
	questionRepo QuestionStore,
	templates *prompt.Loader,
	completer ai.Completer,
	logger zerolog.Logger,
) QuestionService {
	return &questionServiceImpl{
		courseRepo:   courseRepo,
		postRepo:     postRepo,
		questionRepo: questionRepo,
		templates:    templates,
		completer:    completer,
		logger:       logger,
	}
}

// GenerateQuestions generates numQuestions new prompting questions for
// the named course, or for every course when courseCode is empty.
// Returns the number of questions inserted. A completion failure for one
// course skips that course and continues with the rest.
func (s *questionServiceImpl) GenerateQuestions(ctx context.Context, courseCode string, numQuestions int) (int, error) {
	if numQuestions <= 0 {
		return 0, fmt.Errorf("%w: number of questions must be positive", apperrors.ErrValidationFailed)
	}

	var courses []*models.Course
	if courseCode != "" {
		course, err := s.courseRepo.GetCourseByCode(ctx, courseCode)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrCourseNotFound) {
				return 0, apperrors.ErrCourseNotFound
			}
			return 0, fmt.Errorf("error resolving course: %w", err)
		}
		courses = []*models.Course{course}
	} else {
		all, err := s.courseRepo.GetAllCourses(ctx)
		if err != nil {
			return 0, fmt.Errorf("error listing courses: %w", err)
		}
		courses = all
	}

	template, err := s.templates.Load(prompt.QuestionTemplate)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, course := range courses {
		count, err := s.generateForCourse(ctx, template, course, numQuestions)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrCompletionFailed) {
				s.logger.Error().Err(err).Str("courseCode", course.Code).Msg("Completion failed, skipping course")
				continue
			}
			return inserted, err
		}
		inserted += count
	}

	return inserted, nil
}

func (s *questionServiceImpl) generateForCourse(ctx context.Context, template string, course *models.Course, numQuestions int) (int, error) {
	posts, err := s.postRepo.GetPostsByCourseID(ctx, course.ID)
	if err != nil {
		return 0, fmt.Errorf("error retrieving posts for course %s: %w", course.Code, err)
	}

	existing, err := s.questionRepo.GetQuestionsByCourseID(ctx, course.ID)
	if err != nil {
		return 0, fmt.Errorf("error retrieving existing questions for course %s: %w", course.Code, err)
	}

	reviews := make([]prompt.Review, 0, len(posts))
	for _, post := range posts {
		reviews = append(reviews, prompt.Review{Text: post.Content})
	}

	existingTexts := make([]string, 0, len(existing))
	for _, question := range existing {
		existingTexts = append(existingTexts, question.QuestionText)
	}

	description := ""
	if course.Description != nil {
		description = *course.Description
	}

	rendered, err := prompt.Render(template, map[string]string{
		"course_name":        course.Name,
		"course_description": description,
		"existing_questions": prompt.FormatList(existingTexts),
		"reviews":            prompt.FormatReviews(reviews),
		"num_questions":      strconv.Itoa(numQuestions),
	})
	if err != nil {
		return 0, err
	}

	generation, err := s.completer.Complete(ctx, rendered)
	if err != nil {
		return 0, err
	}

	texts := splitNumberedQuestions(generation)
	if len(texts) == 0 {
		s.logger.Warn().Str("courseCode", course.Code).Msg("Model response contained no parsable questions")
		return 0, nil
	}

	questions := make([]*models.AIQuestion, 0, len(texts))
	for _, text := range texts {
		questions = append(questions, &models.AIQuestion{
			CourseID:     course.ID,
			QuestionText: text,
			IsActive:     true,
		})
	}

	if err := s.questionRepo.CreateQuestions(ctx, questions); err != nil {
		return 0, fmt.Errorf("error storing questions for course %s: %w", course.Code, err)
	}

	s.logger.Info().Str("courseCode", course.Code).Int("count", len(questions)).Msg("Generated prompting questions")
	return len(questions), nil
}

var numberedItemPattern = regexp.MustCompile(`\n?\s*\d+\.\s*`)

// splitNumberedQuestions splits a numbered model response ("1. ...",
// "2. ...") into cleaned questions. Each entry is truncated after its
// first question mark; entries without one get a trailing "?" appended.
func splitNumberedQuestions(text string) []string {
	parts := numberedItemPattern.Split(text, -1)

	questions := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		truncated := strings.TrimSpace(strings.SplitN(part, "?", 2)[0]) + "?"
		questions = append(questions, truncated)
	}

	return questions
}
