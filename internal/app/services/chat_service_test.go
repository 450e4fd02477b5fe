package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"coursepulse/internal/app/models"
	"coursepulse/internal/pkg/apperrors"
	"coursepulse/internal/pkg/prompt"
)

type fakeCourseReader struct {
	course *models.Course
	err    error
}

func (f *fakeCourseReader) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.course, nil
}

type fakePostReader struct {
	posts []*models.Post
	err   error
}

func (f *fakePostReader) GetPostsByCourseID(ctx context.Context, courseID int64) ([]*models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.posts, nil
}

type fakeInteractionWriter struct {
	err   error
	saved []*models.Interaction
}

func (f *fakeInteractionWriter) CreateInteraction(ctx context.Context, interaction *models.Interaction) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.saved = append(f.saved, interaction)
	return int64(len(f.saved)), nil
}

type fakeCompleter struct {
	answer  string
	err     error
	prompts []string
}

func (f *fakeCompleter) Complete(ctx context.Context, p string) (string, error) {
	f.prompts = append(f.prompts, p)
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func testTemplates(t *testing.T) *prompt.Loader {
	t.Helper()
	dir := t.TempDir()
	answer := "Course: {course_name}\nQuestion: {question}\nReviews:\n{reviews}"
	if err := os.WriteFile(filepath.Join(dir, prompt.AnswerTemplate), []byte(answer), 0o644); err != nil {
		t.Fatalf("writing answer template: %v", err)
	}
	return prompt.NewLoader(dir)
}

func strp(s string) *string { return &s }

func newTestChatService(
	codes *CourseCodeIndex,
	courses *fakeCourseReader,
	posts *fakePostReader,
	interactions *fakeInteractionWriter,
	completer *fakeCompleter,
	templates *prompt.Loader,
) ChatService {
	return NewChatService(codes, courses, posts, interactions, templates, completer, zerolog.Nop())
}

func TestAnswerQuestion_UnknownCourseCode(t *testing.T) {
	completer := &fakeCompleter{answer: "unused"}
	svc := newTestChatService(
		NewCourseCodeIndex(map[string]int64{"CS101": 1}),
		&fakeCourseReader{},
		&fakePostReader{},
		&fakeInteractionWriter{},
		completer,
		testTemplates(t),
	)

	_, err := svc.AnswerQuestion(context.Background(), "Is it hard?", "NOPE999", nil)
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
	if len(completer.prompts) != 0 {
		t.Fatalf("completer must not be invoked for an unknown course")
	}
}

func TestAnswerQuestion_EmptyQuestionFailsValidation(t *testing.T) {
	svc := newTestChatService(
		NewCourseCodeIndex(map[string]int64{"CS101": 1}),
		&fakeCourseReader{},
		&fakePostReader{},
		&fakeInteractionWriter{},
		&fakeCompleter{},
		testTemplates(t),
	)

	_, err := svc.AnswerQuestion(context.Background(), "   ", "CS101", nil)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
}

func TestAnswerQuestion_NoReviews(t *testing.T) {
	svc := newTestChatService(
		NewCourseCodeIndex(map[string]int64{"CS101": 1}),
		&fakeCourseReader{course: &models.Course{ID: 1, Code: "CS101", Name: "Intro to CS"}},
		&fakePostReader{posts: nil},
		&fakeInteractionWriter{},
		&fakeCompleter{answer: "unused"},
		testTemplates(t),
	)

	_, err := svc.AnswerQuestion(context.Background(), "Is it hard?", "CS101", nil)
	if !errors.Is(err, apperrors.ErrNoReviewsFound) {
		t.Fatalf("expected ErrNoReviewsFound, got %v", err)
	}
}

func TestAnswerQuestion_PromptContainsCourseAndReviewsInOrder(t *testing.T) {
	posts := []*models.Post{
		{ID: 1, CourseID: 1, Content: "tough but rewarding"},
		{ID: 2, CourseID: 1, Content: "labs were the best part", QuestionText: strp("What did you enjoy most?")},
	}
	completer := &fakeCompleter{answer: "It is demanding but worth it."}
	interactions := &fakeInteractionWriter{}
	svc := newTestChatService(
		NewCourseCodeIndex(map[string]int64{"CS101": 1}),
		&fakeCourseReader{course: &models.Course{ID: 1, Code: "CS101", Name: "Intro to CS"}},
		&fakePostReader{posts: posts},
		interactions,
		completer,
		testTemplates(t),
	)

	answer, err := svc.AnswerQuestion(context.Background(), "Is it hard?", "CS101", strp("user-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "It is demanding but worth it." {
		t.Fatalf("unexpected answer: %q", answer)
	}

	if len(completer.prompts) != 1 {
		t.Fatalf("expected exactly one completion call, got %d", len(completer.prompts))
	}
	sent := completer.prompts[0]
	if !strings.Contains(sent, "Course: Intro to CS") {
		t.Fatalf("prompt missing course name: %q", sent)
	}
	if !strings.Contains(sent, "Question: Is it hard?") {
		t.Fatalf("prompt missing question: %q", sent)
	}
	first := strings.Index(sent, "- tough but rewarding")
	second := strings.Index(sent, `- Question: "What did you enjoy most?" Answer: "labs were the best part"`)
	if first < 0 || second < 0 {
		t.Fatalf("prompt missing review lines: %q", sent)
	}
	if first > second {
		t.Fatalf("reviews out of order in prompt: %q", sent)
	}

	if len(interactions.saved) != 1 {
		t.Fatalf("expected one persisted interaction, got %d", len(interactions.saved))
	}
	saved := interactions.saved[0]
	if saved.CourseID != 1 || saved.Question != "Is it hard?" || saved.Answer != answer {
		t.Fatalf("unexpected interaction: %+v", saved)
	}
	if saved.UserID == nil || *saved.UserID != "user-1" {
		t.Fatalf("user id not carried to interaction: %+v", saved.UserID)
	}
}

func TestAnswerQuestion_CompletionFailureBecomesAnswerText(t *testing.T) {
	completionErr := fmt.Errorf("%w: upstream timeout", apperrors.ErrCompletionFailed)
	interactions := &fakeInteractionWriter{}
	svc := newTestChatService(
		NewCourseCodeIndex(map[string]int64{"CS101": 1}),
		&fakeCourseReader{course: &models.Course{ID: 1, Code: "CS101", Name: "Intro to CS"}},
		&fakePostReader{posts: []*models.Post{{ID: 1, CourseID: 1, Content: "ok course"}}},
		interactions,
		&fakeCompleter{err: completionErr},
		testTemplates(t),
	)

	answer, err := svc.AnswerQuestion(context.Background(), "Is it hard?", "CS101", nil)
	if err != nil {
		t.Fatalf("completion failure must not surface as an error, got %v", err)
	}
	if !strings.HasPrefix(answer, "An error occurred while processing the reviews:") {
		t.Fatalf("unexpected failure answer: %q", answer)
	}
	if !strings.Contains(answer, "upstream timeout") {
		t.Fatalf("failure answer lost the cause: %q", answer)
	}
	if len(interactions.saved) != 1 {
		t.Fatalf("failure answer must still be persisted")
	}
}

func TestAnswerQuestion_PersistenceFailureStillReturnsAnswer(t *testing.T) {
	svc := newTestChatService(
		NewCourseCodeIndex(map[string]int64{"CS101": 1}),
		&fakeCourseReader{course: &models.Course{ID: 1, Code: "CS101", Name: "Intro to CS"}},
		&fakePostReader{posts: []*models.Post{{ID: 1, CourseID: 1, Content: "ok course"}}},
		&fakeInteractionWriter{err: fmt.Errorf("%w: insert failed", apperrors.ErrPersistenceFailed)},
		&fakeCompleter{answer: "A solid pick."},
		testTemplates(t),
	)

	answer, err := svc.AnswerQuestion(context.Background(), "Worth taking?", "CS101", nil)
	if err != nil {
		t.Fatalf("persistence failure must not surface as an error, got %v", err)
	}
	if answer != "A solid pick." {
		t.Fatalf("unexpected answer: %q", answer)
	}
}
