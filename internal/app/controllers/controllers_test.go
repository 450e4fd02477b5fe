package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"coursepulse/internal/app/models"
	"coursepulse/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeCourseService struct {
	courses []*models.Course
	byCode  map[string]*models.Course
	err     error
}

func (f *fakeCourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return f.courses, f.err
}

func (f *fakeCourseService) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	if course, ok := f.byCode[code]; ok {
		return course, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

type fakePostService struct {
	posts  []*models.Post
	byCode map[string][]*models.Post
	err    error
}

func (f *fakePostService) GetAllPosts(ctx context.Context) ([]*models.Post, error) {
	return f.posts, f.err
}

func (f *fakePostService) GetPostsByCourseCode(ctx context.Context, code string) ([]*models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	if posts, ok := f.byCode[code]; ok {
		return posts, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

type fakeSummaryService struct {
	summaries []*models.Summary
	byCode    map[string][]*models.Summary
	err       error
}

func (f *fakeSummaryService) GetAllSummaries(ctx context.Context) ([]*models.Summary, error) {
	return f.summaries, f.err
}

func (f *fakeSummaryService) GetSummariesByCourseCode(ctx context.Context, code string) ([]*models.Summary, error) {
	if f.err != nil {
		return nil, f.err
	}
	if summaries, ok := f.byCode[code]; ok {
		return summaries, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

type fakeChatService struct {
	answer string
	err    error
}

func (f *fakeChatService) AnswerQuestion(ctx context.Context, question, courseCode string, userID *string) (string, error) {
	return f.answer, f.err
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response %q: %v", recorder.Body.String(), err)
	}
	return body
}

func strp(s string) *string { return &s }

func TestGetCourses_ListAndFilter(t *testing.T) {
	course := &models.Course{ID: 1, Code: "CS101", Name: "Intro to CS"}
	controller := NewCourseController(&fakeCourseService{
		courses: []*models.Course{course},
		byCode:  map[string]*models.Course{"CS101": course},
	})
	router := gin.New()
	router.GET("/api/v1/courses", controller.GetCourses)

	recorder := performRequest(router, http.MethodGet, "/api/v1/courses", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	body := decodeBody(t, recorder)
	if _, ok := body["data"].([]any); !ok {
		t.Fatalf("expected data array, got %v", body["data"])
	}

	recorder = performRequest(router, http.MethodGet, "/api/v1/courses?course_code=CS101", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	body = decodeBody(t, recorder)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected single course object, got %v", body["data"])
	}
	if data["code"] != "CS101" {
		t.Fatalf("unexpected course payload: %v", data)
	}
}

func TestGetCourses_EmptyTableAndUnmatchedFilterBothAnswer404(t *testing.T) {
	controller := NewCourseController(&fakeCourseService{})
	router := gin.New()
	router.GET("/api/v1/courses", controller.GetCourses)

	for _, path := range []string{"/api/v1/courses", "/api/v1/courses?course_code=NOPE999"} {
		recorder := performRequest(router, http.MethodGet, path, "")
		if recorder.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d: %s", path, recorder.Code, recorder.Body.String())
		}
		body := decodeBody(t, recorder)
		if body["error"] == nil {
			t.Fatalf("%s: expected error detail in body: %s", path, recorder.Body.String())
		}
	}
}

func TestGetPosts_CarriesQuestionText(t *testing.T) {
	posts := []*models.Post{
		{ID: 1, CourseID: 1, Content: "free-form review"},
		{ID: 2, CourseID: 1, Content: "answered review", QuestionText: strp("Was it hard?")},
	}
	controller := NewPostController(&fakePostService{posts: posts})
	router := gin.New()
	router.GET("/api/v1/posts", controller.GetPosts)

	recorder := performRequest(router, http.MethodGet, "/api/v1/posts", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	body := decodeBody(t, recorder)
	data, ok := body["data"].([]any)
	if !ok || len(data) != 2 {
		t.Fatalf("expected two posts, got %v", body["data"])
	}

	plain := data[0].(map[string]any)
	if _, present := plain["ai_questions"]; present {
		t.Fatalf("free-form post must omit ai_questions: %v", plain)
	}
	answered := data[1].(map[string]any)
	nested, ok := answered["ai_questions"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested ai_questions object: %v", answered)
	}
	if nested["question_text"] != "Was it hard?" {
		t.Fatalf("unexpected question text: %v", nested)
	}
}

func TestGetPosts_UnknownCourse404(t *testing.T) {
	controller := NewPostController(&fakePostService{byCode: map[string][]*models.Post{}})
	router := gin.New()
	router.GET("/api/v1/posts", controller.GetPosts)

	recorder := performRequest(router, http.MethodGet, "/api/v1/posts?course_code=NOPE999", "")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestGetSummaries_EmptyAnswers404(t *testing.T) {
	controller := NewSummaryController(&fakeSummaryService{
		byCode: map[string][]*models.Summary{"CS101": {}},
	})
	router := gin.New()
	router.GET("/api/v1/summaries", controller.GetSummaries)

	recorder := performRequest(router, http.MethodGet, "/api/v1/summaries?course_code=CS101", "")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a course without summaries, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestGetSummaries_List(t *testing.T) {
	controller := NewSummaryController(&fakeSummaryService{
		summaries: []*models.Summary{{ID: 1, CourseID: 1, Text: "Overall positive."}},
	})
	router := gin.New()
	router.GET("/api/v1/summaries", controller.GetSummaries)

	recorder := performRequest(router, http.MethodGet, "/api/v1/summaries", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestAskQuestion_Success(t *testing.T) {
	controller := NewChatController(&fakeChatService{answer: "Mostly manageable."})
	router := gin.New()
	router.POST("/api/v1/ai_interaction", controller.AskQuestion)

	recorder := performRequest(router, http.MethodPost, "/api/v1/ai_interaction",
		`{"course_code":"CS101","question":"Is the workload manageable?"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	body := decodeBody(t, recorder)
	data, ok := body["data"].(map[string]any)
	if !ok || data["answer"] != "Mostly manageable." {
		t.Fatalf("unexpected body: %s", recorder.Body.String())
	}
}

func TestAskQuestion_MissingFields400(t *testing.T) {
	controller := NewChatController(&fakeChatService{answer: "unused"})
	router := gin.New()
	router.POST("/api/v1/ai_interaction", controller.AskQuestion)

	recorder := performRequest(router, http.MethodPost, "/api/v1/ai_interaction", `{"question":"no course"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestAskQuestion_ServiceErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound},
		{"no reviews", apperrors.ErrNoReviewsFound, http.StatusNotFound},
		{"template missing", apperrors.ErrTemplateNotFound, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		controller := NewChatController(&fakeChatService{err: tc.err})
		router := gin.New()
		router.POST("/api/v1/ai_interaction", controller.AskQuestion)

		recorder := performRequest(router, http.MethodPost, "/api/v1/ai_interaction",
			`{"course_code":"CS101","question":"Is it hard?"}`)
		if recorder.Code != tc.status {
			t.Fatalf("%s: expected %d, got %d: %s", tc.name, tc.status, recorder.Code, recorder.Body.String())
		}
	}
}
