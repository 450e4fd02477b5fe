package dto

import "coursepulse/internal/app/models"

// PostQuestion is the optional nested AI question a post answers.
type PostQuestion struct {
	QuestionText string `json:"question_text" example:"What is the weekly workload?"`
}

// PostResponse is one review, with the prompting question attached when
// the post was written as an answer to one.
type PostResponse struct {
	ID         int64         `json:"id" example:"12"`
	CourseID   int64         `json:"courseId" example:"1"`
	Content    string        `json:"content" example:"Great course, tough exam."`
	AIQuestion *PostQuestion `json:"ai_questions,omitempty"`
}

// NewPostResponse maps a post model onto its response shape
func NewPostResponse(post *models.Post) PostResponse {
	resp := PostResponse{
		ID:       post.ID,
		CourseID: post.CourseID,
		Content:  post.Content,
	}
	if post.QuestionText != nil {
		resp.AIQuestion = &PostQuestion{QuestionText: *post.QuestionText}
	}
	return resp
}

// NewPostListResponse maps a post slice onto response shapes
func NewPostListResponse(posts []*models.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		out = append(out, NewPostResponse(post))
	}
	return out
}
