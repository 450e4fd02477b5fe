package dto

// AskQuestionRequest is the body of POST /ai_interaction.
type AskQuestionRequest struct {
	UserID     *string `json:"user_id,omitempty" example:"3f1f8a52-8f07-4a8e-9d2b-64c6b1f0a111"`
	CourseCode string  `json:"course_code" binding:"required" example:"CS101"`
	Question   string  `json:"question" binding:"required" example:"Is the workload manageable?"`
}

// AskQuestionResponse carries the generated answer back to the caller.
type AskQuestionResponse struct {
	Answer string `json:"answer" example:"Most reviews describe the workload as around 10h/week."`
}
