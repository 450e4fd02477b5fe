package models

// Post represents a user-submitted course review, optionally written as
// the answer to an AI-generated prompting question.
type Post struct {
	ID           int64  `json:"id" db:"id"`
	CourseID     int64  `json:"courseId" db:"course_id"`
	Content      string `json:"content" db:"content"`
	AIQuestionID *int64 `json:"aiQuestionId,omitempty" db:"ai_question_id"` // Nullable

	// QuestionText is populated by the ai_questions left join when the
	// post answers a generated question.
	QuestionText *string `json:"questionText,omitempty" db:"question_text"`
}
