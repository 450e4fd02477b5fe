package models

import "time"

// AIQuestion is a model-generated prompting question shown to users to
// elicit structured reviews for one course.
type AIQuestion struct {
	ID           int64     `json:"id" db:"id"`
	CourseID     int64     `json:"courseId" db:"course_id"`
	QuestionText string    `json:"questionText" db:"question_text"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
