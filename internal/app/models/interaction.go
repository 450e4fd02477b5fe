package models

import "time"

// Interaction is a persisted record of one question-answer exchange
// produced by the chat flow. Written once, never mutated.
type Interaction struct {
	ID        int64     `json:"id" db:"id"`
	UserID    *string   `json:"userId,omitempty" db:"user_id"` // Nullable, anonymous questions allowed
	CourseID  int64     `json:"courseId" db:"course_id"`
	Question  string    `json:"question" db:"question"`
	Answer    string    `json:"answer" db:"answer"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
