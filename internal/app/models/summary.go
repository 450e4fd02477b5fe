package models

// Summary is an externally generated text summary of one course's reviews.
type Summary struct {
	ID       int64  `json:"id" db:"id"`
	CourseID int64  `json:"courseId" db:"course_id"`
	Text     string `json:"text" db:"text"`
}
