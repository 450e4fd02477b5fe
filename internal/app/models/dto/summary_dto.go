package dto

import "coursepulse/internal/app/models"

// SummaryResponse is one externally generated course summary.
type SummaryResponse struct {
	ID       int64  `json:"id" example:"3"`
	CourseID int64  `json:"courseId" example:"1"`
	Text     string `json:"text"`
}

// NewSummaryListResponse maps a summary slice onto response shapes
func NewSummaryListResponse(summaries []*models.Summary) []SummaryResponse {
	out := make([]SummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		out = append(out, SummaryResponse{
			ID:       summary.ID,
			CourseID: summary.CourseID,
			Text:     summary.Text,
		})
	}
	return out
}
