package prompt

import (
	"fmt"
	"strings"
)

// Review is one course review ready for prompt inclusion. Question holds
// the AI prompting question the review answers, or "" for a free-form post.
type Review struct {
	Question string
	Text     string
}

// FormatReviews renders reviews as a bulleted block, one line per review,
// input order preserved. Empty input yields an empty block.
func FormatReviews(reviews []Review) string {
	lines := make([]string, 0, len(reviews))
	for _, review := range reviews {
		if review.Question != "" {
			lines = append(lines, fmt.Sprintf("- Question: %q Answer: %q", review.Question, review.Text))
		} else {
			lines = append(lines, "- "+review.Text)
		}
	}
	return strings.Join(lines, "\n")
}

// FormatList renders plain strings as a bulleted block. Used for the
// existing-questions section of the generation prompt.
func FormatList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}
