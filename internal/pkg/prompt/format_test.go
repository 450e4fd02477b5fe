package prompt

import (
	"strings"
	"testing"
)

func TestFormatReviews_OneLinePerReviewInOrder(t *testing.T) {
	reviews := []Review{
		{Text: "first review"},
		{Question: "Was the workload heavy?", Text: "yes, very"},
		{Text: "third review"},
	}

	got := FormatReviews(reviews)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), got)
	}
	if lines[0] != "- first review" {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if lines[1] != `- Question: "Was the workload heavy?" Answer: "yes, very"` {
		t.Fatalf("unexpected questioned line: %q", lines[1])
	}
	if lines[2] != "- third review" {
		t.Fatalf("unexpected third line: %q", lines[2])
	}
}

func TestFormatReviews_EmptyInput(t *testing.T) {
	if got := FormatReviews(nil); got != "" {
		t.Fatalf("expected empty block, got %q", got)
	}
}

func TestFormatList(t *testing.T) {
	got := FormatList([]string{"one", "two"})
	if got != "- one\n- two" {
		t.Fatalf("unexpected list block: %q", got)
	}
	if FormatList(nil) != "" {
		t.Fatalf("expected empty block for nil input")
	}
}
