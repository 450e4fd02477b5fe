package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"coursepulse/internal/pkg/apperrors"
)

// Template names shipped in the prompts directory.
const (
	AnswerTemplate   = "answer_prompt.txt"
	QuestionTemplate = "question_prompt.txt"
)

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// Loader reads prompt templates from a directory on disk, so prompts can
// be tuned without a rebuild.
type Loader struct {
	dir string
}

// NewLoader creates a Loader rooted at dir
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Load reads one named template. A missing file is reported as
// ErrTemplateNotFound so callers can distinguish it from render errors.
func (l *Loader) Load(name string) (string, error) {
	path := filepath.Join(l.dir, name)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", apperrors.ErrTemplateNotFound, path)
		}
		return "", fmt.Errorf("failed to read template %s: %w", path, err)
	}

	return string(content), nil
}

// Render substitutes every {name} placeholder in the template with its
// value. A placeholder without a supplied value fails with
// ErrMissingPlaceholder instead of surviving as dead text in the prompt.
func Render(template string, values map[string]string) (string, error) {
	for _, match := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		if _, ok := values[match[1]]; !ok {
			return "", fmt.Errorf("%w: %s", apperrors.ErrMissingPlaceholder, match[1])
		}
	}

	rendered := placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		name := placeholderPattern.FindStringSubmatch(token)[1]
		return values[name]
	})

	return rendered, nil
}
