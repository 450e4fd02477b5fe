package services

// CourseCodeIndex is the in-memory course code to identifier mapping,
// built once at process start and read-only afterwards, so concurrent
// requests need no locking. Courses ingested after startup are invisible
// to code-based lookups until restart.
type CourseCodeIndex struct {
	codeToID map[string]int64
}

// NewCourseCodeIndex creates the index from a code to id mapping
func NewCourseCodeIndex(codeToID map[string]int64) *CourseCodeIndex {
	if codeToID == nil {
		codeToID = map[string]int64{}
	}
	return &CourseCodeIndex{codeToID: codeToID}
}

// Lookup resolves a course code to its internal identifier
func (i *CourseCodeIndex) Lookup(code string) (int64, bool) {
	id, ok := i.codeToID[code]
	return id, ok
}

// Len returns the number of indexed courses
func (i *CourseCodeIndex) Len() int {
	return len(i.codeToID)
}
