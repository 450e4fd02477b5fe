package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"coursepulse/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository      *CourseRepository
	PostRepository        *PostRepository
	SummaryRepository     *SummaryRepository
	AIQuestionRepository  *AIQuestionRepository
	InteractionRepository *InteractionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		CourseRepository:      NewCourseRepository(database.Pool),
		PostRepository:        NewPostRepository(database.Pool),
		SummaryRepository:     NewSummaryRepository(database.Pool),
		AIQuestionRepository:  NewAIQuestionRepository(database),
		InteractionRepository: NewInteractionRepository(database.Pool),
	}
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation.
func isForeignKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503" // foreign_key_violation
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation error.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}
