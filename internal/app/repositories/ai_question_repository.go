package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"coursepulse/internal/app/models"
	"coursepulse/internal/db"
	"coursepulse/internal/pkg/logger"
)

// AIQuestionRepository handles generated prompting question operations.
// It holds the PostgresDB wrapper rather than the bare pool because the
// question generation job inserts each course's batch in one transaction.
type AIQuestionRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewAIQuestionRepository creates a new AIQuestionRepository
func NewAIQuestionRepository(database *db.PostgresDB) *AIQuestionRepository {
	return &AIQuestionRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetQuestionsByCourseID retrieves all generated questions for one course
func (r *AIQuestionRepository) GetQuestionsByCourseID(ctx context.Context, courseID int64) ([]*models.AIQuestion, error) {
	sql, args, err := r.sb.Select("id", "course_id", "question_text", "is_active", "created_at").
		From("ai_questions").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get questions by course SQL")
		return nil, fmt.Errorf("failed to build get questions query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing get questions query")
		return nil, fmt.Errorf("error querying questions for course: %w", err)
	}
	defer rows.Close()

	questions := []*models.AIQuestion{}
	for rows.Next() {
		question := &models.AIQuestion{}
		if err := rows.Scan(&question.ID, &question.CourseID, &question.QuestionText, &question.IsActive, &question.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning question row")
			return nil, fmt.Errorf("error scanning question row: %w", err)
		}
		questions = append(questions, question)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating question rows")
		return nil, fmt.Errorf("error iterating question rows: %w", err)
	}

	return questions, nil
}

// CreateQuestions inserts a batch of generated questions for one course
// atomically. A partial batch from a half-parsed model response would
// skew later generation runs, so it is all or nothing.
func (r *AIQuestionRepository) CreateQuestions(ctx context.Context, questions []*models.AIQuestion) error {
	if len(questions) == 0 {
		return nil
	}

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, question := range questions {
			createdAt := question.CreatedAt
			if createdAt.IsZero() {
				createdAt = time.Now()
			}

			sql, args, err := r.sb.Insert("ai_questions").
				Columns("course_id", "question_text", "is_active", "created_at").
				Values(question.CourseID, question.QuestionText, question.IsActive, createdAt).
				Suffix("RETURNING id").
				ToSql()

			if err != nil {
				logger.Error().Err(err).Msg("Error building create question SQL")
				return fmt.Errorf("failed to build create question query: %w", err)
			}

			if err := tx.QueryRow(ctx, sql, args...).Scan(&question.ID); err != nil {
				if isForeignKeyError(err) {
					return fmt.Errorf("question references missing course %d: %w", question.CourseID, err)
				}
				logger.Error().Err(err).Int64("courseID", question.CourseID).Msg("Error executing create question query")
				return fmt.Errorf("error creating question: %w", err)
			}
		}
		return nil
	})
}
