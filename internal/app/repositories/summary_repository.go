package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coursepulse/internal/app/models"
	"coursepulse/internal/pkg/logger"
)

// SummaryRepository handles summary database operations. Summaries are
// produced offline; this service only reads them.
type SummaryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSummaryRepository creates a new SummaryRepository
func NewSummaryRepository(db *pgxpool.Pool) *SummaryRepository {
	return &SummaryRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *SummaryRepository) scanSummaries(rows pgx.Rows) ([]*models.Summary, error) {
	defer rows.Close()

	summaries := []*models.Summary{}
	for rows.Next() {
		summary := &models.Summary{}
		if err := rows.Scan(&summary.ID, &summary.CourseID, &summary.Text); err != nil {
			logger.Error().Err(err).Msg("Error scanning summary row")
			return nil, fmt.Errorf("error scanning summary row: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating summary rows")
		return nil, fmt.Errorf("error iterating summary rows: %w", err)
	}

	return summaries, nil
}

// GetAllSummaries retrieves all summaries
func (r *SummaryRepository) GetAllSummaries(ctx context.Context) ([]*models.Summary, error) {
	sql, args, err := r.sb.Select("id", "course_id", "text").
		From("summaries").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all summaries SQL")
		return nil, fmt.Errorf("failed to build get all summaries query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all summaries query")
		return nil, fmt.Errorf("error querying summaries: %w", err)
	}

	return r.scanSummaries(rows)
}

// GetSummariesByCourseID retrieves all summaries for one course
func (r *SummaryRepository) GetSummariesByCourseID(ctx context.Context, courseID int64) ([]*models.Summary, error) {
	sql, args, err := r.sb.Select("id", "course_id", "text").
		From("summaries").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get summaries by course SQL")
		return nil, fmt.Errorf("failed to build get summaries by course query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing get summaries by course query")
		return nil, fmt.Errorf("error querying summaries for course: %w", err)
	}

	return r.scanSummaries(rows)
}
