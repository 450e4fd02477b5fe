package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"coursepulse/internal/app/models"
	"coursepulse/internal/pkg/apperrors"
	"coursepulse/internal/pkg/logger"
)

// InteractionRepository persists question-answer exchanges. Insert only;
// interactions are never updated or deleted by this service.
type InteractionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInteractionRepository creates a new InteractionRepository
func NewInteractionRepository(db *pgxpool.Pool) *InteractionRepository {
	return &InteractionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateInteraction inserts one interaction row. Failures surface to the
// caller; whether to mask them is the orchestrator's decision.
func (r *InteractionRepository) CreateInteraction(ctx context.Context, interaction *models.Interaction) (int64, error) {
	sql, args, err := r.sb.Insert("chatbot_interactions").
		Columns("user_id", "course_id", "question", "answer").
		Values(interaction.UserID, interaction.CourseID, interaction.Question, interaction.Answer).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create interaction SQL")
		return 0, fmt.Errorf("failed to build create interaction query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isForeignKeyError(err) {
			return 0, fmt.Errorf("%w: interaction references missing course %d", apperrors.ErrPersistenceFailed, interaction.CourseID)
		}
		logger.Error().Err(err).Int64("courseID", interaction.CourseID).Msg("Error executing create interaction query")
		return 0, fmt.Errorf("%w: %v", apperrors.ErrPersistenceFailed, err)
	}

	return id, nil
}
