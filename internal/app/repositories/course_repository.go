package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coursepulse/internal/app/models"
	"coursepulse/internal/pkg/apperrors"
	"coursepulse/internal/pkg/logger"
)

// CourseRepository handles course database operations. Courses are
// written by the ingestion side; this service reads them, plus one
// insert used by the dev seed.
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAllCourses retrieves all courses ordered by code
func (r *CourseRepository) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.sb.Select("id", "code", "name", "description", "ects", "professor", "link").
		From("courses").
		OrderBy("code ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all courses SQL")
		return nil, fmt.Errorf("failed to build get all courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(&course.ID, &course.Code, &course.Name, &course.Description, &course.ECTS, &course.Professor, &course.Link); err != nil {
			logger.Error().Err(err).Msg("Error scanning course row during get all")
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course rows")
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// GetCourseByCode retrieves a course by its unique human-readable code
func (r *CourseRepository) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	sql, args, err := r.sb.Select("id", "code", "name", "description", "ects", "professor", "link").
		From("courses").
		Where(squirrel.Eq{"code": code}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by code SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course := &models.Course{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.Code, &course.Name, &course.Description, &course.ECTS, &course.Professor, &course.Link)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseCode", code).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by code: %w", err)
	}

	return course, nil
}

// GetCodeToIDMap loads the code to identifier mapping for all courses.
// Called once at startup to build the in-memory course code index.
func (r *CourseRepository) GetCodeToIDMap(ctx context.Context) (map[string]int64, error) {
	sql, args, err := r.sb.Select("code", "id").
		From("courses").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building code to id map SQL")
		return nil, fmt.Errorf("failed to build code to id map query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing code to id map query")
		return nil, fmt.Errorf("error querying course codes: %w", err)
	}
	defer rows.Close()

	codeToID := map[string]int64{}
	for rows.Next() {
		var code string
		var id int64
		if err := rows.Scan(&code, &id); err != nil {
			logger.Error().Err(err).Msg("Error scanning course code row")
			return nil, fmt.Errorf("error scanning course code row: %w", err)
		}
		codeToID[code] = id
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course code rows")
		return nil, fmt.Errorf("error iterating course code rows: %w", err)
	}

	return codeToID, nil
}

// CreateCourse inserts a course row. Used by the dev seed; production
// course rows come from the scraper import.
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("code", "name", "description", "ects", "professor", "link").
		Values(course.Code, course.Name, course.Description, course.ECTS, course.Professor, course.Link).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, fmt.Errorf("course with code %s already exists: %w", course.Code, err)
		}
		logger.Error().Err(err).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}
