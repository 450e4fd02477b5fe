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

// PostRepository handles post (review) database operations. Every read
// left-joins ai_questions so a post carries the text of the prompting
// question it answers, when there is one.
type PostRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *PostRepository) selectWithQuestion() squirrel.SelectBuilder {
	return r.sb.Select("p.id", "p.course_id", "p.content", "p.ai_question_id", "q.question_text").
		From("posts p").
		LeftJoin("ai_questions q ON q.id = p.ai_question_id")
}

func (r *PostRepository) scanPosts(rows pgx.Rows) ([]*models.Post, error) {
	defer rows.Close()

	posts := []*models.Post{}
	for rows.Next() {
		post := &models.Post{}
		if err := rows.Scan(&post.ID, &post.CourseID, &post.Content, &post.AIQuestionID, &post.QuestionText); err != nil {
			logger.Error().Err(err).Msg("Error scanning post row")
			return nil, fmt.Errorf("error scanning post row: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating post rows")
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, nil
}

// GetAllPosts retrieves all posts with their optional AI question text
func (r *PostRepository) GetAllPosts(ctx context.Context) ([]*models.Post, error) {
	sql, args, err := r.selectWithQuestion().
		OrderBy("p.id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all posts SQL")
		return nil, fmt.Errorf("failed to build get all posts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all posts query")
		return nil, fmt.Errorf("error querying posts: %w", err)
	}

	return r.scanPosts(rows)
}

// GetPostsByCourseID retrieves all posts for one course, submission order preserved
func (r *PostRepository) GetPostsByCourseID(ctx context.Context, courseID int64) ([]*models.Post, error) {
	sql, args, err := r.selectWithQuestion().
		Where(squirrel.Eq{"p.course_id": courseID}).
		OrderBy("p.id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get posts by course SQL")
		return nil, fmt.Errorf("failed to build get posts by course query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing get posts by course query")
		return nil, fmt.Errorf("error querying posts for course: %w", err)
	}

	return r.scanPosts(rows)
}

// CreatePost inserts a post row. Used by the dev seed; production posts
// come from user submissions on the frontend.
func (r *PostRepository) CreatePost(ctx context.Context, post *models.Post) (int64, error) {
	sql, args, err := r.sb.Insert("posts").
		Columns("course_id", "content", "ai_question_id").
		Values(post.CourseID, post.Content, post.AIQuestionID).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create post SQL")
		return 0, fmt.Errorf("failed to build create post query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isForeignKeyError(err) {
			return 0, fmt.Errorf("post references missing course %d: %w", post.CourseID, err)
		}
		logger.Error().Err(err).Msg("Error executing create post query")
		return 0, fmt.Errorf("error creating post: %w", err)
	}

	return id, nil
}
