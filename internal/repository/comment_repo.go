package repository

import (
	"context"
	"database/sql"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// GetByID retrieves a comment by ID
func (r *commentRepo) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	query := `SELECT comment_id, article_id, author, body, votes, created_at FROM comments WHERE comment_id = $1`

	var comment models.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.CommentID, &comment.ArticleID, &comment.Author, &comment.Body,
		&comment.Votes, &comment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// ListByArticle returns an article's comments, oldest id first
func (r *commentRepo) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	query := `
		SELECT comment_id, votes, created_at, author, body
		FROM comments
		WHERE article_id = $1
		ORDER BY comment_id ASC
	`
	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(
			&comment.CommentID, &comment.Votes, &comment.CreatedAt, &comment.Author, &comment.Body,
		); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}

	return comments, rows.Err()
}

// Create inserts a new comment; votes and created_at come from column defaults
func (r *commentRepo) Create(ctx context.Context, articleID int64, author, body string) (*models.Comment, error) {
	query := `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, article_id, author, body, votes, created_at
	`

	var comment models.Comment
	err := r.db.QueryRowContext(ctx, query, articleID, author, body).Scan(
		&comment.CommentID, &comment.ArticleID, &comment.Author, &comment.Body,
		&comment.Votes, &comment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// Delete removes a comment and reports whether a row was deleted
func (r *commentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE comment_id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
