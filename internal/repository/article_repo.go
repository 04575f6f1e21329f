package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// GetByID retrieves an article with its comment count
func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.ArticleWithCount, error) {
	query := `
		SELECT u.username AS author, a.title, a.article_id, a.body, a.topic, a.created_at, a.votes,
			COUNT(c.comment_id)::int AS comment_count
		FROM articles a
		INNER JOIN users u ON a.author = u.username
		LEFT JOIN comments c ON a.article_id = c.article_id
		WHERE a.article_id = $1
		GROUP BY u.username, a.title, a.article_id, a.body, a.topic, a.created_at, a.votes
	`

	var article models.ArticleWithCount
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&article.Author, &article.Title, &article.ArticleID, &article.Body, &article.Topic,
		&article.CreatedAt, &article.Votes, &article.CommentCount,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &article, nil
}

// List runs the aggregated article listing
func (r *articleRepo) List(ctx context.Context, q ArticleListQuery) ([]models.ArticleSummary, error) {
	query, args, err := BuildArticleListQuery(q)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles := make([]models.ArticleSummary, 0)
	for rows.Next() {
		var a models.ArticleSummary
		if err := rows.Scan(
			&a.Author, &a.Title, &a.ArticleID, &a.Topic, &a.CreatedAt, &a.Votes, &a.CommentCount,
		); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	return articles, rows.Err()
}

// IncrementVotes adds delta to the article's votes in a single statement
func (r *articleRepo) IncrementVotes(ctx context.Context, id int64, delta int64) (*models.Article, error) {
	query := `
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, title, topic, author, body, created_at, votes
	`

	var article models.Article
	err := r.db.QueryRowContext(ctx, query, delta, id).Scan(
		&article.ArticleID, &article.Title, &article.Topic, &article.Author, &article.Body,
		&article.CreatedAt, &article.Votes,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &article, nil
}
