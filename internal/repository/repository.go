package repository

import (
	"context"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// Lookups return (nil, nil) when the row does not exist; callers decide
// whether absence is an error.

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	GetByID(ctx context.Context, id int64) (*models.ArticleWithCount, error)
	List(ctx context.Context, q ArticleListQuery) ([]models.ArticleSummary, error)
	IncrementVotes(ctx context.Context, id int64, delta int64) (*models.Article, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error)
	Create(ctx context.Context, articleID int64, author, body string) (*models.Comment, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	GetBySlug(ctx context.Context, slug string) (*models.Topic, error)
	List(ctx context.Context) ([]models.Topic, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article ArticleRepository
	Comment CommentRepository
	Topic   TopicRepository
	User    UserRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
		Topic:   NewTopicRepo(db),
		User:    NewUserRepo(db),
	}
}
