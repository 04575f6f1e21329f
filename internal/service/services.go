package service

import (
	"context"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/rs/zerolog"
)

// ArticleService defines the interface for article operations
type ArticleService interface {
	GetArticle(ctx context.Context, id models.ID) (*models.ArticleWithCount, error)
	ListArticles(ctx context.Context, params ListArticlesParams) ([]models.ArticleSummary, error)
	UpdateVotes(ctx context.Context, id models.ID, delta int64) (*models.Article, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	ListByArticle(ctx context.Context, articleID models.ID) ([]models.Comment, error)
	Create(ctx context.Context, articleID models.ID, username, body string) (*models.Comment, error)
	Delete(ctx context.Context, commentID models.ID) error
}

// CatalogService lists the reference data: topics and users
type CatalogService interface {
	ListTopics(ctx context.Context) ([]models.Topic, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// Services holds all service interfaces
type Services struct {
	Article ArticleService
	Comment CommentService
	Catalog CatalogService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	resolve := newResolver(repos)

	return &Services{
		Article: newArticleService(repos.Article, resolve, log),
		Comment: newCommentService(repos.Comment, resolve, log),
		Catalog: newCatalogService(repos.Topic, repos.User),
	}
}
