package service

import (
	"context"
	"fmt"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
)

// resolver maps entity keys onto entities, turning absence into a NotFound failure
type resolver struct {
	repos *repository.Repositories
}

func newResolver(repos *repository.Repositories) *resolver {
	return &resolver{repos: repos}
}

// Article resolves an article id
func (r *resolver) Article(ctx context.Context, id models.ID) (*models.ArticleWithCount, error) {
	article, err := r.repos.Article.GetByID(ctx, id.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to get article %s: %w", id, err)
	}
	if article == nil {
		return nil, articleNotFound(id)
	}
	return article, nil
}

// User resolves a username
func (r *resolver) User(ctx context.Context, username string) (*models.User, error) {
	user, err := r.repos.User.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %q: %w", username, err)
	}
	if user == nil {
		return nil, apperror.NotFound("Author '%s' not found", username)
	}
	return user, nil
}

// Topic resolves a topic slug
func (r *resolver) Topic(ctx context.Context, slug string) (*models.Topic, error) {
	topic, err := r.repos.Topic.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get topic %q: %w", slug, err)
	}
	if topic == nil {
		return nil, apperror.NotFound("Topic '%s' not found", slug)
	}
	return topic, nil
}

// Comment resolves a comment id
func (r *resolver) Comment(ctx context.Context, id models.ID) (*models.Comment, error) {
	comment, err := r.repos.Comment.GetByID(ctx, id.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to get comment %s: %w", id, err)
	}
	if comment == nil {
		return nil, commentNotFound(id)
	}
	return comment, nil
}

// NotFound messages echo the id as the client wrote it
func articleNotFound(id models.ID) error {
	return apperror.NotFound("Article %s not found", id)
}

func commentNotFound(id models.ID) error {
	return apperror.NotFound("Comment '%s' not found", id)
}
