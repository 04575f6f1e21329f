package mocks

import (
	"context"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
)

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	GetArticleFunc   func(ctx context.Context, id models.ID) (*models.ArticleWithCount, error)
	ListArticlesFunc func(ctx context.Context, params service.ListArticlesParams) ([]models.ArticleSummary, error)
	UpdateVotesFunc  func(ctx context.Context, id models.ID, delta int64) (*models.Article, error)
}

// Verify interface compliance
var _ service.ArticleService = (*MockArticleService)(nil)

func (m *MockArticleService) GetArticle(ctx context.Context, id models.ID) (*models.ArticleWithCount, error) {
	if m.GetArticleFunc != nil {
		return m.GetArticleFunc(ctx, id)
	}
	return &models.ArticleWithCount{Article: models.Article{ArticleID: id.Value}}, nil
}

func (m *MockArticleService) ListArticles(ctx context.Context, params service.ListArticlesParams) ([]models.ArticleSummary, error) {
	if m.ListArticlesFunc != nil {
		return m.ListArticlesFunc(ctx, params)
	}
	return []models.ArticleSummary{}, nil
}

func (m *MockArticleService) UpdateVotes(ctx context.Context, id models.ID, delta int64) (*models.Article, error) {
	if m.UpdateVotesFunc != nil {
		return m.UpdateVotesFunc(ctx, id, delta)
	}
	return &models.Article{ArticleID: id.Value, Votes: int(delta)}, nil
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	ListByArticleFunc func(ctx context.Context, articleID models.ID) ([]models.Comment, error)
	CreateFunc        func(ctx context.Context, articleID models.ID, username, body string) (*models.Comment, error)
	DeleteFunc        func(ctx context.Context, commentID models.ID) error
	DeletedIDs        []int64
}

// Verify interface compliance
var _ service.CommentService = (*MockCommentService)(nil)

func (m *MockCommentService) ListByArticle(ctx context.Context, articleID models.ID) ([]models.Comment, error) {
	if m.ListByArticleFunc != nil {
		return m.ListByArticleFunc(ctx, articleID)
	}
	return []models.Comment{}, nil
}

func (m *MockCommentService) Create(ctx context.Context, articleID models.ID, username, body string) (*models.Comment, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, articleID, username, body)
	}
	return &models.Comment{CommentID: 1, ArticleID: articleID.Value, Author: username, Body: body}, nil
}

func (m *MockCommentService) Delete(ctx context.Context, commentID models.ID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, commentID)
	}
	m.DeletedIDs = append(m.DeletedIDs, commentID.Value)
	return nil
}

// MockCatalogService is a mock implementation of CatalogService
type MockCatalogService struct {
	Topics []models.Topic
	Users  []models.User
	Err    error
}

// Verify interface compliance
var _ service.CatalogService = (*MockCatalogService)(nil)

func (m *MockCatalogService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]models.Topic{}, m.Topics...), nil
}

func (m *MockCatalogService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]models.User{}, m.Users...), nil
}

// NewMockServices bundles fresh mock services
func NewMockServices() (*service.Services, *MockArticleService, *MockCommentService, *MockCatalogService) {
	articles := &MockArticleService{}
	comments := &MockCommentService{}
	catalog := &MockCatalogService{}
	return &service.Services{
		Article: articles,
		Comment: comments,
		Catalog: catalog,
	}, articles, comments, catalog
}
