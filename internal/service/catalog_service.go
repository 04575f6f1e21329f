package service

import (
	"context"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
)

// catalogService is the concrete implementation of CatalogService
type catalogService struct {
	topics repository.TopicRepository
	users  repository.UserRepository
}

// newCatalogService creates a new CatalogService
func newCatalogService(topics repository.TopicRepository, users repository.UserRepository) *catalogService {
	return &catalogService{topics: topics, users: users}
}

// ListTopics returns every topic
func (s *catalogService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	return s.topics.List(ctx)
}

// ListUsers returns every user
func (s *catalogService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}
