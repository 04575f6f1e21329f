package repository

import (
	"context"
	"database/sql"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// topicRepo is the concrete implementation of TopicRepository
type topicRepo struct {
	db *database.DB
}

// NewTopicRepo creates a new topic repository
func NewTopicRepo(db *database.DB) TopicRepository {
	return &topicRepo{db: db}
}

// GetBySlug retrieves a topic by slug
func (r *topicRepo) GetBySlug(ctx context.Context, slug string) (*models.Topic, error) {
	var topic models.Topic
	err := r.db.QueryRowContext(ctx, "SELECT slug, description FROM topics WHERE slug = $1", slug).
		Scan(&topic.Slug, &topic.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &topic, nil
}

// List returns every topic
func (r *topicRepo) List(ctx context.Context) ([]models.Topic, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT slug, description FROM topics")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	topics := make([]models.Topic, 0)
	for rows.Next() {
		var topic models.Topic
		if err := rows.Scan(&topic.Slug, &topic.Description); err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}
	return topics, rows.Err()
}
