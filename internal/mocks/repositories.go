package mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
)

// MockStore is an in-memory stand-in for the news database shared by all
// mock repositories, so comment counts and joins stay consistent
type MockStore struct {
	mu            sync.RWMutex
	Topics        []models.Topic
	Users         []models.User
	Articles      []models.Article
	Comments      []models.Comment
	nextCommentID int64
}

// NewMockStore creates an empty store
func NewMockStore() *MockStore {
	return &MockStore{nextCommentID: 1}
}

// AddTopic inserts a topic
func (s *MockStore) AddTopic(slug, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Topics = append(s.Topics, models.Topic{Slug: slug, Description: description})
}

// AddUser inserts a user
func (s *MockStore) AddUser(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Users = append(s.Users, models.User{Username: username})
}

// AddArticle inserts an article as-is
func (s *MockStore) AddArticle(a models.Article) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Articles = append(s.Articles, a)
}

// AddComment inserts a comment, assigning the next comment id
func (s *MockStore) AddComment(articleID int64, author, body string, createdAt time.Time) models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertComment(articleID, author, body, createdAt)
}

func (s *MockStore) insertComment(articleID int64, author, body string, createdAt time.Time) models.Comment {
	c := models.Comment{
		CommentID: s.nextCommentID,
		ArticleID: articleID,
		Author:    author,
		Body:      body,
		CreatedAt: createdAt,
	}
	s.nextCommentID++
	s.Comments = append(s.Comments, c)
	return c
}

func (s *MockStore) commentCount(articleID int64) int {
	n := 0
	for _, c := range s.Comments {
		if c.ArticleID == articleID {
			n++
		}
	}
	return n
}

// NewMockRepositories wires mock repositories over one store
func NewMockRepositories(store *MockStore) (*repository.Repositories, *MockArticleRepository, *MockCommentRepository, *MockTopicRepository, *MockUserRepository) {
	articles := &MockArticleRepository{store: store}
	comments := &MockCommentRepository{store: store}
	topics := &MockTopicRepository{store: store}
	users := &MockUserRepository{store: store}
	return &repository.Repositories{
		Article: articles,
		Comment: comments,
		Topic:   topics,
		User:    users,
	}, articles, comments, topics, users
}

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	store     *MockStore
	Err       error
	ListCalls []repository.ArticleListQuery
}

// Verify interface compliance
var _ repository.ArticleRepository = (*MockArticleRepository)(nil)

func (m *MockArticleRepository) GetByID(ctx context.Context, id int64) (*models.ArticleWithCount, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	for _, a := range m.store.Articles {
		if a.ArticleID == id {
			return &models.ArticleWithCount{Article: a, CommentCount: m.store.commentCount(id)}, nil
		}
	}
	return nil, nil
}

// List filters and sorts in memory. Ties keep insertion order.
func (m *MockArticleRepository) List(ctx context.Context, q repository.ArticleListQuery) ([]models.ArticleSummary, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	// Reject exactly what the SQL builder rejects
	if _, _, err := repository.BuildArticleListQuery(q); err != nil {
		return nil, err
	}

	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	m.ListCalls = append(m.ListCalls, q)

	result := make([]models.ArticleSummary, 0)
	for _, a := range m.store.Articles {
		if q.Topic != "" && a.Topic != q.Topic {
			continue
		}
		result = append(result, models.ArticleSummary{
			Author:       a.Author,
			Title:        a.Title,
			ArticleID:    a.ArticleID,
			Topic:        a.Topic,
			CreatedAt:    a.CreatedAt,
			Votes:        a.Votes,
			CommentCount: m.store.commentCount(a.ArticleID),
		})
	}

	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = models.DefaultSortColumn
	}
	desc := q.Order != models.OrderAsc

	sort.SliceStable(result, func(i, j int) bool {
		c := compareSummaries(result[i], result[j], sortBy)
		if desc {
			return c > 0
		}
		return c < 0
	})
	return result, nil
}

func compareSummaries(a, b models.ArticleSummary, by models.SortColumn) int {
	switch by {
	case models.SortByAuthor:
		return strings.Compare(a.Author, b.Author)
	case models.SortByTitle:
		return strings.Compare(a.Title, b.Title)
	case models.SortByArticleID:
		return compareInt(a.ArticleID, b.ArticleID)
	case models.SortByTopic:
		return strings.Compare(a.Topic, b.Topic)
	case models.SortByVotes:
		return compareInt(int64(a.Votes), int64(b.Votes))
	case models.SortByCommentCount:
		return compareInt(int64(a.CommentCount), int64(b.CommentCount))
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (m *MockArticleRepository) IncrementVotes(ctx context.Context, id int64, delta int64) (*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	for i := range m.store.Articles {
		if m.store.Articles[i].ArticleID == id {
			m.store.Articles[i].Votes += int(delta)
			a := m.store.Articles[i]
			return &a, nil
		}
	}
	return nil, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	store *MockStore
	Err   error
	Now   func() time.Time
}

// Verify interface compliance
var _ repository.CommentRepository = (*MockCommentRepository)(nil)

func (m *MockCommentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	for _, c := range m.store.Comments {
		if c.CommentID == id {
			comment := c
			return &comment, nil
		}
	}
	return nil, nil
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	comments := make([]models.Comment, 0)
	for _, c := range m.store.Comments {
		if c.ArticleID == articleID {
			c.ArticleID = 0
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].CommentID < comments[j].CommentID })
	return comments, nil
}

func (m *MockCommentRepository) Create(ctx context.Context, articleID int64, author, body string) (*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	now := time.Now().UTC()
	if m.Now != nil {
		now = m.Now()
	}
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	// Mirror the foreign keys enforced by the schema
	if !m.store.hasArticle(articleID) || !m.store.hasUser(author) {
		return nil, fmt.Errorf("insert comment: foreign key violation")
	}
	c := m.store.insertComment(articleID, author, body, now)
	return &c, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	for i, c := range m.store.Comments {
		if c.CommentID == id {
			m.store.Comments = append(m.store.Comments[:i], m.store.Comments[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *MockStore) hasArticle(id int64) bool {
	for _, a := range s.Articles {
		if a.ArticleID == id {
			return true
		}
	}
	return false
}

func (s *MockStore) hasUser(username string) bool {
	for _, u := range s.Users {
		if u.Username == username {
			return true
		}
	}
	return false
}

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	store *MockStore
	Err   error
}

// Verify interface compliance
var _ repository.TopicRepository = (*MockTopicRepository)(nil)

func (m *MockTopicRepository) GetBySlug(ctx context.Context, slug string) (*models.Topic, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	for _, t := range m.store.Topics {
		if t.Slug == slug {
			topic := t
			return &topic, nil
		}
	}
	return nil, nil
}

func (m *MockTopicRepository) List(ctx context.Context) ([]models.Topic, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	return append(make([]models.Topic, 0, len(m.store.Topics)), m.store.Topics...), nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	store *MockStore
	Err   error
}

// Verify interface compliance
var _ repository.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	if m.store.hasUser(username) {
		return &models.User{Username: username}, nil
	}
	return nil, nil
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	return append(make([]models.User, 0, len(m.store.Users)), m.store.Users...), nil
}
