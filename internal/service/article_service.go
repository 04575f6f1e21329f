package service

import (
	"context"
	"fmt"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/validation"
	"github.com/rs/zerolog"
)

// ListArticlesParams carries the raw query values of GET /api/articles.
// Empty strings mean "not supplied".
type ListArticlesParams struct {
	SortBy string
	Order  string
	Topic  string
}

// articleService is the concrete implementation of ArticleService
type articleService struct {
	articles repository.ArticleRepository
	resolve  *resolver
	log      zerolog.Logger
}

// newArticleService creates a new ArticleService
func newArticleService(articles repository.ArticleRepository, resolve *resolver, log zerolog.Logger) *articleService {
	return &articleService{
		articles: articles,
		resolve:  resolve,
		log:      log.With().Str("service", "articles").Logger(),
	}
}

// GetArticle returns an article with its comment count
func (s *articleService) GetArticle(ctx context.Context, id models.ID) (*models.ArticleWithCount, error) {
	return s.resolve.Article(ctx, id)
}

// ListArticles validates sort_by, order and topic concurrently, then runs
// the aggregated listing. Failures are reported in that order.
func (s *articleService) ListArticles(ctx context.Context, params ListArticlesParams) ([]models.ArticleSummary, error) {
	var q repository.ArticleListQuery

	err := runChecks(ctx,
		func(context.Context) (err error) {
			q.SortBy, err = validation.ValidateSortColumn(params.SortBy)
			return err
		},
		func(context.Context) (err error) {
			q.Order, err = validation.ValidateOrder(params.Order)
			return err
		},
		func(ctx context.Context) error {
			if params.Topic == "" {
				return nil
			}
			_, err := s.resolve.Topic(ctx, params.Topic)
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	q.Topic = params.Topic

	s.log.Debug().
		Str("sort_by", string(q.SortBy)).
		Str("order", string(q.Order)).
		Str("topic", q.Topic).
		Msg("Listing articles")

	articles, err := s.articles.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}

// UpdateVotes applies a relative vote change. The update itself doubles as
// the existence check: no row updated means the article does not exist.
func (s *articleService) UpdateVotes(ctx context.Context, id models.ID, delta int64) (*models.Article, error) {
	article, err := s.articles.IncrementVotes(ctx, id.Value, delta)
	if err != nil {
		return nil, fmt.Errorf("failed to update votes for article %s: %w", id, err)
	}
	if article == nil {
		return nil, articleNotFound(id)
	}

	s.log.Info().Int64("article_id", id.Value).Int64("delta", delta).Int("votes", article.Votes).Msg("Article votes updated")
	return article, nil
}
