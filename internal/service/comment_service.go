package service

import (
	"context"
	"fmt"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	comments repository.CommentRepository
	resolve  *resolver
	log      zerolog.Logger
}

// newCommentService creates a new CommentService
func newCommentService(comments repository.CommentRepository, resolve *resolver, log zerolog.Logger) *commentService {
	return &commentService{
		comments: comments,
		resolve:  resolve,
		log:      log.With().Str("service", "comments").Logger(),
	}
}

// ListByArticle returns the comments of an existing article
func (s *commentService) ListByArticle(ctx context.Context, articleID models.ID) ([]models.Comment, error) {
	if _, err := s.resolve.Article(ctx, articleID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByArticle(ctx, articleID.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for article %s: %w", articleID, err)
	}
	return comments, nil
}

// Create checks that both the article and the author exist, then inserts
// the comment. A missing article is reported before a missing author.
func (s *commentService) Create(ctx context.Context, articleID models.ID, username, body string) (*models.Comment, error) {
	err := runChecks(ctx,
		func(ctx context.Context) error {
			_, err := s.resolve.Article(ctx, articleID)
			return err
		},
		func(ctx context.Context) error {
			_, err := s.resolve.User(ctx, username)
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	comment, err := s.comments.Create(ctx, articleID.Value, username, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment on article %s: %w", articleID, err)
	}

	s.log.Info().
		Int64("comment_id", comment.CommentID).
		Int64("article_id", articleID.Value).
		Str("author", username).
		Msg("Comment created")
	return comment, nil
}

// Delete removes an existing comment
func (s *commentService) Delete(ctx context.Context, commentID models.ID) error {
	if _, err := s.resolve.Comment(ctx, commentID); err != nil {
		return err
	}

	deleted, err := s.comments.Delete(ctx, commentID.Value)
	if err != nil {
		return fmt.Errorf("failed to delete comment %s: %w", commentID, err)
	}
	// Removed concurrently between the lookup and the delete
	if !deleted {
		return commentNotFound(commentID)
	}

	s.log.Info().Int64("comment_id", commentID.Value).Msg("Comment deleted")
	return nil
}
