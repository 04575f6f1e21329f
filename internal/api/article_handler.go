package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/news-api/internal/service"
	"github.com/news-api/internal/validation"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	respond  *responder
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, respond *responder, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		respond:  respond,
		log:      log.With().Str("handler", "articles").Logger(),
	}
}

// GetArticle handles GET /api/articles/:article_id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := validation.ValidateNumericID(c.Param("article_id"), "Article")
	if err != nil {
		h.respond.fail(c, err)
		return
	}

	article, err := h.services.Article.GetArticle(c.Request.Context(), id)
	if err != nil {
		h.respond.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// ListArticles handles GET /api/articles
// Query: sort_by, order, topic. Any other key is rejected before the rest is looked at.
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	if err := validation.ValidateQueryKeys(c.Request.URL.Query(), validation.ArticleListQueryKeys); err != nil {
		h.respond.fail(c, err)
		return
	}

	articles, err := h.services.Article.ListArticles(c.Request.Context(), service.ListArticlesParams{
		SortBy: c.Query(validation.QuerySortBy),
		Order:  c.Query(validation.QueryOrder),
		Topic:  c.Query(validation.QueryTopic),
	})
	if err != nil {
		h.respond.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

type voteRequest struct {
	IncVotes json.RawMessage `json:"inc_votes"`
}

// UpdateVotes handles PATCH /api/articles/:article_id
func (h *ArticleHandler) UpdateVotes(c *gin.Context) {
	// An unreadable body is the same as one without inc_votes
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Str("article_id", c.Param("article_id")).Msg("Unreadable vote body")
	}

	delta, votesErr := validation.ValidateVoteDelta(req.IncVotes)
	if validation.IsMissing(req.IncVotes) {
		h.respond.fail(c, votesErr)
		return
	}

	id, err := validation.ValidateNumericID(c.Param("article_id"), "Article")
	if err != nil {
		h.respond.fail(c, err)
		return
	}
	if votesErr != nil {
		h.respond.fail(c, votesErr)
		return
	}

	article, err := h.services.Article.UpdateVotes(c.Request.Context(), id, delta)
	if err != nil {
		h.respond.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"article": article})
}
