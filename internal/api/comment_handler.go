package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
	"github.com/news-api/internal/validation"
)

const (
	msgMissingUsername = "Username missing from post"
	msgMissingBody     = "Comment missing from post"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	respond  *responder
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, respond *responder, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		respond:  respond,
		log:      log.With().Str("handler", "comments").Logger(),
	}
}

// ListComments handles GET /api/articles/:article_id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	articleID, err := validation.ValidateNumericID(c.Param("article_id"), "Article")
	if err != nil {
		h.respond.fail(c, err)
		return
	}

	comments, err := h.services.Comment.ListByArticle(c.Request.Context(), articleID)
	if err != nil {
		h.respond.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment handles POST /api/articles/:article_id/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	articleID, err := validation.ValidateNumericID(c.Param("article_id"), "Article")
	if err != nil {
		h.respond.fail(c, err)
		return
	}

	var req models.NewComment
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("Unreadable comment body")
	}
	if err := validation.RequireField(req.Username, msgMissingUsername); err != nil {
		h.respond.fail(c, err)
		return
	}
	if err := validation.RequireField(req.Body, msgMissingBody); err != nil {
		h.respond.fail(c, err)
		return
	}

	comment, err := h.services.Comment.Create(c.Request.Context(), articleID, req.Username, req.Body)
	if err != nil {
		h.respond.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// DeleteComment handles DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := validation.ValidateNumericID(c.Param("comment_id"), "Comment")
	if err != nil {
		h.respond.fail(c, err)
		return
	}

	if err := h.services.Comment.Delete(c.Request.Context(), commentID); err != nil {
		h.respond.fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
