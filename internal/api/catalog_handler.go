package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/news-api/internal/service"
)

// CatalogHandler serves topics and users
type CatalogHandler struct {
	services *service.Services
	respond  *responder
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(services *service.Services, respond *responder) *CatalogHandler {
	return &CatalogHandler{services: services, respond: respond}
}

// ListTopics handles GET /api/topics
func (h *CatalogHandler) ListTopics(c *gin.Context) {
	topics, err := h.services.Catalog.ListTopics(c.Request.Context())
	if err != nil {
		h.respond.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

// ListUsers handles GET /api/users
func (h *CatalogHandler) ListUsers(c *gin.Context) {
	users, err := h.services.Catalog.ListUsers(c.Request.Context())
	if err != nil {
		h.respond.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
