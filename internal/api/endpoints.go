package api

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed endpoints.json
var endpointCatalogue []byte

// listEndpoints handles GET /api
func listEndpoints(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", endpointCatalogue)
}
