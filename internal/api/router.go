package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/config"
	"github.com/news-api/internal/metrics"
	"github.com/news-api/internal/service"
)

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Option customises the router
type Option func(*routerOptions)

type routerOptions struct {
	health  HealthChecker
	metrics *metrics.Metrics
}

// WithHealthChecker makes /health ping the store
func WithHealthChecker(h HealthChecker) Option {
	return func(o *routerOptions) { o.health = h }
}

// WithMetrics records request metrics into m and serves them on /metrics
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *routerOptions) { o.metrics = m }
}

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger, opts ...Option) *gin.Engine {
	o := &routerOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.metrics == nil {
		o.metrics = metrics.New(prometheus.NewRegistry())
	}

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	// Trailing slashes are stripped by StripTrailingSlash rather than redirected
	router.RedirectTrailingSlash = false

	// Middleware
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(metricsMiddleware(o.metrics))
	router.Use(recoveryMiddleware(log))
	router.Use(corsMiddleware(cfg.CORS))

	// Handlers
	respond := newResponder(o.metrics, log)
	articleHandler := NewArticleHandler(services, respond, log)
	commentHandler := NewCommentHandler(services, respond, log)
	catalogHandler := NewCatalogHandler(services, respond)

	// Operational endpoints
	router.GET("/health", healthCheck(o.health))
	router.GET("/metrics", gin.WrapH(o.metrics.Handler()))

	api := router.Group("/api")
	{
		api.GET("", listEndpoints)

		api.GET("/topics", catalogHandler.ListTopics)
		api.GET("/users", catalogHandler.ListUsers)

		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.ListArticles)
			articles.GET("/:article_id", articleHandler.GetArticle)
			articles.PATCH("/:article_id", articleHandler.UpdateVotes)
			articles.GET("/:article_id/comments", commentHandler.ListComments)
			articles.POST("/:article_id/comments", commentHandler.CreateComment)
		}

		api.DELETE("/comments/:comment_id", commentHandler.DeleteComment)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": apperror.MsgPathNotFound})
	})

	return router
}

// StripTrailingSlash serves "/api/articles/" as "/api/articles" instead of
// answering with a redirect
func StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if len(path) <= 1 || !strings.HasSuffix(path, "/") {
			next.ServeHTTP(w, r)
			return
		}

		trimmed := strings.TrimRight(path, "/")
		if trimmed == "" {
			trimmed = "/"
		}

		r2 := new(http.Request)
		*r2 = *r
		u := *r.URL
		u.Path = trimmed
		u.RawPath = ""
		r2.URL = &u
		next.ServeHTTP(w, r2)
	})
}

// healthCheck returns the health status
func healthCheck(h HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		body := gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "news-api",
		}

		if h != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := h.HealthCheck(ctx); err != nil {
				status = http.StatusServiceUnavailable
				body["status"] = "unhealthy"
				body["database"] = "unreachable"
			} else {
				body["database"] = "ok"
			}
		}

		c.JSON(status, body)
	}
}
