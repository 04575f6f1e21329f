package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/metrics"
)

// responder turns failures into {"msg": ...} responses. It is the only
// place a failure is given a status code.
type responder struct {
	metrics *metrics.Metrics
	log     zerolog.Logger
}

func newResponder(m *metrics.Metrics, log zerolog.Logger) *responder {
	return &responder{metrics: m, log: log}
}

func (r *responder) fail(c *gin.Context, err error) {
	appErr := apperror.Classify(err)
	r.metrics.RecordFailure(appErr.Kind.String())

	event := r.log.Debug()
	if appErr.Status >= 500 {
		event = r.log.Error()
	}
	event.
		Err(err).
		Str("kind", appErr.Kind.String()).
		Int("status", appErr.Status).
		Str("request_id", c.GetString(requestIDKey)).
		Msg("Request failed")

	c.AbortWithStatusJSON(appErr.Status, gin.H{"msg": appErr.Msg})
}
