package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sabrebluedobie/Quickspin-API/internal/brief"
	"github.com/sabrebluedobie/Quickspin-API/pkg/logging"
)

type CreateHandler struct {
	generator PostGenerator
	logger    logging.Logger
	metrics   *CreateMetrics
}

func NewCreateHandler(generator PostGenerator, logger logging.Logger, metrics *CreateMetrics) *CreateHandler {
	return &CreateHandler{
		generator: generator,
		logger:    logger,
		metrics:   metrics,
	}
}

// Handle answers POST /api/create. The body is read tolerantly: an absent or
// malformed payload becomes an empty brief and the pipeline runs anyway, so
// the response is always 200 with a non-empty posts array.
func (h *CreateHandler) Handle(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to read request body")
		raw = nil
	}

	b := brief.Normalize(raw)
	env := h.generator.CreatePosts(c.Request.Context(), b)

	h.metrics.IncCreate(env.Mode)
	h.logger.WithFields(logging.Fields{
		"mode":     env.Mode,
		"platform": b.Platform,
		"posts":    len(env.Posts),
	}).Info("Generated posts")

	c.JSON(http.StatusOK, env)
}
