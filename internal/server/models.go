package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartstudy-ai/smartstudy-backend/internal/common"
)

// ListModels enumerates the models the configured client can use.
func (s *StudyService) ListModels(c *gin.Context) {
	ctx := c.Request.Context()

	models, err := s.gen.ListModels(ctx)
	if err != nil {
		s.logger.Error("study.list_models.failed",
			"req_id", common.RequestIDFromContext(ctx),
			"error", err,
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not list models"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"models": models})
}
