package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/commit-heatmap-go/internal/models"
	"github.com/jengzang/commit-heatmap-go/internal/service"
	"github.com/jengzang/commit-heatmap-go/pkg/response"
)

// SeriesHandler handles HTTP requests for stored daily counts
type SeriesHandler struct {
	service *service.HeatmapService
}

// NewSeriesHandler creates a new series handler
func NewSeriesHandler(service *service.HeatmapService) *SeriesHandler {
	return &SeriesHandler{service: service}
}

// Ingest handles POST /api/v1/series/:source
func (h *SeriesHandler) Ingest(c *gin.Context) {
	var req models.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.service.Ingest(c.Param("source"), req.Counts)
	if err != nil {
		renderError(c, "Failed to ingest counts", err)
		return
	}

	response.Success(c, result)
}

// Delete handles DELETE /api/v1/series/:source
func (h *SeriesHandler) Delete(c *gin.Context) {
	result, err := h.service.DeleteSeries(c.Param("source"))
	if err != nil {
		renderError(c, "Failed to delete counts", err)
		return
	}

	response.Success(c, result)
}

// ListSources handles GET /api/v1/series
func (h *SeriesHandler) ListSources(c *gin.Context) {
	sources, err := h.service.ListSources()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list sources", err)
		return
	}

	response.Success(c, gin.H{
		"data":  sources,
		"count": len(sources),
	})
}
