package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/commit-heatmap-go/internal/models"
	"github.com/jengzang/commit-heatmap-go/internal/service"
	"github.com/jengzang/commit-heatmap-go/pkg/response"
)

// HeatmapHandler handles HTTP requests for heatmap rendering
type HeatmapHandler struct {
	service *service.HeatmapService
}

// NewHeatmapHandler creates a new heatmap handler
func NewHeatmapHandler(service *service.HeatmapService) *HeatmapHandler {
	return &HeatmapHandler{service: service}
}

// GetSVG handles GET /api/v1/heatmap/:source/svg
func (h *HeatmapHandler) GetSVG(c *gin.Context) {
	var filter models.SeriesFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	body, err := h.service.RenderSVG(c.Param("source"), filter)
	if err != nil {
		renderError(c, "Failed to render heatmap", err)
		return
	}

	response.SVG(c, body)
}

// GetLayout handles GET /api/v1/heatmap/:source/layout
func (h *HeatmapHandler) GetLayout(c *gin.Context) {
	var filter models.SeriesFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	layout, err := h.service.Layout(c.Param("source"), filter)
	if err != nil {
		renderError(c, "Failed to compute heatmap layout", err)
		return
	}

	response.Success(c, layout)
}

// GetLegend handles GET /api/v1/heatmap/:source/legend
func (h *HeatmapHandler) GetLegend(c *gin.Context) {
	var filter models.LegendFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	body, err := h.service.Legend(c.Param("source"), filter)
	if err != nil {
		renderError(c, "Failed to render legend", err)
		return
	}

	response.SVG(c, body)
}

// RenderInline handles POST /api/v1/heatmap/render
func (h *HeatmapHandler) RenderInline(c *gin.Context) {
	var req models.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	body, err := h.service.RenderInline(req)
	if err != nil {
		renderError(c, "Failed to render heatmap", err)
		return
	}

	response.SVG(c, body)
}

func renderError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, message, err)
	case errors.Is(err, service.ErrSourceNotFound):
		response.Error(c, http.StatusNotFound, message, err)
	default:
		response.Error(c, http.StatusInternalServerError, message, err)
	}
}
