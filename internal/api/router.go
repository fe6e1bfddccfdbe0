package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/commit-heatmap-go/internal/config"
	"github.com/jengzang/commit-heatmap-go/internal/handler"
	"github.com/jengzang/commit-heatmap-go/internal/middleware"
	"github.com/jengzang/commit-heatmap-go/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, svc *service.HeatmapService, limiter *middleware.RateLimiter, gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Commit heatmap API is running",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	heatmapHandler := handler.NewHeatmapHandler(svc)
	seriesHandler := handler.NewSeriesHandler(svc)

	// API 路由组
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(limiter))
	{
		// 热力图
		heatmap := api.Group("/heatmap")
		{
			heatmap.GET("/:source/svg", heatmapHandler.GetSVG)
			heatmap.GET("/:source/layout", heatmapHandler.GetLayout)
			heatmap.GET("/:source/legend", heatmapHandler.GetLegend)
			heatmap.POST("/render", heatmapHandler.RenderInline)
		}

		// 每日计数
		series := api.Group("/series")
		{
			series.GET("", seriesHandler.ListSources)
			auth := middleware.JWTAuth([]byte(cfg.JWTSecret))
			series.POST("/:source", auth, seriesHandler.Ingest)
			series.DELETE("/:source", auth, seriesHandler.Delete)
		}
	}

	return r
}
