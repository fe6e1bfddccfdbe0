package main

import (
	"log"

	"github.com/jengzang/commit-heatmap-go/internal/api"
	"github.com/jengzang/commit-heatmap-go/internal/config"
	"github.com/jengzang/commit-heatmap-go/internal/database"
	"github.com/jengzang/commit-heatmap-go/internal/heatmap"
	"github.com/jengzang/commit-heatmap-go/internal/middleware"
	"github.com/jengzang/commit-heatmap-go/internal/observability"
	"github.com/jengzang/commit-heatmap-go/internal/repository"
	"github.com/jengzang/commit-heatmap-go/internal/service"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	locale, err := heatmap.LookupLocale(cfg.DefaultLocale)
	if err != nil {
		log.Fatal("Invalid DEFAULT_LOCALE:", err)
	}

	// 初始化数据库
	dbConfig := database.Config{
		Driver: cfg.DBDriver,
		Path:   cfg.DBPath,
	}
	if err := database.Init(dbConfig); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	repo := repository.NewSeriesRepository(database.GetDB())
	svc := service.NewHeatmapService(repo, metrics, locale)

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow, clockwork.NewRealClock())
	stop := make(chan struct{})
	defer close(stop)
	limiter.StartCleanup(stop)

	// 初始化路由
	router := api.SetupRouter(cfg, svc, limiter, prometheus.DefaultGatherer)

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
