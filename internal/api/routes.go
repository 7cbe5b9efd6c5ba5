package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"treehole_web/internal/api/handlers"
	"treehole_web/internal/middleware"
	"treehole_web/internal/service"
	"treehole_web/pkg/config"
)

func SetupRoutes(r *gin.Engine, services *service.Services, cfg *config.Config) {
	// 初始化 handlers
	postHandler := handlers.NewPostHandler(services.Post, cfg.List)

	// 所有回應（包含錯誤與 404）都要帶 CORS 標頭
	r.Use(middleware.CORS())

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// API 路由群組
	api := r.Group("/api")
	{
		// 訊息相關
		api.POST("/post", postHandler.CreatePost)  // 發布訊息
		api.GET("/posts", postHandler.ListPosts)   // 分頁查詢訊息

		// 基本的健康檢查
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})
	}
}
