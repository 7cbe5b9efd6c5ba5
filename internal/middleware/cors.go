package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS 在每個回應加上寬鬆的跨來源標頭
//
// 前端與後端可能部署在不同來源，因此允許任意來源存取，
// 並直接回應 OPTIONS 預檢請求
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
