package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"treehole_web/internal/service"
	"treehole_web/internal/validator"
	"treehole_web/pkg/config"
)

// PostHandler 處理訊息的發布與列表請求
type PostHandler struct {
	postService  *service.PostService
	defaultLimit int
	maxLimit     int
}

// NewPostHandler 創建一個新的 PostHandler 實例
func NewPostHandler(postService *service.PostService, listCfg config.ListConfig) *PostHandler {
	return &PostHandler{
		postService:  postService,
		defaultLimit: listCfg.DefaultLimit,
		maxLimit:     listCfg.MaxLimit,
	}
}

// CreatePost 處理發布新訊息的請求
//
// 內容檢查與限流屬於預期中的客戶端錯誤，直接回傳訊息；
// 其餘錯誤記錄在伺服器端，對外只回傳不透露細節的通用訊息
func (h *PostHandler) CreatePost(c *gin.Context) {
	var input struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求格式"})
		return
	}

	err := h.postService.SubmitPost(c.Request.Context(), input.Content, c.ClientIP())
	if err != nil {
		switch {
		case validator.IsValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
		default:
			zap.L().Error("failed to submit post", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "服务器错误"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListPosts 處理分頁查詢訊息的請求
func (h *PostHandler) ListPosts(c *gin.Context) {
	page := h.parseQueryInt(c, "page", 0)
	limit := h.parseQueryInt(c, "limit", h.defaultLimit)
	if limit <= 0 {
		limit = h.defaultLimit
	}
	if limit > h.maxLimit {
		limit = h.maxLimit
	}

	posts, hasMore, err := h.postService.ListPosts(c.Request.Context(), page, limit)
	if err != nil {
		zap.L().Error("failed to list posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取消息失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":   posts,
		"hasMore": hasMore,
	})
}

// parseQueryInt 解析查詢參數，無法解析或為負時退回預設值
func (h *PostHandler) parseQueryInt(c *gin.Context, key string, fallback int) int {
	value, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(fallback)))
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
