package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"treehole_web/internal/models"
	"treehole_web/internal/repository"
	"treehole_web/internal/validator"
)

// visibilityWindow 是訊息發布後的可見期限
const visibilityWindow = 24 * time.Hour

var ErrRateLimited = errors.New("发布太频繁，请稍后再试 (1小时内最多5条)")

// PostView 是回傳給前端的訊息格式，created_at 為 RFC3339 UTC 字串
type PostView struct {
	ID        uint   `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type PostService struct {
	postRepo     repository.PostRepository
	ipLogRepo    repository.IPLogRepository
	validator    *validator.Validator
	maxPerWindow int
	window       time.Duration
}

func NewPostService(postRepo repository.PostRepository, ipLogRepo repository.IPLogRepository,
	v *validator.Validator, maxPerWindow int, window time.Duration) *PostService {
	return &PostService{
		postRepo:     postRepo,
		ipLogRepo:    ipLogRepo,
		validator:    v,
		maxPerWindow: maxPerWindow,
		window:       window,
	}
}

// SubmitPost 處理一次發文：內容檢查 → 限流檢查 → 寫入訊息 → 記錄發文
//
// 任一階段失敗就直接中止並回傳錯誤，不會重試。限流的檢查與記錄是
// 兩次獨立的資料庫操作，同一指紋的並發發文可能短暫超過上限，
// 這裡接受這個誤差，限流是軟性的，不是嚴格配額
func (s *PostService) SubmitPost(ctx context.Context, content, clientIP string) error {
	trimmed, err := s.validator.Validate(content)
	if err != nil {
		return err
	}

	fingerprint := Fingerprint(clientIP)
	if err := s.checkRateLimit(ctx, fingerprint); err != nil {
		return err
	}

	now := time.Now().UTC()
	post := &models.Post{
		Content:   trimmed,
		CreatedAt: now,
		ExpireAt:  now.Add(visibilityWindow),
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return err
	}

	return s.ipLogRepo.RecordPost(ctx, fingerprint, now)
}

// checkRateLimit 檢查指紋是否還能發文
//
// 沒有紀錄、或距離上次發文超過時段長度，視為新時段，
// 立即把計數歸零寫回；已達上限時直接拒絕且不更動紀錄
func (s *PostService) checkRateLimit(ctx context.Context, fingerprint string) error {
	record, err := s.ipLogRepo.FindByHash(ctx, fingerprint)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if record == nil || now.Sub(record.LastPostTime) > s.window {
		return s.ipLogRepo.ResetWindow(ctx, fingerprint, now)
	}

	if record.PostCountLastHour >= s.maxPerWindow {
		return ErrRateLimited
	}

	return nil
}

// ListPosts 回傳指定頁的未過期訊息與是否還有下一頁
func (s *PostService) ListPosts(ctx context.Context, page, limit int) ([]PostView, bool, error) {
	posts, hasMore, err := s.postRepo.ListVisible(ctx, page, limit)
	if err != nil {
		return nil, false, err
	}

	// 回傳空陣列而不是 null，前端直接迭代
	views := make([]PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, PostView{
			ID:        post.ID,
			Content:   post.Content,
			CreatedAt: post.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return views, hasMore, nil
}

// RunCleanup 定期實體刪除過期超過寬限期的訊息，直到 ctx 取消。
// interval 為 0 或負值時不啟動
func (s *PostService) RunCleanup(ctx context.Context, interval, grace time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := time.Now().UTC().Add(-grace)
			deleted, err := s.postRepo.DeleteExpiredBefore(ctx, cutoff)
			if err != nil {
				zap.L().Warn("failed to clean up expired posts", zap.Error(err))
				continue
			}
			if deleted > 0 {
				zap.L().Info("cleaned up expired posts", zap.Int64("deleted", deleted))
			}
		}
	}
}
