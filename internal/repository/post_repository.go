package repository

import (
	"context"
	"time"

	"treehole_web/internal/models"
	"treehole_web/internal/storage"
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	ListVisible(ctx context.Context, page, limit int) ([]models.Post, bool, error)
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type postRepository struct {
	db *storage.PostgresDB
}

func NewPostRepository(db *storage.PostgresDB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// ListVisible 查詢未過期的訊息，最新的排在最前面
//
// 排序以 created_at 為主、id 為輔，同一秒寫入的訊息也能維持
// 穩定的分頁順序。hasMore 以「未過濾的總筆數」計算，和前端
// 既有的約定一致：過期訊息累積後 hasMore 可能為 true 但下一頁
// 是空的，呼叫端須把空頁視為終點，不能只看 hasMore
func (r *postRepository) ListVisible(ctx context.Context, page, limit int) ([]models.Post, bool, error) {
	now := time.Now().UTC()
	offset := page * limit

	var posts []models.Post
	err := r.db.WithContext(ctx).
		Where("expire_at > ?", now).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, false, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, false, err
	}

	return posts, total > int64(offset+limit), nil
}

// DeleteExpiredBefore 實體刪除過期超過寬限期的訊息，
// 僅供背景清理工作使用，不對外暴露刪除操作
func (r *postRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expire_at < ?", cutoff).Delete(&models.Post{})
	return result.RowsAffected, result.Error
}
