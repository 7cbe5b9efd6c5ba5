package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"treehole_web/internal/models"
	"treehole_web/internal/storage"
)

type IPLogRepository interface {
	FindByHash(ctx context.Context, ipHash string) (*models.IPLog, error)
	ResetWindow(ctx context.Context, ipHash string, now time.Time) error
	RecordPost(ctx context.Context, ipHash string, now time.Time) error
}

type ipLogRepository struct {
	db *storage.PostgresDB
}

func NewIPLogRepository(db *storage.PostgresDB) IPLogRepository {
	return &ipLogRepository{db: db}
}

// FindByHash 查詢指紋的發文紀錄，不存在時回傳 nil 而不是錯誤
func (r *ipLogRepository) FindByHash(ctx context.Context, ipHash string) (*models.IPLog, error) {
	var record models.IPLog
	err := r.db.WithContext(ctx).First(&record, "ip_hash = ?", ipHash).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ResetWindow 開啟新的計數時段：不存在就建立、存在就把計數歸零
func (r *ipLogRepository) ResetWindow(ctx context.Context, ipHash string, now time.Time) error {
	record := models.IPLog{
		IPHash:            ipHash,
		LastPostTime:      now,
		PostCountLastHour: 0,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ip_hash"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"last_post_time":       now,
			"post_count_last_hour": 0,
		}),
	}).Create(&record).Error
}

// RecordPost 記錄一次成功發文：不存在就以計數 1 建立，
// 存在就累加。單筆 upsert 由資料庫保證原子性
func (r *ipLogRepository) RecordPost(ctx context.Context, ipHash string, now time.Time) error {
	record := models.IPLog{
		IPHash:            ipHash,
		LastPostTime:      now,
		PostCountLastHour: 1,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ip_hash"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"last_post_time":       now,
			"post_count_last_hour": gorm.Expr("ip_logs.post_count_last_hour + 1"),
		}),
	}).Create(&record).Error
}
