package models

import (
	"time"
)

// Post 表示一則匿名訊息
//
// 訊息一旦寫入就不可修改，也沒有刪除操作，
// 超過可見期限（expire_at）後僅透過查詢條件過濾，不會立即從資料庫移除
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;index"`
	ExpireAt  time.Time `json:"-" gorm:"not null;index"`
}
