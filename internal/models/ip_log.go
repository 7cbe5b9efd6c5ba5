package models

import (
	"time"
)

// IPLog 記錄單一指紋（IP 雜湊）在當前滾動時段內的發文次數
//
// 紀錄不會被刪除：距離 last_post_time 超過時段長度後，
// 下一次發文前會直接把計數歸零重用
type IPLog struct {
	IPHash            string    `gorm:"primaryKey;size:64"`
	LastPostTime      time.Time `gorm:"not null"`
	PostCountLastHour int       `gorm:"not null;default:0"`
}

func (IPLog) TableName() string {
	return "ip_logs"
}
