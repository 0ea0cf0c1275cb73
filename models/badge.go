package models

import "time"

// Badge 徽章目录（启动时按名称幂等写入）
type Badge struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Description string `json:"description" gorm:"size:200;not null"`
	Icon        string `json:"icon" gorm:"size:50;not null"`
	Condition   string `json:"condition" gorm:"size:100;not null"`
}

func (Badge) TableName() string {
	return "badges"
}

// UserBadge 用户已获得的徽章，(user_id, badge_id) 唯一
type UserBadge struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	UserID   uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_badge"`
	BadgeID  uint      `json:"badge_id" gorm:"not null;uniqueIndex:idx_user_badge"`
	EarnedAt time.Time `json:"earned_at" gorm:"not null"`
	Badge    Badge     `json:"badge" gorm:"foreignKey:BadgeID"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
