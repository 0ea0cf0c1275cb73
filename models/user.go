package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户模型，所有交易、目标、债务和徽章都归属于某个用户
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Username  string         `json:"username" gorm:"uniqueIndex;size:80;not null"`
	Email     string         `json:"email" gorm:"size:120"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (User) TableName() string {
	return "users"
}
