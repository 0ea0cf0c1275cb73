package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryOther 无法识别时的兜底类别
const CategoryOther = "Other"

// Transaction 交易记录模型
// Amount 为带符号金额：正数为收入，负数为支出
type Transaction struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	UserID      uint            `json:"user_id" gorm:"index;not null"`
	Date        time.Time       `json:"date" gorm:"type:date;index;not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Description string          `json:"description" gorm:"size:200;not null"`
	Category    string          `json:"category" gorm:"size:50;not null;index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `json:"-" gorm:"index"`
	User        User            `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}

// IsIncome 是否为收入
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsExpense 是否为支出
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// MonthKey 返回 YYYY-MM 形式的月份键
func (t Transaction) MonthKey() string {
	return t.Date.Format("2006-01")
}

// DayKey 返回 YYYY-MM-DD 形式的日期键
func (t Transaction) DayKey() string {
	return t.Date.Format("2006-01-02")
}
