package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrGoalNameRequired   = errors.New("goal name is required")
	ErrGoalTargetInvalid  = errors.New("target amount must be positive")
	ErrGoalDateInPast     = errors.New("target date must be in the future")
	ErrSavedAmountInvalid = errors.New("saved amount cannot be negative")
)

var hundred = decimal.NewFromInt(100)

// Goal 储蓄目标模型
type Goal struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	UserID       uint            `json:"user_id" gorm:"index;not null"`
	Name         string          `json:"name" gorm:"size:100;not null"`
	TargetAmount decimal.Decimal `json:"target_amount" gorm:"type:decimal(12,2);not null"`
	SavedAmount  decimal.Decimal `json:"saved_amount" gorm:"type:decimal(12,2);not null;default:0"`
	TargetDate   time.Time       `json:"target_date" gorm:"type:date;not null"`
	IsCompleted  bool            `json:"is_completed" gorm:"default:false;index"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `json:"-" gorm:"index"`
	User         User            `json:"-" gorm:"foreignKey:UserID"`
}

func (Goal) TableName() string {
	return "goals"
}

// ProgressPercentage 完成百分比，封顶 100；目标金额不为正时返回 0
func (g Goal) ProgressPercentage() float64 {
	if !g.TargetAmount.IsPositive() {
		return 0
	}
	p := g.SavedAmount.Div(g.TargetAmount).Mul(hundred)
	if p.GreaterThan(hundred) {
		return 100
	}
	return p.InexactFloat64()
}

// ApplySaved 更新已存金额，达到目标后标记完成（只会置为 true，不会撤销）
func (g *Goal) ApplySaved(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrSavedAmountInvalid
	}
	g.SavedAmount = amount
	if g.TargetAmount.IsPositive() && amount.GreaterThanOrEqual(g.TargetAmount) {
		g.IsCompleted = true
	}
	return nil
}

// Validate 校验新建目标；today 为当天日期
func (g Goal) Validate(today time.Time) error {
	if g.Name == "" {
		return ErrGoalNameRequired
	}
	if !g.TargetAmount.IsPositive() {
		return ErrGoalTargetInvalid
	}
	if !g.TargetDate.After(today) {
		return ErrGoalDateInPast
	}
	return nil
}
