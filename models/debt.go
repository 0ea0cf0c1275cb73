package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrDebtNameRequired    = errors.New("debt name is required")
	ErrDebtAmountInvalid   = errors.New("all amounts must be positive")
	ErrDebtBalanceTooLarge = errors.New("current balance cannot exceed total amount")
)

// Debt 债务模型
type Debt struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	UserID         uint            `json:"user_id" gorm:"index;not null"`
	Name           string          `json:"name" gorm:"size:100;not null"`
	TotalAmount    decimal.Decimal `json:"total_amount" gorm:"type:decimal(12,2);not null"`
	CurrentBalance decimal.Decimal `json:"current_balance" gorm:"type:decimal(12,2);not null"`
	InterestRate   decimal.Decimal `json:"interest_rate" gorm:"type:decimal(6,2);not null"`
	MinimumPayment decimal.Decimal `json:"minimum_payment" gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `json:"-" gorm:"index"`
	User           User            `json:"-" gorm:"foreignKey:UserID"`
}

func (Debt) TableName() string {
	return "debts"
}

// PaidAmount 已还金额
func (d Debt) PaidAmount() decimal.Decimal {
	return d.TotalAmount.Sub(d.CurrentBalance)
}

// ProgressPercentage 还款进度百分比，封顶 100；总额不为正时返回 0
func (d Debt) ProgressPercentage() float64 {
	if !d.TotalAmount.IsPositive() {
		return 0
	}
	p := d.PaidAmount().Div(d.TotalAmount).Mul(hundred)
	if p.GreaterThan(hundred) {
		return 100
	}
	return p.InexactFloat64()
}

// IsPaidOff 余额是否已清零
func (d Debt) IsPaidOff() bool {
	return d.CurrentBalance.IsZero()
}

// ValidateBalance 校验余额范围 [0, TotalAmount]
func (d Debt) ValidateBalance(balance decimal.Decimal) error {
	if balance.IsNegative() {
		return ErrDebtAmountInvalid
	}
	if balance.GreaterThan(d.TotalAmount) {
		return ErrDebtBalanceTooLarge
	}
	return nil
}

// Validate 校验新建债务
func (d Debt) Validate() error {
	if d.Name == "" {
		return ErrDebtNameRequired
	}
	if !d.TotalAmount.IsPositive() || d.InterestRate.IsNegative() || d.MinimumPayment.IsNegative() {
		return ErrDebtAmountInvalid
	}
	return d.ValidateBalance(d.CurrentBalance)
}
