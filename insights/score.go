package insights

import (
	"fintrack/models"

	"github.com/shopspring/decimal"
)

var (
	savingsExcellent = decimal.NewFromFloat(0.2)
	savingsGood      = decimal.NewFromFloat(0.1)
	debtLow          = decimal.NewFromFloat(0.3)
	debtModerate     = decimal.NewFromFloat(0.5)
)

// Scorer 财务健康评分（0-100）
// 由储蓄率、目标完成度、负债、记账频率四部分相加
type Scorer struct {
	options
}

// NewScorer 创建评分器
func NewScorer(opts ...Option) *Scorer {
	return &Scorer{options: newOptions(opts)}
}

// Score 计算评分，没有交易记录时为 0，计算异常时记录日志并返回 0
func (s *Scorer) Score(h models.History) (score int) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Msg("财务健康评分计算异常")
			score = 0
		}
	}()

	if h.IsEmpty() {
		return 0
	}

	summary := Summarize(h)
	score = savingsBand(summary) +
		goalBand(h.Goals) +
		debtBand(h.Debts, summary.TotalIncome) +
		s.consistencyBand(h.Transactions)

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// savingsBand 储蓄率：>20% 30 分，>10% 20 分，>0% 10 分
func savingsBand(s Summary) int {
	if !s.TotalIncome.IsPositive() {
		return 0
	}
	switch {
	case s.Net.GreaterThan(s.TotalIncome.Mul(savingsExcellent)):
		return 30
	case s.Net.GreaterThan(s.TotalIncome.Mul(savingsGood)):
		return 20
	case s.Net.IsPositive():
		return 10
	}
	return 0
}

// goalBand 目标完成比例 * 25，向下取整
func goalBand(goals []models.Goal) int {
	if len(goals) == 0 {
		return 0
	}
	completed := 0
	for _, g := range goals {
		if g.IsCompleted {
			completed++
		}
	}
	return completed * 25 / len(goals)
}

// debtBand 无负债或已全部还清 25 分，否则按负债收入比分档
func debtBand(debts []models.Debt, income decimal.Decimal) int {
	if len(debts) == 0 {
		return 25
	}
	var total decimal.Decimal
	for _, d := range debts {
		total = total.Add(d.CurrentBalance)
	}
	switch {
	case total.IsZero():
		return 25
	case total.LessThan(income.Mul(debtLow)):
		return 20
	case total.LessThan(income.Mul(debtModerate)):
		return 15
	case total.LessThan(income):
		return 10
	}
	return 0
}

// consistencyBand 最近 30 天交易笔数：>=10 20 分，>=5 15 分，>=1 10 分
func (s *Scorer) consistencyBand(txns []models.Transaction) int {
	since := models.DayOf(s.now()).AddDate(0, 0, -30)
	recent := 0
	for _, t := range txns {
		if !models.DayOf(t.Date).Before(since) {
			recent++
		}
	}
	switch {
	case recent >= 10:
		return 20
	case recent >= 5:
		return 15
	case recent >= 1:
		return 10
	}
	return 0
}
