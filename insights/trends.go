package insights

import (
	"sort"

	"fintrack/models"

	"github.com/shopspring/decimal"
)

// Summary 收支汇总
type Summary struct {
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	Net              decimal.Decimal `json:"net"`
	TransactionCount int             `json:"transaction_count"`
}

// MonthTrend 单月收支
type MonthTrend struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// CategoryInsight 单个类别的支出统计
type CategoryInsight struct {
	Total   decimal.Decimal `json:"total"`
	Count   int             `json:"count"`
	Average decimal.Decimal `json:"average"`
}

// Summarize 汇总总收入、总支出（绝对值）与净额
func Summarize(h models.History) Summary {
	s := Summary{TransactionCount: len(h.Transactions)}
	for _, t := range h.Transactions {
		switch {
		case t.IsIncome():
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case t.IsExpense():
			s.TotalExpenses = s.TotalExpenses.Add(t.Amount.Abs())
		}
	}
	s.Net = s.TotalIncome.Sub(s.TotalExpenses)
	return s
}

// SpendingTrends 按月份升序返回每月收入与支出
func SpendingTrends(h models.History) []MonthTrend {
	byMonth := make(map[string]*MonthTrend)
	for _, t := range h.Transactions {
		key := t.MonthKey()
		m, ok := byMonth[key]
		if !ok {
			m = &MonthTrend{Month: key}
			byMonth[key] = m
		}
		switch {
		case t.IsIncome():
			m.Income = m.Income.Add(t.Amount)
		case t.IsExpense():
			m.Expenses = m.Expenses.Add(t.Amount.Abs())
		}
	}

	trends := make([]MonthTrend, 0, len(byMonth))
	for _, m := range byMonth {
		trends = append(trends, *m)
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Month < trends[j].Month })
	return trends
}

// CategoryInsights 每个支出类别的总额、笔数与平均值
func CategoryInsights(h models.History) map[string]CategoryInsight {
	result := make(map[string]CategoryInsight)
	for _, t := range h.Transactions {
		if !t.IsExpense() {
			continue
		}
		ci := result[t.Category]
		ci.Total = ci.Total.Add(t.Amount.Abs())
		ci.Count++
		result[t.Category] = ci
	}
	for category, ci := range result {
		ci.Average = ci.Total.Div(decimal.NewFromInt(int64(ci.Count)))
		result[category] = ci
	}
	return result
}
