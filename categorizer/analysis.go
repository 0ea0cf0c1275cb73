package categorizer

import (
	"regexp"
	"strings"

	"fintrack/models"

	"github.com/shopspring/decimal"
)

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// Sample 已标注类别的描述，用于评估准确率
type Sample struct {
	Description string
	Category    string
}

// Accuracy 自动分类准确率
type Accuracy struct {
	Total     int     `json:"total"`
	Correct   int     `json:"correct"`
	Incorrect int     `json:"incorrect"`
	Percent   float64 `json:"accuracy"`
}

// Accuracy 用当前规则重新分类样本并与标注比较
func (c *Categorizer) Accuracy(samples []Sample) Accuracy {
	var a Accuracy
	a.Total = len(samples)
	if a.Total == 0 {
		return a
	}
	for _, s := range samples {
		actual := s.Category
		if actual == "" {
			actual = models.CategoryOther
		}
		if c.Categorize(s.Description) == actual {
			a.Correct++
		}
	}
	a.Incorrect = a.Total - a.Correct
	a.Percent = float64(a.Correct) / float64(a.Total) * 100
	return a
}

// Statistics 各类别的交易笔数与金额（绝对值）
type Statistics struct {
	Counts            map[string]int             `json:"counts"`
	Amounts           map[string]decimal.Decimal `json:"amounts"`
	TotalTransactions int                        `json:"total_transactions"`
	TotalAmount       decimal.Decimal            `json:"total_amount"`
}

// CategoryStatistics 统计各类别使用情况
func CategoryStatistics(txns []models.Transaction) Statistics {
	st := Statistics{
		Counts:            make(map[string]int),
		Amounts:           make(map[string]decimal.Decimal),
		TotalTransactions: len(txns),
		TotalAmount:       decimal.Zero,
	}
	for _, t := range txns {
		cat := t.Category
		if cat == "" {
			cat = models.CategoryOther
		}
		amount := t.Amount.Abs()
		st.Counts[cat]++
		st.Amounts[cat] = st.Amounts[cat].Add(amount)
		st.TotalAmount = st.TotalAmount.Add(amount)
	}
	return st
}

// Feedback 用户对分类结果的修正
type Feedback struct {
	Description string
	Predicted   string
	Actual      string
}

// Learn 根据用户修正扩充规则表：把描述中长度大于 3 的新词加入正确类别
// 只处理预测错误、且正确类别是规则表中已有的非 Other 类别的反馈，返回新增的关键词数
func (c *Categorizer) Learn(feedback []Feedback) int {
	added := 0
	for _, f := range feedback {
		if f.Predicted == f.Actual || f.Actual == models.CategoryOther {
			continue
		}
		if !c.rules.Has(f.Actual) {
			continue
		}
		var fresh []string
		for _, w := range wordPattern.FindAllString(strings.ToLower(f.Description), -1) {
			if len(w) <= 3 || c.rules.HasKeyword(f.Actual, w) || contains(fresh, w) {
				continue
			}
			fresh = append(fresh, w)
		}
		if len(fresh) > 0 {
			c.rules.Add(f.Actual, fresh...)
			added += len(fresh)
		}
	}
	return added
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
