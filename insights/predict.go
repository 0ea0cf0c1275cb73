package insights

import (
	"math"
	"sort"

	"fintrack/models"

	"github.com/shopspring/decimal"
)

const (
	minPredictTransactions = 6
	minPredictMonths       = 3
)

// PredictSpending 用月度支出做最小二乘线性拟合，预测下个月支出
// category 为空时统计全部类别；数据不足时 ok 为 false
func PredictSpending(h models.History, category string) (amount float64, ok bool) {
	if len(h.Transactions) < minPredictTransactions {
		return 0, false
	}

	monthly := make(map[string]decimal.Decimal)
	for _, t := range h.Transactions {
		if category != "" && t.Category != category {
			continue
		}
		spent := decimal.Zero
		if t.IsExpense() {
			spent = t.Amount.Abs()
		}
		monthly[t.MonthKey()] = monthly[t.MonthKey()].Add(spent)
	}
	if len(monthly) < minPredictMonths {
		return 0, false
	}

	months := make([]string, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	sort.Strings(months)

	ys := make([]float64, len(months))
	for i, m := range months {
		ys[i] = monthly[m].InexactFloat64()
	}
	slope, intercept := leastSquares(ys)
	next := intercept + slope*float64(len(ys))
	return math.Max(0, next), true
}

// leastSquares 对 x = 0..n-1 拟合 y = slope*x + intercept
func leastSquares(ys []float64) (slope, intercept float64) {
	n := float64(len(ys))
	var sumX, sumY float64
	for i, y := range ys {
		sumX += float64(i)
		sumY += y
	}
	meanX, meanY := sumX/n, sumY/n

	var sxy, sxx float64
	for i, y := range ys {
		dx := float64(i) - meanX
		sxy += dx * (y - meanY)
		sxx += dx * dx
	}
	if sxx == 0 {
		return 0, meanY
	}
	slope = sxy / sxx
	return slope, meanY - slope*meanX
}
