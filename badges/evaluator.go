package badges

import (
	"sort"
	"time"

	"fintrack/models"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	bigTransactionThreshold = decimal.NewFromInt(1000)
	budgetRatio             = decimal.NewFromFloat(0.8)
	three                   = decimal.NewFromInt(3)
)

const (
	trackingWindowDays   = 30
	trackingRequiredDays = 20
	monthlyTrackingMin   = 10
	diversityRequired    = 10
	hundredTransactions  = 100
	savingsRunLength     = 3
)

// Evaluator 徽章条件判定器
// 每次调用都基于传入的 History 完整重算，不保存任何中间状态
type Evaluator struct {
	now func() time.Time
	log zerolog.Logger
}

// Option 判定器配置项
type Option func(*Evaluator)

// WithClock 注入时钟，测试中用于固定"当前时间"
func WithClock(now func() time.Time) Option {
	return func(e *Evaluator) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLogger 指定日志
func WithLogger(l zerolog.Logger) Option {
	return func(e *Evaluator) {
		e.log = l
	}
}

// NewEvaluator 创建判定器
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{now: time.Now, log: log.Logger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CheckKey 按数据库中保存的条件 key 判定
func (e *Evaluator) CheckKey(key string, h models.History) bool {
	c := ParseCondition(key)
	if !c.Known() {
		e.log.Warn().Str("condition", key).Msg("未知的徽章条件")
		return false
	}
	return e.Check(c, h)
}

// Check 判定条件是否满足，规则内部的异常被记录并视为不满足
func (e *Evaluator) Check(c Condition, h models.History) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Interface("panic", r).Str("condition", c.String()).Msg("徽章条件计算异常")
			ok = false
		}
	}()

	switch c {
	case ConditionFirstTransaction:
		return len(h.Transactions) >= 1
	case ConditionFirstIncome:
		return hasIncome(h.Transactions)
	case ConditionConsecutiveSavings:
		return hasSavingsRun(h.Transactions)
	case ConditionFirstGoalCompleted:
		return completedGoals(h.Goals) >= 1
	case ConditionFirstGoalSet:
		return len(h.Goals) >= 1
	case ConditionFirstDebtAdded:
		return len(h.Debts) >= 1
	case ConditionDebtPaidOff:
		return hasPaidOffDebt(h.Debts)
	case ConditionBudgetControl:
		return e.budgetControl(h.Transactions)
	case ConditionConsistentTracking:
		return e.recentTrackedDays(h.Transactions) >= trackingRequiredDays
	case ConditionMonthlyTracking:
		return monthlyTracking(h.Transactions)
	case ConditionBigTransaction:
		return hasBigTransaction(h.Transactions)
	case ConditionCategoryDiversity:
		return distinctCategories(h.Transactions) >= diversityRequired
	case ConditionEmergencyFund:
		return emergencyFund(h.Transactions)
	case ConditionHundredTransactions:
		return len(h.Transactions) >= hundredTransactions
	case ConditionExpenseReduction:
		return e.expenseReduction(h.Transactions)
	default:
		e.log.Warn().Str("condition", c.String()).Msg("未知的徽章条件")
		return false
	}
}

func hasIncome(txns []models.Transaction) bool {
	for _, t := range txns {
		if t.IsIncome() {
			return true
		}
	}
	return false
}

// hasSavingsRun 按月份键排序后，相邻位置连续 3 个月净额为正即满足
// 月份键不要求日历上相邻
func hasSavingsRun(txns []models.Transaction) bool {
	net := make(map[string]decimal.Decimal)
	for _, t := range txns {
		key := t.MonthKey()
		net[key] = net[key].Add(t.Amount)
	}
	if len(net) < savingsRunLength {
		return false
	}

	run := 0
	for _, key := range sortedKeys(net) {
		if net[key].IsPositive() {
			run++
			if run >= savingsRunLength {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}

func completedGoals(goals []models.Goal) int {
	n := 0
	for _, g := range goals {
		if g.IsCompleted {
			n++
		}
	}
	return n
}

func hasPaidOffDebt(debts []models.Debt) bool {
	for _, d := range debts {
		if d.CurrentBalance.IsZero() {
			return true
		}
	}
	return false
}

// budgetControl 上个自然月支出低于收入的 80%，且当月同时有收入和支出
func (e *Evaluator) budgetControl(txns []models.Transaction) bool {
	month := models.PreviousMonthKey(e.now())
	var income, expenses decimal.Decimal
	hasExpense := false
	for _, t := range txns {
		if t.MonthKey() != month {
			continue
		}
		switch {
		case t.IsExpense():
			hasExpense = true
			expenses = expenses.Add(t.Amount.Abs())
		case t.IsIncome():
			income = income.Add(t.Amount)
		}
	}
	if !hasExpense {
		return false
	}
	return income.IsPositive() && expenses.LessThan(income.Mul(budgetRatio))
}

// recentTrackedDays 最近 30 天内有交易的不同日期数
func (e *Evaluator) recentTrackedDays(txns []models.Transaction) int {
	since := models.DayOf(e.now()).AddDate(0, 0, -trackingWindowDays)
	days := make(map[time.Time]struct{})
	for _, t := range txns {
		day := models.DayOf(t.Date)
		if !day.Before(since) {
			days[day] = struct{}{}
		}
	}
	return len(days)
}

func monthlyTracking(txns []models.Transaction) bool {
	if len(txns) < monthlyTrackingMin {
		return false
	}
	earliest, latest := txns[0].Date, txns[0].Date
	for _, t := range txns[1:] {
		if t.Date.Before(earliest) {
			earliest = t.Date
		}
		if t.Date.After(latest) {
			latest = t.Date
		}
	}
	return models.DaysBetween(earliest, latest) >= trackingWindowDays
}

func hasBigTransaction(txns []models.Transaction) bool {
	for _, t := range txns {
		if t.Amount.Abs().GreaterThanOrEqual(bigTransactionThreshold) {
			return true
		}
	}
	return false
}

func distinctCategories(txns []models.Transaction) int {
	seen := make(map[string]struct{})
	for _, t := range txns {
		seen[t.Category] = struct{}{}
	}
	return len(seen)
}

// emergencyFund 净储蓄不少于 3 倍月均支出（只计有支出的月份）
func emergencyFund(txns []models.Transaction) bool {
	monthly := make(map[string]decimal.Decimal)
	var income, expenses decimal.Decimal
	for _, t := range txns {
		switch {
		case t.IsExpense():
			abs := t.Amount.Abs()
			expenses = expenses.Add(abs)
			monthly[t.MonthKey()] = monthly[t.MonthKey()].Add(abs)
		case t.IsIncome():
			income = income.Add(t.Amount)
		}
	}
	if len(monthly) == 0 {
		return false
	}
	// net >= 3 * expenses / months，两边同乘月份数避免除法精度
	months := decimal.NewFromInt(int64(len(monthly)))
	net := income.Sub(expenses)
	return net.Mul(months).GreaterThanOrEqual(expenses.Mul(three))
}

// expenseReduction 本月支出比上月下降至少 20%
func (e *Evaluator) expenseReduction(txns []models.Transaction) bool {
	now := e.now()
	current, previous := models.MonthKeyOf(now), models.PreviousMonthKey(now)
	var curTotal, prevTotal decimal.Decimal
	var curCount, prevCount int
	for _, t := range txns {
		if !t.IsExpense() {
			continue
		}
		switch t.MonthKey() {
		case current:
			curCount++
			curTotal = curTotal.Add(t.Amount.Abs())
		case previous:
			prevCount++
			prevTotal = prevTotal.Add(t.Amount.Abs())
		}
	}
	if curCount == 0 || prevCount == 0 || prevTotal.IsZero() {
		return false
	}
	return curTotal.LessThanOrEqual(prevTotal.Mul(budgetRatio))
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
