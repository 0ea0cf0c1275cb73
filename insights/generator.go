package insights

import (
	"fmt"
	"sort"
	"time"

	"fintrack/models"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	// MaxInsights 最多返回的洞察条数
	MaxInsights = 8

	EmptyHistoryMessage = "Upload some transactions to get personalized insights!"
	NoInsightsMessage   = "Keep tracking your expenses to get personalized insights!"
)

var (
	hundred     = decimal.NewFromInt(100)
	spikeFactor = decimal.NewFromFloat(1.5)
	daysPerWeek = decimal.NewFromInt(7)
)

// Option 生成器与评分器共用的配置项
type Option func(*options)

type options struct {
	now func() time.Time
	log zerolog.Logger
}

// WithClock 注入时钟
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger 指定日志
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

func newOptions(opts []Option) options {
	o := options{now: time.Now, log: log.Logger}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type rule struct {
	name string
	fn   func(models.History) []string
}

// Generator 理财洞察生成器
type Generator struct {
	options
	rules []rule
}

// NewGenerator 创建洞察生成器
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{options: newOptions(opts)}
	g.rules = []rule{
		{"monthly_change", g.monthlyChange},
		{"top_category", g.topCategory},
		{"weekly_spike", g.weeklySpike},
		{"savings_rate", g.savingsRate},
		{"goals", g.goalStatus},
		{"debt", g.debtFocus},
		{"frequency", g.frequency},
		{"seasonal", g.seasonal},
	}
	return g
}

// Generate 按固定顺序执行各条规则，最多返回 8 条
func (g *Generator) Generate(h models.History) []string {
	if h.IsEmpty() {
		return []string{EmptyHistoryMessage}
	}

	var lines []string
	for _, r := range g.rules {
		lines = append(lines, g.run(r, h)...)
	}
	if len(lines) == 0 {
		return []string{NoInsightsMessage}
	}
	if len(lines) > MaxInsights {
		lines = lines[:MaxInsights]
	}
	return lines
}

func (g *Generator) run(r rule, h models.History) (lines []string) {
	defer func() {
		if rec := recover(); rec != nil {
			g.log.Error().Interface("panic", rec).Str("rule", r.name).Msg("洞察规则执行异常")
			lines = nil
		}
	}()
	return r.fn(h)
}

func (g *Generator) today() time.Time {
	return models.DayOf(g.now())
}

// monthlyChange 本月与上月支出对比
func (g *Generator) monthlyChange(h models.History) []string {
	now := g.now()
	current, previous := models.MonthKeyOf(now), models.PreviousMonthKey(now)
	var cur, prev decimal.Decimal
	for _, t := range h.Transactions {
		if !t.IsExpense() {
			continue
		}
		switch t.MonthKey() {
		case current:
			cur = cur.Add(t.Amount.Abs())
		case previous:
			prev = prev.Add(t.Amount.Abs())
		}
	}
	if prev.IsZero() {
		return nil
	}

	change := cur.Sub(prev).Div(prev).Mul(hundred).InexactFloat64()
	switch {
	case change > 10:
		return []string{fmt.Sprintf("⚠️ Your spending increased by %.1f%% this month!", change)}
	case change < -10:
		return []string{fmt.Sprintf("✅ Great job! You reduced spending by %.1f%% this month!", -change)}
	}
	return nil
}

// topCategory 支出最高的类别，金额相同时按类别名排序取第一个
func (g *Generator) topCategory(h models.History) []string {
	totals := expenseByCategory(h.Transactions)
	if len(totals) == 0 {
		return nil
	}
	var top string
	var topAmount decimal.Decimal
	for _, category := range sortedKeys(totals) {
		if top == "" || totals[category].GreaterThan(topAmount) {
			top, topAmount = category, totals[category]
		}
	}
	return []string{fmt.Sprintf("💰 Your highest spending category is '%s' with $%s", top, topAmount.StringFixed(2))}
}

// weeklySpike 最近 7 天某类别支出超过其周均值 1.5 倍时提示，每个类别一条
// 周均值 = 该类别单笔平均支出 * 7
func (g *Generator) weeklySpike(h models.History) []string {
	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int64)
	recent := make(map[string]decimal.Decimal)
	since := g.today().AddDate(0, 0, -7)
	for _, t := range h.Transactions {
		if !t.IsExpense() {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount.Abs())
		counts[t.Category]++
		if !models.DayOf(t.Date).Before(since) {
			recent[t.Category] = recent[t.Category].Add(t.Amount.Abs())
		}
	}

	var lines []string
	for _, category := range sortedKeys(recent) {
		avg := totals[category].Div(decimal.NewFromInt(counts[category])).Mul(daysPerWeek)
		if recent[category].GreaterThan(avg.Mul(spikeFactor)) {
			lines = append(lines, fmt.Sprintf("📈 You spent 50%% more than usual on '%s' this week!", category))
		}
	}
	return lines
}

// savingsRate 储蓄率，只输出第一条命中的
func (g *Generator) savingsRate(h models.History) []string {
	s := Summarize(h)
	if !s.TotalIncome.IsPositive() {
		return nil
	}
	rate := s.Net.Div(s.TotalIncome).Mul(hundred).InexactFloat64()
	switch {
	case rate > 20:
		return []string{fmt.Sprintf("🎉 Excellent! You're saving %.1f%% of your income!", rate)}
	case rate < 10:
		return []string{fmt.Sprintf("💡 Consider increasing your savings rate. Currently at %.1f%%", rate)}
	case rate < 0:
		return []string{"⚠️ You're spending more than you earn. Consider reducing expenses."}
	}
	return nil
}

func (g *Generator) goalStatus(h models.History) []string {
	today := g.today()
	var lines []string
	for _, goal := range h.Goals {
		progress := goal.ProgressPercentage()
		switch {
		case progress > 75:
			lines = append(lines, fmt.Sprintf("🎯 You're %.1f%% towards your '%s' goal!", progress, goal.Name))
		case !goal.IsCompleted && models.DayOf(goal.TargetDate).Before(today):
			lines = append(lines, fmt.Sprintf("⏰ Your '%s' goal deadline has passed. Time to reassess!", goal.Name))
		}
	}
	return lines
}

// debtFocus 未还清债务中利率最高的一笔
func (g *Generator) debtFocus(h models.History) []string {
	var focus *models.Debt
	for i := range h.Debts {
		d := &h.Debts[i]
		if !d.CurrentBalance.IsPositive() {
			continue
		}
		if focus == nil || d.InterestRate.GreaterThan(focus.InterestRate) {
			focus = d
		}
	}
	if focus == nil {
		return nil
	}
	return []string{fmt.Sprintf("💳 Focus on paying off '%s' first - it has the highest interest rate (%s%%)",
		focus.Name, focus.InterestRate.StringFixed(1))}
}

func (g *Generator) frequency(h models.History) []string {
	n := len(h.Transactions)
	if n <= 30 {
		return nil
	}
	first, last := dateRange(h.Transactions)
	days := models.DaysBetween(first, last)
	if days < 1 {
		days = 1
	}
	perDay := float64(n) / float64(days)
	if perDay <= 3 {
		return nil
	}
	return []string{fmt.Sprintf("📊 You make an average of %.1f transactions per day", perDay)}
}

// seasonal 按自然月（不区分年份）汇总支出，取最高的月份
func (g *Generator) seasonal(h models.History) []string {
	if len(h.Transactions) <= 100 {
		return nil
	}
	var byMonth [13]decimal.Decimal
	found := false
	for _, t := range h.Transactions {
		if t.IsExpense() {
			byMonth[t.Date.Month()] = byMonth[t.Date.Month()].Add(t.Amount.Abs())
			found = true
		}
	}
	if !found {
		return nil
	}
	peak := time.January
	for m := time.February; m <= time.December; m++ {
		if byMonth[m].GreaterThan(byMonth[peak]) {
			peak = m
		}
	}
	return []string{fmt.Sprintf("📅 You tend to spend most in %s", peak.String()[:3])}
}

func expenseByCategory(txns []models.Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if t.IsExpense() {
			totals[t.Category] = totals[t.Category].Add(t.Amount.Abs())
		}
	}
	return totals
}

func dateRange(txns []models.Transaction) (first, last time.Time) {
	for i, t := range txns {
		if i == 0 || t.Date.Before(first) {
			first = t.Date
		}
		if i == 0 || t.Date.After(last) {
			last = t.Date
		}
	}
	return first, last
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
