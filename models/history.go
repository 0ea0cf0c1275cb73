package models

import "time"

// History 某个用户在某一时刻的数据快照，徽章、洞察、评分都基于它计算
type History struct {
	Transactions []Transaction
	Goals        []Goal
	Debts        []Debt
}

// IsEmpty 没有任何交易记录
func (h History) IsEmpty() bool {
	return len(h.Transactions) == 0
}

// DayOf 取日期部分（按 t 自身时区的年月日），统一为 UTC 零点，便于比较天数
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthKeyOf 返回 YYYY-MM 形式的月份键
func MonthKeyOf(t time.Time) string {
	return t.Format("2006-01")
}

// PreviousMonthKey 上一个自然月的月份键
func PreviousMonthKey(now time.Time) string {
	y, m, _ := now.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0).Format("2006-01")
}

// DaysBetween 两个日期相差的天数（按日期部分计算）
func DaysBetween(from, to time.Time) int {
	return int(DayOf(to).Sub(DayOf(from)).Hours() / 24)
}
