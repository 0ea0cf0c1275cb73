package badges

// Condition 徽章获得条件，封闭枚举
type Condition int

const (
	ConditionUnknown Condition = iota
	ConditionFirstTransaction
	ConditionFirstIncome
	ConditionConsecutiveSavings
	ConditionFirstGoalCompleted
	ConditionFirstGoalSet
	ConditionFirstDebtAdded
	ConditionDebtPaidOff
	ConditionBudgetControl
	ConditionConsistentTracking
	ConditionMonthlyTracking
	ConditionBigTransaction
	ConditionCategoryDiversity
	ConditionEmergencyFund
	ConditionHundredTransactions
	ConditionExpenseReduction
)

var conditionKeys = [...]string{
	ConditionUnknown:             "unknown",
	ConditionFirstTransaction:    "first_transaction",
	ConditionFirstIncome:         "first_income",
	ConditionConsecutiveSavings:  "consecutive_savings",
	ConditionFirstGoalCompleted:  "first_goal_completed",
	ConditionFirstGoalSet:        "first_goal_set",
	ConditionFirstDebtAdded:      "first_debt_added",
	ConditionDebtPaidOff:         "debt_paid_off",
	ConditionBudgetControl:       "budget_control",
	ConditionConsistentTracking:  "consistent_tracking",
	ConditionMonthlyTracking:     "monthly_tracking",
	ConditionBigTransaction:      "big_transaction",
	ConditionCategoryDiversity:   "category_diversity",
	ConditionEmergencyFund:       "emergency_fund",
	ConditionHundredTransactions: "hundred_transactions",
	ConditionExpenseReduction:    "expense_reduction",
}

var conditionByKey = func() map[string]Condition {
	m := make(map[string]Condition, len(conditionKeys))
	for c, key := range conditionKeys {
		if Condition(c) != ConditionUnknown {
			m[key] = Condition(c)
		}
	}
	return m
}()

// ParseCondition 解析数据库中保存的条件 key，无法识别时返回 ConditionUnknown
func ParseCondition(key string) Condition {
	if c, ok := conditionByKey[key]; ok {
		return c
	}
	return ConditionUnknown
}

// String 返回条件 key
func (c Condition) String() string {
	if c < 0 || int(c) >= len(conditionKeys) {
		return conditionKeys[ConditionUnknown]
	}
	return conditionKeys[c]
}

// Known 是否为已知条件
func (c Condition) Known() bool {
	return c > ConditionUnknown && int(c) < len(conditionKeys)
}
