package badges

import "fintrack/models"

// Progress 估算距离获得徽章的进度（0-100），仅用于展示，不会授予徽章
// 没有定义进度公式的条件返回 0
func (e *Evaluator) Progress(c Condition, h models.History) (pct int) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Interface("panic", r).Str("condition", c.String()).Msg("徽章进度计算异常")
			pct = 0
		}
	}()

	switch c {
	case ConditionFirstTransaction:
		return capPercent(len(h.Transactions) * 100)
	case ConditionHundredTransactions:
		return capPercent(len(h.Transactions))
	case ConditionCategoryDiversity:
		return capPercent(distinctCategories(h.Transactions) * 10)
	case ConditionFirstGoalCompleted:
		return capPercent(completedGoals(h.Goals) * 100)
	case ConditionFirstGoalSet:
		return capPercent(len(h.Goals) * 100)
	case ConditionConsistentTracking:
		return capPercent(e.recentTrackedDays(h.Transactions) * 100 / trackingRequiredDays)
	default:
		return 0
	}
}

// ProgressKey 按条件 key 估算进度，未知 key 返回 0
func (e *Evaluator) ProgressKey(key string, h models.History) int {
	return e.Progress(ParseCondition(key), h)
}

func capPercent(v int) int {
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return v
}
