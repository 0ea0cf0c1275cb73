package badges

import "fintrack/models"

// Catalog 内置徽章目录，首次启动时写入，已存在同名徽章则跳过
func Catalog() []models.Badge {
	return []models.Badge{
		{Name: "First Transaction", Description: "Upload your first transaction", Icon: "🎯", Condition: ConditionFirstTransaction.String()},
		{Name: "Saver", Description: "Save money for 3 consecutive months", Icon: "💰", Condition: ConditionConsecutiveSavings.String()},
		{Name: "Goal Achiever", Description: "Complete your first financial goal", Icon: "🏆", Condition: ConditionFirstGoalCompleted.String()},
		{Name: "Debt Slayer", Description: "Pay off any debt completely", Icon: "⚔️", Condition: ConditionDebtPaidOff.String()},
		{Name: "Budget Master", Description: "Keep expenses under control for a month", Icon: "📊", Condition: ConditionBudgetControl.String()},
		{Name: "Consistent Tracker", Description: "Track expenses for 30 consecutive days", Icon: "📈", Condition: ConditionConsistentTracking.String()},
		{Name: "Big Spender", Description: "Record a transaction over $1000", Icon: "💸", Condition: ConditionBigTransaction.String()},
		{Name: "Categorization Pro", Description: "Have transactions in 10 different categories", Icon: "🏷️", Condition: ConditionCategoryDiversity.String()},
		{Name: "Emergency Fund", Description: "Save 3 months of expenses", Icon: "🛡️", Condition: ConditionEmergencyFund.String()},
		{Name: "Century Club", Description: "Record 100 transactions", Icon: "💯", Condition: ConditionHundredTransactions.String()},
		{Name: "Income Earner", Description: "Record your first income transaction", Icon: "💵", Condition: ConditionFirstIncome.String()},
		{Name: "Monthly Tracker", Description: "Track transactions for a full month", Icon: "📅", Condition: ConditionMonthlyTracking.String()},
		{Name: "Expense Cutter", Description: "Reduce monthly expenses by 20%", Icon: "✂️", Condition: ConditionExpenseReduction.String()},
		{Name: "Goal Setter", Description: "Create your first financial goal", Icon: "🎯", Condition: ConditionFirstGoalSet.String()},
		{Name: "Debt Tracker", Description: "Add your first debt to track", Icon: "📋", Condition: ConditionFirstDebtAdded.String()},
	}
}
