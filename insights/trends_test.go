package insights

import (
	"testing"

	"fintrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleHistory() models.History {
	return models.History{Transactions: []models.Transaction{
		txn("2024-02-01", "3000", "Income"),
		txn("2024-02-03", "-1200", "Housing"),
		txn("2024-01-05", "-30", "Food & Dining"),
		txn("2024-01-09", "-10", "Food & Dining"),
		txn("2024-01-15", "2500", "Income"),
	}}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleHistory())

	assert.Equal(t, "5500", s.TotalIncome.String())
	assert.Equal(t, "1240", s.TotalExpenses.String())
	assert.Equal(t, "4260", s.Net.String())
	assert.Equal(t, 5, s.TransactionCount)
}

func TestSpendingTrends(t *testing.T) {
	trends := SpendingTrends(sampleHistory())

	require.Len(t, trends, 2)
	assert.Equal(t, "2024-01", trends[0].Month)
	assert.Equal(t, "2500", trends[0].Income.String())
	assert.Equal(t, "40", trends[0].Expenses.String())
	assert.Equal(t, "2024-02", trends[1].Month)
	assert.Equal(t, "1200", trends[1].Expenses.String())

	assert.Empty(t, SpendingTrends(models.History{}))
}

func TestCategoryInsights(t *testing.T) {
	got := CategoryInsights(sampleHistory())

	require.Len(t, got, 2)
	food := got["Food & Dining"]
	assert.Equal(t, 2, food.Count)
	assert.Equal(t, "40", food.Total.String())
	assert.Equal(t, "20", food.Average.String())
	assert.NotContains(t, got, "Income")
}
