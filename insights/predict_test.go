package insights

import (
	"testing"

	"fintrack/models"

	"github.com/stretchr/testify/assert"
)

func monthlyExpenses(amounts map[string]string, category string) []models.Transaction {
	var txns []models.Transaction
	for month, amount := range amounts {
		// 每月拆成两笔，满足最少 6 笔的要求
		half := dec(amount).Div(dec("2")).String()
		txns = append(txns,
			txn(month+"-05", half, category),
			txn(month+"-20", half, category),
		)
	}
	return txns
}

func TestPredictSpending_NotEnoughData(t *testing.T) {
	_, ok := PredictSpending(models.History{Transactions: monthlyExpenses(map[string]string{
		"2024-01": "-100",
		"2024-02": "-200",
	}, "Food")}, "")
	assert.False(t, ok, "two months")

	_, ok = PredictSpending(models.History{Transactions: []models.Transaction{
		txn("2024-01-01", "-1", "Food"),
		txn("2024-02-01", "-1", "Food"),
		txn("2024-03-01", "-1", "Food"),
		txn("2024-04-01", "-1", "Food"),
		txn("2024-05-01", "-1", "Food"),
	}}, "")
	assert.False(t, ok, "five transactions")
}

func TestPredictSpending_LinearTrend(t *testing.T) {
	h := models.History{Transactions: monthlyExpenses(map[string]string{
		"2024-01": "-100",
		"2024-02": "-200",
		"2024-03": "-300",
	}, "Food")}

	got, ok := PredictSpending(h, "")
	assert.True(t, ok)
	assert.InDelta(t, 400, got, 1e-9)
}

func TestPredictSpending_FloorsAtZero(t *testing.T) {
	h := models.History{Transactions: monthlyExpenses(map[string]string{
		"2024-01": "-500",
		"2024-02": "-200",
		"2024-03": "-50",
	}, "Food")}

	got, ok := PredictSpending(h, "")
	assert.True(t, ok)
	assert.Equal(t, 0.0, got)
}

func TestPredictSpending_IncomeCountsAsZero(t *testing.T) {
	txns := monthlyExpenses(map[string]string{
		"2024-01": "1000",
		"2024-02": "-100",
		"2024-03": "-200",
	}, "Mixed")

	got, ok := PredictSpending(models.History{Transactions: txns}, "")
	assert.True(t, ok)
	assert.InDelta(t, 300, got, 1e-9)
}

func TestPredictSpending_ByCategory(t *testing.T) {
	txns := monthlyExpenses(map[string]string{
		"2024-01": "-100",
		"2024-02": "-100",
		"2024-03": "-100",
	}, "Food")
	txns = append(txns, monthlyExpenses(map[string]string{
		"2024-01": "-10",
		"2024-02": "-20",
	}, "Fuel")...)

	got, ok := PredictSpending(models.History{Transactions: txns}, "Food")
	assert.True(t, ok)
	assert.InDelta(t, 100, got, 1e-9)

	_, ok = PredictSpending(models.History{Transactions: txns}, "Fuel")
	assert.False(t, ok)

	_, ok = PredictSpending(models.History{Transactions: txns}, "Travel")
	assert.False(t, ok)
}
