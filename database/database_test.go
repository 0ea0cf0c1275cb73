package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"fintrack/badges"
	"fintrack/config"
	"fintrack/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	db, err := Open(config.DatabaseConfig{
		Driver:   "sqlite",
		Path:     filepath.Join(t.TempDir(), "fintrack.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	ctx := context.Background()
	store := NewStore(db)

	added, err := store.SeedBadges(ctx, badges.Catalog())
	require.NoError(t, err)
	assert.Equal(t, 15, added)

	// 重复执行不会重复写入
	added, err = store.SeedBadges(ctx, badges.Catalog())
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	require.NoError(t, store.EnsureUser(ctx, 1))
	require.NoError(t, store.EnsureUser(ctx, 1))

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.CreateTransactions(ctx, []models.Transaction{
		{UserID: 1, Date: day, Amount: decimal.RequireFromString("-4.75"), Description: "starbucks", Category: "Food & Dining"},
		{UserID: 1, Date: day, Amount: decimal.RequireFromString("2500"), Description: "salary", Category: "Income"},
	}))

	catalog, err := store.LoadBadgeCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, catalog, 15)
	assert.Equal(t, "First Transaction", catalog[0].Name)

	ids := []uint{catalog[0].ID, catalog[10].ID}
	require.NoError(t, store.InsertUserBadges(ctx, 1, ids, time.Now()))
	// 唯一索引冲突时跳过
	require.NoError(t, store.InsertUserBadges(ctx, 1, ids, time.Now()))

	earned, err := store.LoadEarnedBadgeIDs(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, earned, 2)

	userBadges, err := store.LoadUserBadges(ctx, 1)
	require.NoError(t, err)
	require.Len(t, userBadges, 2)
	assert.NotEmpty(t, userBadges[0].Badge.Name)

	h, err := store.LoadHistory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, h.Transactions, 2)
	assert.True(t, h.Transactions[0].Amount.Equal(decimal.RequireFromString("-4.75")))

	require.NoError(t, store.DeleteTransaction(ctx, 1, h.Transactions[0].ID))
	assert.ErrorIs(t, store.DeleteTransaction(ctx, 1, h.Transactions[0].ID), ErrNotFound)

	goal := &models.Goal{UserID: 1, Name: "Trip", TargetAmount: decimal.NewFromInt(100), TargetDate: day.AddDate(1, 0, 0)}
	require.NoError(t, store.CreateGoal(ctx, goal))
	require.NoError(t, goal.ApplySaved(decimal.NewFromInt(120)))
	require.NoError(t, store.UpdateGoalProgress(ctx, goal))

	reloaded, err := store.GetGoal(ctx, 1, goal.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsCompleted)

	_, err = store.GetGoal(ctx, 2, goal.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.DeleteGoal(ctx, 2, goal.ID), ErrNotFound)
	require.NoError(t, store.DeleteGoal(ctx, 1, goal.ID))
	goals, err := store.LoadGoals(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, goals)

	debt := &models.Debt{UserID: 1, Name: "Visa", TotalAmount: decimal.NewFromInt(500), CurrentBalance: decimal.NewFromInt(200)}
	require.NoError(t, store.CreateDebt(ctx, debt))
	require.NoError(t, store.DeleteDebt(ctx, 1, debt.ID))
	debts, err := store.LoadDebts(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, debts)

	txn, err := store.GetTransaction(ctx, 1, h.Transactions[1].ID)
	require.NoError(t, err)
	txn.Category = "Salary"
	require.NoError(t, store.UpdateTransactionCategory(ctx, txn))
	reloadedTxn, err := store.GetTransaction(ctx, 1, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, "Salary", reloadedTxn.Category)
}
