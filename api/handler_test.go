package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fintrack/categorizer"
	"fintrack/database"
	"fintrack/insights"
	"fintrack/models"
	"fintrack/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFinance 记录调用参数并返回预设结果
type fakeFinance struct {
	*categorizer.Categorizer

	err        error
	names      []string
	lastTxn    *models.Transaction
	txns       []models.Transaction
	goals      []models.Goal
	debts      []models.Debt
	deleted    []uint
	progress   map[string]int
	lines      []string
	score      int
	prediction float64
	predictOK  bool
	category   string
}

func newFakeFinance() *fakeFinance {
	return &fakeFinance{Categorizer: categorizer.New(nil)}
}

func (f *fakeFinance) AddTransaction(_ context.Context, txn *models.Transaction) ([]string, error) {
	f.lastTxn = txn
	if f.err != nil {
		return nil, f.err
	}
	txn.ID = 42
	return f.names, nil
}

func (f *fakeFinance) ListTransactions(context.Context, uint) ([]models.Transaction, error) {
	return f.txns, f.err
}

func (f *fakeFinance) DeleteTransaction(_ context.Context, _, id uint) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakeFinance) RecategorizeTransaction(_ context.Context, userID, id uint, category string) (*models.Transaction, int, error) {
	f.category = category
	if f.err != nil {
		return nil, 0, f.err
	}
	return &models.Transaction{ID: id, UserID: userID, Description: "PETCO #12", Category: category}, 1, nil
}

func (f *fakeFinance) CategorizationStats(context.Context, uint) (*service.CategorizationReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &service.CategorizationReport{
		Accuracy:   categorizer.Accuracy{Total: 4, Correct: 3, Incorrect: 1, Percent: 75},
		Statistics: categorizer.CategoryStatistics(f.txns),
	}, nil
}

func (f *fakeFinance) ListGoals(context.Context, uint) ([]models.Goal, error) {
	return f.goals, f.err
}

func (f *fakeFinance) DeleteGoal(_ context.Context, _, id uint) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakeFinance) ListDebts(context.Context, uint) ([]models.Debt, error) {
	return f.debts, f.err
}

func (f *fakeFinance) DeleteDebt(_ context.Context, _, id uint) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakeFinance) CreateGoal(_ context.Context, goal *models.Goal) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	goal.ID = 1
	return f.names, nil
}

func (f *fakeFinance) UpdateGoalSaved(_ context.Context, userID, id uint, saved decimal.Decimal) (*models.Goal, []string, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	goal := &models.Goal{ID: id, UserID: userID, TargetAmount: decimal.NewFromInt(1000)}
	_ = goal.ApplySaved(saved)
	return goal, f.names, nil
}

func (f *fakeFinance) CreateDebt(_ context.Context, debt *models.Debt) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.names, nil
}

func (f *fakeFinance) UpdateDebtBalance(_ context.Context, userID, id uint, balance decimal.Decimal) (*models.Debt, []string, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	return &models.Debt{ID: id, UserID: userID, TotalAmount: decimal.NewFromInt(500), CurrentBalance: balance}, f.names, nil
}

func (f *fakeFinance) UserBadges(context.Context, uint) ([]models.UserBadge, error) {
	return []models.UserBadge{{ID: 1, BadgeID: 1, Badge: models.Badge{ID: 1, Name: "First Transaction"}}}, f.err
}

func (f *fakeFinance) CheckAndAwardBadges(context.Context, uint) ([]string, error) {
	return f.names, f.err
}

func (f *fakeFinance) BadgeProgress(context.Context, uint) (map[string]int, error) {
	return f.progress, f.err
}

func (f *fakeFinance) GenerateInsights(context.Context, uint) ([]string, error) {
	return f.lines, f.err
}

func (f *fakeFinance) FinancialHealthScore(context.Context, uint) (int, error) {
	return f.score, f.err
}

func (f *fakeFinance) PredictSpending(_ context.Context, _ uint, category string) (float64, bool, error) {
	f.category = category
	return f.prediction, f.predictOK, f.err
}

func (f *fakeFinance) SpendingTrends(context.Context, uint) ([]insights.MonthTrend, error) {
	return []insights.MonthTrend{{Month: "2024-05"}}, f.err
}

func (f *fakeFinance) CategoryInsights(context.Context, uint) (map[string]insights.CategoryInsight, error) {
	return map[string]insights.CategoryInsight{"Housing": {Count: 1}}, f.err
}

func (f *fakeFinance) Summary(context.Context, uint) (insights.Summary, error) {
	return insights.Summary{TransactionCount: 2}, f.err
}

func newTestRouter(f Finance) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r.Group("/api/v1"), f)
	return r
}

func doJSON(r http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestCategoryHandler(t *testing.T) {
	r := newTestRouter(newFakeFinance())

	w, resp := doJSON(r, "GET", "/api/v1/categories", "")
	assert.Equal(t, 200, w.Code)
	categories := resp["data"].([]interface{})
	assert.Equal(t, "Other", categories[len(categories)-1])

	w, resp = doJSON(r, "POST", "/api/v1/categorize", `{"description":"STARBUCKS STORE #1234"}`)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "Food & Dining", resp["data"].(map[string]interface{})["category"])

	w, resp = doJSON(r, "POST", "/api/v1/categorize/suggest", `{"description":"uber eats"}`)
	assert.Equal(t, 200, w.Code)
	assert.NotEmpty(t, resp["data"].(map[string]interface{})["suggestions"])

	w, _ = doJSON(r, "POST", "/api/v1/categorize", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransactionHandler_Create(t *testing.T) {
	f := newFakeFinance()
	f.names = []string{"First Transaction"}
	r := newTestRouter(f)

	w, resp := doJSON(r, "POST", "/api/v1/users/7/transactions", `{"date":"2024-01-15","amount":-4.5,"description":"Starbucks Coffee"}`)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "创建成功", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{"First Transaction"}, data["new_badges"])

	require.NotNil(t, f.lastTxn)
	assert.Equal(t, uint(7), f.lastTxn.UserID)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), f.lastTxn.Date)
	assert.True(t, f.lastTxn.Amount.Equal(decimal.RequireFromString("-4.5")))
	assert.Empty(t, f.lastTxn.Category)
}

func TestTransactionHandler_CreateErrors(t *testing.T) {
	f := newFakeFinance()
	r := newTestRouter(f)

	w, _ := doJSON(r, "POST", "/api/v1/users/abc/transactions", `{"date":"2024-01-15","amount":1,"description":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(r, "POST", "/api/v1/users/7/transactions", `{"date":"yesterday","amount":1,"description":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	f.err = service.ErrInvalidInput
	w, _ = doJSON(r, "POST", "/api/v1/users/7/transactions", `{"date":"2024-01-15","amount":1,"description":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	f.err = errors.New("connection refused")
	w, resp := doJSON(r, "POST", "/api/v1/users/7/transactions", `{"date":"2024-01-15","amount":1,"description":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "connection refused", resp["message"])
}

func TestTransactionHandler_ListAndDelete(t *testing.T) {
	f := newFakeFinance()
	f.txns = []models.Transaction{{ID: 1}, {ID: 2}, {ID: 3}}
	r := newTestRouter(f)

	w, resp := doJSON(r, "GET", "/api/v1/users/7/transactions?page=2&page_size=2", "")
	require.Equal(t, 200, w.Code)
	page := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(3), page["total"])
	assert.Len(t, page["list"], 1)

	w, _ = doJSON(r, "GET", "/api/v1/users/7/transactions?page=9", "")
	require.Equal(t, 200, w.Code)

	w, _ = doJSON(r, "DELETE", "/api/v1/users/7/transactions/2", "")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, []uint{2}, f.deleted)

	f.err = database.ErrNotFound
	w, _ = doJSON(r, "DELETE", "/api/v1/users/7/transactions/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTransactionHandler_ListHugePage(t *testing.T) {
	f := newFakeFinance()
	f.txns = []models.Transaction{{ID: 1}, {ID: 2}, {ID: 3}}
	r := newTestRouter(f)

	for _, query := range []string{
		"page=9223372036854775807&page_size=2",
		"page=4611686018427387905&page_size=4",
		"page=3&page_size=2",
	} {
		w, resp := doJSON(r, "GET", "/api/v1/users/7/transactions?"+query, "")
		require.Equal(t, 200, w.Code, query)
		page := resp["data"].(map[string]interface{})
		assert.Empty(t, page["list"], query)
		assert.Equal(t, float64(3), page["total"], query)
	}
}

func TestTransactionHandler_UpdateCategory(t *testing.T) {
	f := newFakeFinance()
	r := newTestRouter(f)

	w, resp := doJSON(r, "PUT", "/api/v1/users/7/transactions/4/category", `{"category":"Shopping"}`)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "Shopping", f.category)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["learned_keywords"])
	assert.Equal(t, "Shopping", data["transaction"].(map[string]interface{})["category"])

	w, _ = doJSON(r, "PUT", "/api/v1/users/7/transactions/4/category", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	f.err = database.ErrNotFound
	w, _ = doJSON(r, "PUT", "/api/v1/users/7/transactions/99/category", `{"category":"Shopping"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryHandler_Stats(t *testing.T) {
	f := newFakeFinance()
	f.txns = []models.Transaction{
		{Amount: decimal.NewFromInt(-10), Category: "Shopping"},
		{Amount: decimal.NewFromInt(-5), Category: "Shopping"},
	}
	r := newTestRouter(f)

	w, resp := doJSON(r, "GET", "/api/v1/users/7/categories/stats", "")
	require.Equal(t, 200, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(75), data["accuracy"].(map[string]interface{})["accuracy"])
	stats := data["statistics"].(map[string]interface{})
	assert.Equal(t, float64(2), stats["counts"].(map[string]interface{})["Shopping"])

	f.err = errors.New("db down")
	w, _ = doJSON(r, "GET", "/api/v1/users/7/categories/stats", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGoalAndDebtHandlers_ListAndDelete(t *testing.T) {
	f := newFakeFinance()
	f.goals = []models.Goal{{ID: 1, Name: "Trip"}, {ID: 2, Name: "Car"}}
	r := newTestRouter(f)

	w, resp := doJSON(r, "GET", "/api/v1/users/7/goals", "")
	require.Equal(t, 200, w.Code)
	assert.Len(t, resp["data"], 2)

	// 没有负债时返回空数组而不是 null
	w, resp = doJSON(r, "GET", "/api/v1/users/7/debts", "")
	require.Equal(t, 200, w.Code)
	assert.Equal(t, []interface{}{}, resp["data"])

	w, _ = doJSON(r, "DELETE", "/api/v1/users/7/goals/2", "")
	assert.Equal(t, 200, w.Code)
	w, _ = doJSON(r, "DELETE", "/api/v1/users/7/debts/5", "")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, []uint{2, 5}, f.deleted)

	w, _ = doJSON(r, "DELETE", "/api/v1/users/7/goals/0", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	f.err = database.ErrNotFound
	w, _ = doJSON(r, "DELETE", "/api/v1/users/7/debts/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	f.err = errors.New("db down")
	w, _ = doJSON(r, "GET", "/api/v1/users/7/goals", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGoalAndDebtHandlers(t *testing.T) {
	f := newFakeFinance()
	f.names = []string{"Goal Achiever"}
	r := newTestRouter(f)

	w, _ := doJSON(r, "POST", "/api/v1/users/7/goals", `{"name":"Trip","target_amount":"1000","target_date":"2030-01-01"}`)
	assert.Equal(t, 200, w.Code)

	w, resp := doJSON(r, "PUT", "/api/v1/users/7/goals/3", `{"saved_amount":1000}`)
	require.Equal(t, 200, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(100), data["progress"])
	assert.Equal(t, true, data["goal"].(map[string]interface{})["is_completed"])

	w, resp = doJSON(r, "PUT", "/api/v1/users/7/debts/5", `{"current_balance":0}`)
	require.Equal(t, 200, w.Code)
	data = resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["paid_off"])

	w, _ = doJSON(r, "POST", "/api/v1/users/7/debts", `{"total_amount":"100"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	f.err = database.ErrNotFound
	w, _ = doJSON(r, "PUT", "/api/v1/users/7/goals/99", `{"saved_amount":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	f.err = service.ErrInvalidInput
	w, _ = doJSON(r, "PUT", "/api/v1/users/7/debts/5", `{"current_balance":900}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBadgeHandler(t *testing.T) {
	f := newFakeFinance()
	f.progress = map[string]int{"Century Club": 12}
	r := newTestRouter(f)

	w, resp := doJSON(r, "POST", "/api/v1/users/7/badges/check", "")
	require.Equal(t, 200, w.Code)
	assert.Equal(t, []interface{}{}, resp["data"].(map[string]interface{})["new_badges"])

	w, resp = doJSON(r, "GET", "/api/v1/users/7/badges/progress", "")
	require.Equal(t, 200, w.Code)
	assert.Equal(t, float64(12), resp["data"].(map[string]interface{})["Century Club"])

	w, resp = doJSON(r, "GET", "/api/v1/users/7/badges", "")
	require.Equal(t, 200, w.Code)
	assert.Len(t, resp["data"], 1)

	f.err = service.ErrAwardFailed
	w, _ = doJSON(r, "POST", "/api/v1/users/7/badges/check", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestInsightHandler(t *testing.T) {
	f := newFakeFinance()
	f.lines = []string{insights.EmptyHistoryMessage}
	f.score = 65
	r := newTestRouter(f)

	w, resp := doJSON(r, "GET", "/api/v1/users/7/insights", "")
	require.Equal(t, 200, w.Code)
	assert.Equal(t, []interface{}{insights.EmptyHistoryMessage}, resp["data"])

	w, resp = doJSON(r, "GET", "/api/v1/users/7/health-score", "")
	require.Equal(t, 200, w.Code)
	assert.Equal(t, float64(65), resp["data"].(map[string]interface{})["score"])

	w, resp = doJSON(r, "GET", "/api/v1/users/7/predict?category=Housing", "")
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "Housing", f.category)
	assert.Nil(t, resp["data"].(map[string]interface{})["prediction"])

	f.prediction, f.predictOK = 123.456, true
	w, resp = doJSON(r, "GET", "/api/v1/users/7/predict", "")
	require.Equal(t, 200, w.Code)
	assert.Equal(t, 123.46, resp["data"].(map[string]interface{})["prediction"])

	for _, path := range []string{"trends", "category-insights", "summary"} {
		w, _ = doJSON(r, "GET", "/api/v1/users/7/"+path, "")
		assert.Equal(t, 200, w.Code, path)
	}

	f.err = errors.New("db down")
	w, _ = doJSON(r, "GET", "/api/v1/users/7/health-score", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
