package api

import (
	"context"
	"strconv"

	"fintrack/insights"
	"fintrack/models"
	"fintrack/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Finance 处理器依赖的业务接口，由 service.Finance 实现
type Finance interface {
	Categorize(description string) string
	Suggest(description string) []string
	Categories() []string

	AddTransaction(ctx context.Context, txn *models.Transaction) ([]string, error)
	ListTransactions(ctx context.Context, userID uint) ([]models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id uint) error
	RecategorizeTransaction(ctx context.Context, userID, id uint, category string) (*models.Transaction, int, error)
	CategorizationStats(ctx context.Context, userID uint) (*service.CategorizationReport, error)

	CreateGoal(ctx context.Context, goal *models.Goal) ([]string, error)
	UpdateGoalSaved(ctx context.Context, userID, id uint, saved decimal.Decimal) (*models.Goal, []string, error)
	ListGoals(ctx context.Context, userID uint) ([]models.Goal, error)
	DeleteGoal(ctx context.Context, userID, id uint) error
	CreateDebt(ctx context.Context, debt *models.Debt) ([]string, error)
	UpdateDebtBalance(ctx context.Context, userID, id uint, balance decimal.Decimal) (*models.Debt, []string, error)
	ListDebts(ctx context.Context, userID uint) ([]models.Debt, error)
	DeleteDebt(ctx context.Context, userID, id uint) error

	UserBadges(ctx context.Context, userID uint) ([]models.UserBadge, error)
	CheckAndAwardBadges(ctx context.Context, userID uint) ([]string, error)
	BadgeProgress(ctx context.Context, userID uint) (map[string]int, error)

	GenerateInsights(ctx context.Context, userID uint) ([]string, error)
	FinancialHealthScore(ctx context.Context, userID uint) (int, error)
	PredictSpending(ctx context.Context, userID uint, category string) (float64, bool, error)
	SpendingTrends(ctx context.Context, userID uint) ([]insights.MonthTrend, error)
	CategoryInsights(ctx context.Context, userID uint) (map[string]insights.CategoryInsight, error)
	Summary(ctx context.Context, userID uint) (insights.Summary, error)
}

var _ Finance = (*service.Finance)(nil)

// pathUserID 解析路径中的 user_id
func pathUserID(c *gin.Context) (uint, bool) {
	return pathID(c, "user_id", "无效的用户ID")
}

func pathID(c *gin.Context, name, message string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		BadRequest(c, message)
		return 0, false
	}
	return uint(id), true
}

// newBadges 写操作响应中统一返回新获得的徽章，没有时为空数组
func newBadges(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}
