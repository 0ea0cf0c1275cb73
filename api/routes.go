package api

import (
	"github.com/gin-gonic/gin"
)

// Register 注册 /api/v1 下的业务路由
// heavy 作用于需要加载完整历史的计算类接口（洞察、评分、预测、徽章检查）
func Register(v1 *gin.RouterGroup, finance Finance, heavy ...gin.HandlerFunc) {
	categoryHandler := NewCategoryHandler(finance)
	v1.GET("/categories", categoryHandler.List)
	v1.POST("/categorize", categoryHandler.Categorize)
	v1.POST("/categorize/suggest", categoryHandler.Suggest)

	users := v1.Group("/users/:user_id")
	computed := users.Group("", heavy...)

	transactionHandler := NewTransactionHandler(finance)
	users.POST("/transactions", transactionHandler.Create)
	users.GET("/transactions", transactionHandler.List)
	users.DELETE("/transactions/:id", transactionHandler.Delete)
	users.PUT("/transactions/:id/category", transactionHandler.UpdateCategory)
	computed.GET("/categories/stats", categoryHandler.Stats)

	goalHandler := NewGoalHandler(finance)
	users.POST("/goals", goalHandler.Create)
	users.GET("/goals", goalHandler.List)
	users.PUT("/goals/:id", goalHandler.Update)
	users.DELETE("/goals/:id", goalHandler.Delete)

	debtHandler := NewDebtHandler(finance)
	users.POST("/debts", debtHandler.Create)
	users.GET("/debts", debtHandler.List)
	users.PUT("/debts/:id", debtHandler.Update)
	users.DELETE("/debts/:id", debtHandler.Delete)

	badgeHandler := NewBadgeHandler(finance)
	users.GET("/badges", badgeHandler.List)
	computed.POST("/badges/check", badgeHandler.Check)
	computed.GET("/badges/progress", badgeHandler.Progress)

	insightHandler := NewInsightHandler(finance)
	computed.GET("/insights", insightHandler.Insights)
	computed.GET("/health-score", insightHandler.HealthScore)
	computed.GET("/predict", insightHandler.Predict)
	computed.GET("/trends", insightHandler.Trends)
	computed.GET("/category-insights", insightHandler.CategoryInsights)
	computed.GET("/summary", insightHandler.Summary)
}
