package api

import (
	"math"

	"github.com/gin-gonic/gin"
)

// InsightHandler 洞察、评分与预测
type InsightHandler struct {
	finance Finance
}

func NewInsightHandler(finance Finance) *InsightHandler {
	return &InsightHandler{finance: finance}
}

// Insights 理财洞察
// @Summary 理财洞察
// @Description 最多 8 条，没有可用洞察时返回提示语
// @Tags 洞察
// @Produce json
// @Param user_id path int true "用户ID"
// @Success 200 {object} Response{data=[]string} "获取成功"
// @Router /api/v1/users/{user_id}/insights [get]
func (h *InsightHandler) Insights(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	lines, err := h.finance.GenerateInsights(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "生成洞察失败")
		return
	}
	Success(c, lines)
}

// HealthScore 财务健康评分
// @Summary 财务健康评分
// @Tags 洞察
// @Produce json
// @Param user_id path int true "用户ID"
// @Success 200 {object} Response "获取成功"
// @Router /api/v1/users/{user_id}/health-score [get]
func (h *InsightHandler) HealthScore(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	score, err := h.finance.FinancialHealthScore(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "计算评分失败")
		return
	}
	Success(c, gin.H{"score": score})
}

// Predict 预测下月支出
// @Summary 支出预测
// @Description 按月支出做线性回归预测下月支出；数据不足时 prediction 为 null
// @Tags 洞察
// @Produce json
// @Param user_id path int true "用户ID"
// @Param category query string false "类别，为空表示全部"
// @Success 200 {object} Response "获取成功"
// @Router /api/v1/users/{user_id}/predict [get]
func (h *InsightHandler) Predict(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	category := c.Query("category")
	amount, ok, err := h.finance.PredictSpending(c.Request.Context(), userID, category)
	if err != nil {
		respondError(c, err, "预测失败")
		return
	}
	var prediction *float64
	if ok {
		rounded := math.Round(amount*100) / 100
		prediction = &rounded
	}
	Success(c, gin.H{"category": category, "prediction": prediction})
}

// Trends 每月收支
// @Summary 每月收支趋势
// @Tags 洞察
// @Produce json
// @Param user_id path int true "用户ID"
// @Success 200 {object} Response{data=[]insights.MonthTrend} "获取成功"
// @Router /api/v1/users/{user_id}/trends [get]
func (h *InsightHandler) Trends(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	trends, err := h.finance.SpendingTrends(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}
	Success(c, trends)
}

// CategoryInsights 各类别支出统计
// @Summary 类别支出统计
// @Tags 洞察
// @Produce json
// @Param user_id path int true "用户ID"
// @Success 200 {object} Response "获取成功"
// @Router /api/v1/users/{user_id}/category-insights [get]
func (h *InsightHandler) CategoryInsights(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	byCategory, err := h.finance.CategoryInsights(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}
	Success(c, byCategory)
}

// Summary 收支汇总
// @Summary 收支汇总
// @Description 总收入、总支出、净额与交易数
// @Tags 洞察
// @Produce json
// @Param user_id path int true "用户ID"
// @Success 200 {object} Response{data=insights.Summary} "获取成功"
// @Router /api/v1/users/{user_id}/summary [get]
func (h *InsightHandler) Summary(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	summary, err := h.finance.Summary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}
	Success(c, summary)
}
