package api

import (
	"fintrack/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// DebtHandler 负债
type DebtHandler struct {
	finance Finance
}

func NewDebtHandler(finance Finance) *DebtHandler {
	return &DebtHandler{finance: finance}
}

type CreateDebtRequest struct {
	Name           string          `json:"name" binding:"required,max=100" example:"Visa"`
	TotalAmount    decimal.Decimal `json:"total_amount" swaggertype:"number" example:"5000"`
	CurrentBalance decimal.Decimal `json:"current_balance" swaggertype:"number" example:"3200"`
	InterestRate   decimal.Decimal `json:"interest_rate" swaggertype:"number" example:"19.9"`
	MinimumPayment decimal.Decimal `json:"minimum_payment" swaggertype:"number" example:"120"`
}

type UpdateDebtRequest struct {
	CurrentBalance decimal.Decimal `json:"current_balance" swaggertype:"number" example:"0"`
}

// Create 新建负债
// @Summary 新建负债
// @Description 金额必须为正，当前余额不能超过总额
// @Tags 负债
// @Accept json
// @Produce json
// @Param user_id path int true "用户ID"
// @Param request body CreateDebtRequest true "负债信息"
// @Success 200 {object} Response "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/users/{user_id}/debts [post]
func (h *DebtHandler) Create(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	var req CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	debt := &models.Debt{
		UserID:         userID,
		Name:           req.Name,
		TotalAmount:    req.TotalAmount,
		CurrentBalance: req.CurrentBalance,
		InterestRate:   req.InterestRate,
		MinimumPayment: req.MinimumPayment,
	}
	names, err := h.finance.CreateDebt(c.Request.Context(), debt)
	if err != nil {
		respondError(c, err, "创建负债失败")
		return
	}
	SuccessWithMessage(c, "创建成功", gin.H{"debt": debt, "new_badges": newBadges(names)})
}

// Update 更新余额
// @Summary 更新负债余额
// @Tags 负债
// @Accept json
// @Produce json
// @Param user_id path int true "用户ID"
// @Param id path int true "负债ID"
// @Param request body UpdateDebtRequest true "当前余额"
// @Success 200 {object} Response "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/users/{user_id}/debts/{id} [put]
func (h *DebtHandler) Update(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "无效的ID")
	if !ok {
		return
	}
	var req UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	debt, names, err := h.finance.UpdateDebtBalance(c.Request.Context(), userID, id, req.CurrentBalance)
	if err != nil {
		respondError(c, err, "更新负债失败")
		return
	}
	SuccessWithMessage(c, "更新成功", gin.H{
		"debt":       debt,
		"progress":   debt.ProgressPercentage(),
		"paid_off":   debt.IsPaidOff(),
		"new_badges": newBadges(names),
	})
}

// List 负债列表
// @Summary 负债列表
// @Tags 负债
// @Produce json
// @Param user_id path int true "用户ID"
// @Success 200 {object} Response{data=[]models.Debt} "获取成功"
// @Router /api/v1/users/{user_id}/debts [get]
func (h *DebtHandler) List(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	list, err := h.finance.ListDebts(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}
	if list == nil {
		list = []models.Debt{}
	}
	Success(c, list)
}

// Delete 删除负债
// @Summary 删除负债
// @Tags 负债
// @Produce json
// @Param user_id path int true "用户ID"
// @Param id path int true "负债ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/users/{user_id}/debts/{id} [delete]
func (h *DebtHandler) Delete(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "无效的ID")
	if !ok {
		return
	}
	if err := h.finance.DeleteDebt(c.Request.Context(), userID, id); err != nil {
		respondError(c, err, "删除失败")
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
