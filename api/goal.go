package api

import (
	"fintrack/ingest"
	"fintrack/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GoalHandler 储蓄目标
type GoalHandler struct {
	finance Finance
}

func NewGoalHandler(finance Finance) *GoalHandler {
	return &GoalHandler{finance: finance}
}

type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required,max=100" example:"Emergency fund"`
	TargetAmount decimal.Decimal `json:"target_amount" swaggertype:"number" example:"5000"`
	SavedAmount  decimal.Decimal `json:"saved_amount" swaggertype:"number" example:"0"`
	TargetDate   string          `json:"target_date" binding:"required" example:"2025-12-31"`
}

type UpdateGoalRequest struct {
	SavedAmount decimal.Decimal `json:"saved_amount" swaggertype:"number" example:"1200"`
}

// Create 新建目标
// @Summary 新建储蓄目标
// @Description 目标金额必须为正，截止日期必须晚于今天
// @Tags 目标
// @Accept json
// @Produce json
// @Param user_id path int true "用户ID"
// @Param request body CreateGoalRequest true "目标信息"
// @Success 200 {object} Response "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/users/{user_id}/goals [post]
func (h *GoalHandler) Create(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	date, err := ingest.ParseDate(req.TargetDate)
	if err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}

	goal := &models.Goal{
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		SavedAmount:  req.SavedAmount,
		TargetDate:   date,
	}
	names, err := h.finance.CreateGoal(c.Request.Context(), goal)
	if err != nil {
		respondError(c, err, "创建目标失败")
		return
	}
	SuccessWithMessage(c, "创建成功", gin.H{"goal": goal, "new_badges": newBadges(names)})
}

// Update 更新已存金额
// @Summary 更新目标进度
// @Description 更新已存金额，达到目标金额时自动标记完成
// @Tags 目标
// @Accept json
// @Produce json
// @Param user_id path int true "用户ID"
// @Param id path int true "目标ID"
// @Param request body UpdateGoalRequest true "已存金额"
// @Success 200 {object} Response "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/users/{user_id}/goals/{id} [put]
func (h *GoalHandler) Update(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "无效的ID")
	if !ok {
		return
	}
	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	goal, names, err := h.finance.UpdateGoalSaved(c.Request.Context(), userID, id, req.SavedAmount)
	if err != nil {
		respondError(c, err, "更新目标失败")
		return
	}
	SuccessWithMessage(c, "更新成功", gin.H{
		"goal":       goal,
		"progress":   goal.ProgressPercentage(),
		"new_badges": newBadges(names),
	})
}

// List 目标列表
// @Summary 目标列表
// @Tags 目标
// @Produce json
// @Param user_id path int true "用户ID"
// @Success 200 {object} Response{data=[]models.Goal} "获取成功"
// @Router /api/v1/users/{user_id}/goals [get]
func (h *GoalHandler) List(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	list, err := h.finance.ListGoals(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}
	if list == nil {
		list = []models.Goal{}
	}
	Success(c, list)
}

// Delete 删除目标
// @Summary 删除目标
// @Tags 目标
// @Produce json
// @Param user_id path int true "用户ID"
// @Param id path int true "目标ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/users/{user_id}/goals/{id} [delete]
func (h *GoalHandler) Delete(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "无效的ID")
	if !ok {
		return
	}
	if err := h.finance.DeleteGoal(c.Request.Context(), userID, id); err != nil {
		respondError(c, err, "删除失败")
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
