package api

import (
	"github.com/gin-gonic/gin"
)

// CategoryHandler 交易分类
type CategoryHandler struct {
	finance Finance
}

func NewCategoryHandler(finance Finance) *CategoryHandler {
	return &CategoryHandler{finance: finance}
}

type CategorizeRequest struct {
	Description string `json:"description" binding:"required,max=500" example:"STARBUCKS STORE #1234"`
}

// List 所有类别
// @Summary 获取类别列表
// @Description 返回规则表中的全部类别，最后一个为 Other
// @Tags 分类
// @Produce json
// @Success 200 {object} Response{data=[]string} "获取成功"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	Success(c, h.finance.Categories())
}

// Categorize 按描述自动分类
// @Summary 自动分类
// @Description 根据交易描述返回最匹配的类别
// @Tags 分类
// @Accept json
// @Produce json
// @Param request body CategorizeRequest true "交易描述"
// @Success 200 {object} Response "分类成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/categorize [post]
func (h *CategoryHandler) Categorize(c *gin.Context) {
	var req CategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	Success(c, gin.H{
		"description": req.Description,
		"category":    h.finance.Categorize(req.Description),
	})
}

// Suggest 分类建议
// @Summary 分类建议
// @Description 按匹配得分返回最多 5 个候选类别
// @Tags 分类
// @Accept json
// @Produce json
// @Param request body CategorizeRequest true "交易描述"
// @Success 200 {object} Response "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/categorize/suggest [post]
func (h *CategoryHandler) Suggest(c *gin.Context) {
	var req CategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	Success(c, gin.H{
		"description": req.Description,
		"suggestions": h.finance.Suggest(req.Description),
	})
}

// Stats 分类准确率与各类别用量
// @Summary 分类统计
// @Description 用当前规则重新分类用户交易，与已保存的类别比较，并统计各类别笔数与金额
// @Tags 分类
// @Produce json
// @Param user_id path int true "用户ID"
// @Success 200 {object} Response{data=service.CategorizationReport} "获取成功"
// @Router /api/v1/users/{user_id}/categories/stats [get]
func (h *CategoryHandler) Stats(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	report, err := h.finance.CategorizationStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}
	Success(c, report)
}
