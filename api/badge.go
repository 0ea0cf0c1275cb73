package api

import (
	"github.com/gin-gonic/gin"
)

// BadgeHandler 徽章
type BadgeHandler struct {
	finance Finance
}

func NewBadgeHandler(finance Finance) *BadgeHandler {
	return &BadgeHandler{finance: finance}
}

// List 已获得的徽章
// @Summary 已获得的徽章
// @Tags 徽章
// @Produce json
// @Param user_id path int true "用户ID"
// @Success 200 {object} Response{data=[]models.UserBadge} "获取成功"
// @Router /api/v1/users/{user_id}/badges [get]
func (h *BadgeHandler) List(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	list, err := h.finance.UserBadges(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}
	Success(c, list)
}

// Check 检查并授予徽章
// @Summary 检查徽章
// @Description 评估所有未获得的徽章，新获得的整批写入；写入失败时不授予任何徽章
// @Tags 徽章
// @Produce json
// @Param user_id path int true "用户ID"
// @Success 200 {object} Response "检查完成"
// @Failure 500 {object} Response "写入失败"
// @Router /api/v1/users/{user_id}/badges/check [post]
func (h *BadgeHandler) Check(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	names, err := h.finance.CheckAndAwardBadges(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "徽章检查失败")
		return
	}
	Success(c, gin.H{"new_badges": newBadges(names)})
}

// Progress 未获得徽章的进度
// @Summary 徽章进度
// @Description 返回每个未获得徽章的进度（0-100），不会授予徽章
// @Tags 徽章
// @Produce json
// @Param user_id path int true "用户ID"
// @Success 200 {object} Response{data=map[string]int} "获取成功"
// @Router /api/v1/users/{user_id}/badges/progress [get]
func (h *BadgeHandler) Progress(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	progress, err := h.finance.BadgeProgress(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}
	Success(c, progress)
}
