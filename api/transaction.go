package api

import (
	"fintrack/ingest"
	"fintrack/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TransactionHandler 交易记录
type TransactionHandler struct {
	finance Finance
}

func NewTransactionHandler(finance Finance) *TransactionHandler {
	return &TransactionHandler{finance: finance}
}

type CreateTransactionRequest struct {
	Date        string          `json:"date" binding:"required" example:"2024-01-15"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number" example:"-4.50"`
	Description string          `json:"description" binding:"required,max=200" example:"Starbucks Coffee"`
	Category    string          `json:"category" binding:"omitempty,max=50" example:"Food & Dining"`
}

type UpdateCategoryRequest struct {
	Category string `json:"category" binding:"required,max=50" example:"Pets"`
}

type TransactionListRequest struct {
	Page     int `form:"page" example:"1"`
	PageSize int `form:"page_size" example:"50"`
}

// Create 新增交易
// @Summary 新增交易
// @Description 新增一笔交易，未指定类别时自动分类，之后检查徽章
// @Tags 交易
// @Accept json
// @Produce json
// @Param user_id path int true "用户ID"
// @Param request body CreateTransactionRequest true "交易信息"
// @Success 200 {object} Response "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/users/{user_id}/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	date, err := ingest.ParseDate(req.Date)
	if err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}

	txn := &models.Transaction{
		UserID:      userID,
		Date:        date,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
	}
	names, err := h.finance.AddTransaction(c.Request.Context(), txn)
	if err != nil {
		respondError(c, err, "创建交易失败")
		return
	}
	SuccessWithMessage(c, "创建成功", gin.H{"transaction": txn, "new_badges": newBadges(names)})
}

// List 交易列表
// @Summary 交易列表
// @Description 按日期升序分页返回用户交易
// @Tags 交易
// @Produce json
// @Param user_id path int true "用户ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(50)
// @Success 200 {object} Response{data=PageResponse{list=[]models.Transaction}} "获取成功"
// @Router /api/v1/users/{user_id}/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	var req TransactionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 50
	}
	if req.PageSize > 500 {
		req.PageSize = 500
	}

	txns, err := h.finance.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}
	// 先比较页数再相乘，超大页码不会溢出
	start := len(txns)
	if pages := len(txns)/req.PageSize + 1; req.Page <= pages {
		start = min((req.Page-1)*req.PageSize, len(txns))
	}
	end := start + req.PageSize
	if end > len(txns) {
		end = len(txns)
	}
	Success(c, PageResponse{Total: int64(len(txns)), Page: req.Page, PageSize: req.PageSize, List: txns[start:end]})
}

// Delete 删除交易
// @Summary 删除交易
// @Tags 交易
// @Produce json
// @Param user_id path int true "用户ID"
// @Param id path int true "交易ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/users/{user_id}/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "无效的ID")
	if !ok {
		return
	}
	if err := h.finance.DeleteTransaction(c.Request.Context(), userID, id); err != nil {
		respondError(c, err, "删除失败")
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}

// UpdateCategory 修正交易类别
// @Summary 修正交易类别
// @Description 修改交易类别，分类器会从修正中学习新的关键词
// @Tags 交易
// @Accept json
// @Produce json
// @Param user_id path int true "用户ID"
// @Param id path int true "交易ID"
// @Param request body UpdateCategoryRequest true "正确的类别"
// @Success 200 {object} Response "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/users/{user_id}/transactions/{id}/category [put]
func (h *TransactionHandler) UpdateCategory(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "无效的ID")
	if !ok {
		return
	}
	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	txn, learned, err := h.finance.RecategorizeTransaction(c.Request.Context(), userID, id, req.Category)
	if err != nil {
		respondError(c, err, "更新类别失败")
		return
	}
	SuccessWithMessage(c, "更新成功", gin.H{"transaction": txn, "learned_keywords": learned})
}
