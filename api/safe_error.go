package api

import (
	"errors"

	"fintrack/config"
	"fintrack/database"
	"fintrack/logger"
	"fintrack/service"

	"github.com/gin-gonic/gin"
)

// SafeErrorMessage 生产环境下不向客户端暴露内部错误详情，避免信息泄露
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}

// respondError 按错误类型映射状态码：输入错误 400，记录不存在 404，其余 500
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		BadRequest(c, err.Error())
	case errors.Is(err, database.ErrNotFound):
		NotFound(c, "记录不存在")
	default:
		log := logger.FromContext(c.Request.Context())
		log.Error().Err(err).Str("path", c.FullPath()).Msg(fallback)
		InternalError(c, SafeErrorMessage(err, fallback))
	}
}
