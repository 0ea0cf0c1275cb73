package router

import (
	"fintrack/api"
	"fintrack/config"
	"fintrack/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, finance api.Finance) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log.Logger))

	// CORS 中间件
	r.Use(CORSMiddleware())

	// API v1 路由组，计算类接口按 IP 限流
	v1 := r.Group("/api/v1")
	api.Register(v1, finance, middleware.RateLimit(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-Request-ID, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", middleware.RequestIDHeader)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
