package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"fintrack/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ContextKey 上下文中保存 logger 使用的 key 类型
type ContextKey string

// LoggerKey 上下文中的 logger key
const LoggerKey ContextKey = "logger"

// New 创建默认的控制台 logger
func New() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

// NewWithWriter 创建写入指定 writer 的 JSON logger
func NewWithWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// Setup 按配置初始化全局 logger 并返回
func Setup(cfg config.LogConfig) zerolog.Logger {
	var l zerolog.Logger
	if strings.EqualFold(cfg.Format, "json") {
		l = NewWithWriter(os.Stdout)
	} else {
		l = New()
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	l = l.Level(level)

	log.Logger = l
	zerolog.DefaultContextLogger = &log.Logger
	return l
}

// WithContext 将 logger 放入 context
func WithContext(ctx context.Context, l zerolog.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, l)
}

// FromContext 从 context 取出 logger，没有则返回全局 logger
func FromContext(ctx context.Context) zerolog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(LoggerKey).(zerolog.Logger); ok {
			return l
		}
	}
	return log.Logger
}

// WithFields 为 logger 附加结构化字段
func WithFields(l zerolog.Logger, fields map[string]interface{}) zerolog.Logger {
	c := l.With()
	for k, v := range fields {
		c = c.Interface(k, v)
	}
	return c.Logger()
}
