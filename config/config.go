package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// DefaultConfigYAML 内置默认配置
//
//go:embed default.yaml
var DefaultConfigYAML []byte

// Config 应用配置
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Log         LogConfig         `mapstructure:"log"`
	RateLimit   RateLimitConfig   `mapstructure:"ratelimit"`
	Categorizer CategorizerConfig `mapstructure:"categorizer"`
	Email       EmailConfig       `mapstructure:"email"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    string `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

// DatabaseConfig 数据库配置
// Driver 为 mysql 时使用 Host/Port 等连接参数，为 sqlite 时使用 Path
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
	Path     string `mapstructure:"path"`
	LogLevel string `mapstructure:"log_level"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console / json
}

// RateLimitConfig 重计算类接口限流配置
type RateLimitConfig struct {
	MaxRequests   int           `mapstructure:"max_requests"`
	WindowSeconds int           `mapstructure:"window_seconds"`
	Window        time.Duration `mapstructure:"-"`
}

// CategoryRuleConfig 自定义分类规则（追加到内置规则表）
type CategoryRuleConfig struct {
	Category string   `mapstructure:"category"`
	Keywords []string `mapstructure:"keywords"`
}

// CategorizerConfig 自动分类配置
type CategorizerConfig struct {
	CustomRules []CategoryRuleConfig `mapstructure:"custom_rules"`
}

// EmailConfig 邮件配置
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

var (
	// GlobalConfig 全局配置实例
	GlobalConfig *Config
)

// LoadConfig 加载配置
// 优先级: 环境变量 > 外部配置文件 > 嵌入的默认配置
// configPath: 可选的外部配置文件路径
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. 首先加载嵌入的默认配置
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("读取内置配置失败: %w", err)
	}

	// 2. 尝试加载外部配置文件（可选，用于覆盖默认配置）
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Warn().Err(err).Str("path", configPath).Msg("无法读取指定配置文件")
		} else {
			log.Info().Str("path", configPath).Msg("已合并外部配置文件")
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/fintrack")
		externalViper.AddConfigPath("$HOME/.fintrack")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Warn().Err(err).Msg("合并外部配置失败")
			} else {
				log.Info().Str("path", externalViper.ConfigFileUsed()).Msg("已合并外部配置文件")
			}
		}
	}

	// 3. 支持环境变量覆盖，如 FINTRACK_DATABASE_HOST
	v.SetEnvPrefix("FINTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	cfg.applyDefaults()

	GlobalConfig = &cfg

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = ":8080"
	}
	if !strings.HasPrefix(c.Server.Port, ":") {
		c.Server.Port = ":" + c.Server.Port
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "mysql"
	}
	if c.RateLimit.MaxRequests <= 0 {
		c.RateLimit.MaxRequests = 30
	}
	if c.RateLimit.WindowSeconds <= 0 {
		c.RateLimit.WindowSeconds = 60
	}
	c.RateLimit.Window = time.Duration(c.RateLimit.WindowSeconds) * time.Second
}

// MustLoadConfig 加载配置，失败则 panic
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("加载配置失败: %v", err))
	}
	return cfg
}

// GetConfig 获取全局配置
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("配置未初始化，请先调用 LoadConfig")
	}
	return GlobalConfig
}

// SafeErrorMessage 生产环境下不向客户端暴露内部错误详情
// release 模式返回 fallback；debug 模式或未加载配置时返回 err.Error()
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}

// PrintConfig 打印当前配置（隐藏敏感信息）
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	db := GlobalConfig.Database
	target := fmt.Sprintf("%s@%s:%s/%s", db.Username, db.Host, db.Port, db.DBName)
	if db.Driver == "sqlite" {
		target = db.Path
	}
	log.Info().
		Str("port", GlobalConfig.Server.Port).
		Str("mode", GlobalConfig.Server.Mode).
		Str("db_driver", db.Driver).
		Str("db", target).
		Int("custom_rules", len(GlobalConfig.Categorizer.CustomRules)).
		Bool("email", GlobalConfig.Email.Enabled).
		Msg("当前配置")
}
