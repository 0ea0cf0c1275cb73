package database

import (
	"context"
	"fmt"
	"time"

	"fintrack/badges"
	"fintrack/config"
	"fintrack/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Open 根据配置打开数据库连接，不做迁移
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.Path)
	case "mysql", "":
		dialector = mysql.Open(mysqlDSN(cfg))
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Driver == "sqlite" {
		// sqlite 单文件只允许一个写连接
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}
	return db, nil
}

// mysqlDSN 构建 MySQL DSN 连接字符串
// 连接时区固定为 UTC，与 models.DayOf 生成的 UTC 零点日期一致
func mysqlDSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=UTC",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
	)
}

// Init 初始化数据库连接、迁移表结构并写入内置徽章
func Init(cfg *config.Config) error {
	db, err := Open(cfg.Database)
	if err != nil {
		return err
	}

	if err := Migrate(db); err != nil {
		return err
	}

	added, err := NewStore(db).SeedBadges(context.Background(), badges.Catalog())
	if err != nil {
		return fmt.Errorf("初始化徽章失败: %w", err)
	}

	DB = db
	log.Info().Str("driver", cfg.Database.Driver).Int("badges_added", added).Msg("数据库初始化成功")
	return nil
}

// Migrate 自动迁移数据库表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.Goal{},
		&models.Debt{},
		&models.Badge{},
		&models.UserBadge{},
	)
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
