// Package cmd 命令行入口：HTTP 服务以及分类、导入、徽章、洞察等本地命令
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fintrack/categorizer"
	"fintrack/config"
	"fintrack/database"
	"fintrack/logger"
	"fintrack/service"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Version 构建时通过 -ldflags 注入
var Version = "dev"

var (
	cfgFile string
	cfg     *config.Config
)

// NewRootCmd 创建根命令
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fintrack",
		Short:         "💰 个人记账：自动分类、徽章、理财洞察",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			loaded, err := config.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			cfg = loaded
			logger.Setup(cfg.Log)
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "外部配置文件路径（可选）")

	root.AddCommand(
		newServeCmd(),
		newSeedBadgesCmd(),
		newCategorizeCmd(),
		newImportCmd(),
		newBadgesCmd(),
		newInsightsCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute 执行根命令，收到中断信号时取消 context
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newCategorizer 内置规则表加上配置中的自定义规则
func newCategorizer(c *config.Config) *categorizer.Categorizer {
	rules := categorizer.DefaultRuleTable()
	for _, r := range c.Categorizer.CustomRules {
		rules.Add(r.Category, r.Keywords...)
	}
	return categorizer.New(rules)
}

// newFinance 初始化数据库并组装业务入口
func newFinance(c *config.Config) (*service.Finance, error) {
	if err := database.Init(c); err != nil {
		return nil, fmt.Errorf("数据库初始化失败: %w", err)
	}
	opts := []service.Option{service.WithCategorizer(newCategorizer(c))}
	if c.Email.Enabled {
		opts = append(opts, service.WithNotifier(service.NewEmailService(&c.Email)))
		log.Info().Str("host", c.Email.Host).Msg("已启用徽章邮件通知")
	}
	return service.NewFinance(database.NewStore(database.GetDB()), opts...), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "显示版本信息",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fintrack %s\n", Version)
		},
	}
}
