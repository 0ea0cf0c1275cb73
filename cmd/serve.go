package cmd

import (
	"strings"

	"fintrack/config"
	"fintrack/router"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string
	serve := &cobra.Command{
		Use:   "serve",
		Short: "启动 HTTP 服务",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// 命令行参数覆盖端口配置
			if port != "" {
				if !strings.HasPrefix(port, ":") {
					port = ":" + port
				}
				cfg.Server.Port = port
			}
			config.PrintConfig()

			finance, err := newFinance(cfg)
			if err != nil {
				return err
			}
			r := router.SetupRouter(cfg, finance)

			log.Info().
				Str("api", "http://localhost"+cfg.Server.Port+"/api/v1/").
				Str("health", "http://localhost"+cfg.Server.Port+"/health").
				Msg("💰 记账服务已启动")
			return r.Run(cfg.Server.Port)
		},
	}
	serve.Flags().StringVarP(&port, "port", "p", "", "监听端口，如: 8080 或 :8080")
	return serve
}
