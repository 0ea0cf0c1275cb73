package cmd

import (
	"fmt"

	"fintrack/badges"
	"fintrack/database"

	"github.com/spf13/cobra"
)

func newSeedBadgesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-badges",
		Short: "建表并写入徽章目录（已存在的按名称跳过）",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := database.Open(cfg.Database)
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}
			added, err := database.NewStore(db).SeedBadges(cmd.Context(), badges.Catalog())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "新增徽章 %d 个\n", added)
			return nil
		},
	}
}
