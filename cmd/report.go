package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newBadgesCmd() *cobra.Command {
	var userID uint
	badgesCmd := &cobra.Command{
		Use:   "badges",
		Short: "检查并授予徽章，列出未获得徽章的进度",
		RunE: func(cmd *cobra.Command, _ []string) error {
			finance, err := newFinance(cfg)
			if err != nil {
				return err
			}
			names, err := finance.CheckAndAwardBadges(cmd.Context(), userID)
			if err != nil {
				return err
			}
			progress, err := finance.BadgeProgress(cmd.Context(), userID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range names {
				fmt.Fprintf(out, "🏅 获得徽章: %s\n", name)
			}
			pending := make([]string, 0, len(progress))
			for name := range progress {
				pending = append(pending, name)
			}
			sort.Strings(pending)
			for _, name := range pending {
				fmt.Fprintf(out, "%-20s %3d%%\n", name, progress[name])
			}
			return nil
		},
	}
	badgesCmd.Flags().UintVarP(&userID, "user", "u", 1, "用户ID")
	return badgesCmd
}

func newInsightsCmd() *cobra.Command {
	var (
		userID   uint
		category string
	)
	insightsCmd := &cobra.Command{
		Use:   "insights",
		Short: "理财洞察、健康评分与下月支出预测",
		RunE: func(cmd *cobra.Command, _ []string) error {
			finance, err := newFinance(cfg)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			lines, err := finance.GenerateInsights(ctx, userID)
			if err != nil {
				return err
			}
			score, err := finance.FinancialHealthScore(ctx, userID)
			if err != nil {
				return err
			}
			prediction, ok, err := finance.PredictSpending(ctx, userID, category)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, line := range lines {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintf(out, "\n财务健康评分: %d/100\n", score)
			label := "全部"
			if category != "" {
				label = category
			}
			if ok {
				fmt.Fprintf(out, "下月支出预测（%s）: $%.2f\n", label, prediction)
			} else {
				fmt.Fprintf(out, "下月支出预测（%s）: 数据不足\n", label)
			}
			return nil
		},
	}
	insightsCmd.Flags().UintVarP(&userID, "user", "u", 1, "用户ID")
	insightsCmd.Flags().StringVar(&category, "category", "", "只预测指定类别")
	return insightsCmd
}
