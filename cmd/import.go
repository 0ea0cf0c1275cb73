package cmd

import (
	"fmt"
	"io"
	"os"

	"fintrack/ingest"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	var userID uint
	imp := &cobra.Command{
		Use:   "import <file>",
		Short: "导入 CSV 或 OFX/QFX 交易文件",
		Long: `导入交易文件并自动分类，导入后检查徽章。

CSV 需要 date、amount、description 三列（不区分大小写），出错的行会被跳过并列出。
OFX/QFX 支持银行和信用卡对账单。`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			format, err := ingest.DetectFormat(path)
			if err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("打开文件失败: %w", err)
			}
			defer f.Close()
			info, err := f.Stat()
			if err != nil {
				return err
			}

			finance, err := newFinance(cfg)
			if err != nil {
				return err
			}

			bar := progressbar.NewOptions64(info.Size(),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetDescription("读取 "+info.Name()),
				progressbar.OptionShowBytes(true),
				progressbar.OptionClearOnFinish(),
			)
			result, err := finance.ImportTransactions(cmd.Context(), userID, format, io.TeeReader(f, bar))
			_ = bar.Finish()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✅ 导入 %d 笔交易\n", result.Imported)
			if len(result.Errors) > 0 {
				fmt.Fprintf(out, "⚠️  %d 行出错:\n", len(result.Errors))
				for _, e := range result.Errors {
					fmt.Fprintf(out, "  %s\n", e)
				}
			}
			for _, name := range result.NewBadges {
				fmt.Fprintf(out, "🏅 获得徽章: %s\n", name)
			}
			return nil
		},
	}
	imp.Flags().UintVarP(&userID, "user", "u", 1, "用户ID")
	return imp
}
