package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCategorizeCmd() *cobra.Command {
	var suggest bool
	categorize := &cobra.Command{
		Use:   "categorize <description>",
		Short: "按描述自动分类",
		Example: `  fintrack categorize "STARBUCKS STORE #1234"
  fintrack categorize --suggest "uber eats order"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newCategorizer(cfg)
			description := strings.Join(args, " ")
			out := cmd.OutOrStdout()
			if !suggest {
				fmt.Fprintln(out, c.Categorize(description))
				return nil
			}
			for i, category := range c.Suggest(description) {
				fmt.Fprintf(out, "%d. %s\n", i+1, category)
			}
			return nil
		},
	}
	categorize.Flags().BoolVarP(&suggest, "suggest", "s", false, "列出最多 5 个候选类别")
	return categorize
}
