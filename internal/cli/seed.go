package cli

import (
	"github.com/spf13/cobra"

	"price-history-viewer/internal/app"
)

var (
	seedItems int
	seedDays  int
	seedSeed  int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "生成一套演示数据集到配置的数据路径",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().Seed(app.SeedOptions{
			Items: seedItems,
			Days:  seedDays,
			Seed:  seedSeed,
		})
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedItems, "items", 5, "生成的条目数量")
	seedCmd.Flags().IntVar(&seedDays, "days", 30, "覆盖的历史天数")
	seedCmd.Flags().Int64Var(&seedSeed, "seed", 42, "随机种子，便于复现")
}
