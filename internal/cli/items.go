package cli

import (
	"github.com/spf13/cobra"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List every item in the price history with its latest price and supply",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().Items()
	},
}
