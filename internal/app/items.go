package app

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"price-history-viewer/internal/analytics"
)

// Items lists every item discovered in the price table header, with its
// latest price and supply when known.
func (a *App) Items() error {
	prices, supplyLoader, _ := a.newLoaders()

	table, err := prices.PriceTable()
	if err != nil {
		return err
	}

	supply, err := supplyLoader.SupplyCatalog()
	if err != nil {
		a.Logger.Warn().Err(err).Msg("supply catalog unavailable, listing without counts")
	}

	fmt.Fprintf(os.Stdout, "Items (total: %d)\n", len(table.Names()))
	latest, ok := table.Latest()
	if ok {
		fmt.Fprintf(os.Stdout, "Latest observation: %s\n", latest.UTC().Format(time.RFC3339))
	}
	fmt.Fprintln(os.Stdout)

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ITEM\tLAST PRICE\tSUPPLY")
	for _, name := range table.Names() {
		col, _ := table.Column(name)
		price := "n/a"
		if last := analytics.LastValid(col); last != nil {
			price = last.StringFixed(2)
		}
		count := "n/a"
		if n, ok := supply.Get(name); ok {
			count = humanize.Comma(n)
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", name, price, count)
	}
	return writer.Flush()
}
