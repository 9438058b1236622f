package app

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

// Seed 在配置的数据路径下生成一套演示数据集：随机游走的价格宽表、
// 对应的供应量与图片目录。没有采集器产出时也能试用查看器。
func (a *App) Seed(opts SeedOptions) error {
	if opts.Items <= 0 || opts.Days <= 0 {
		return errors.New("--items 与 --days 必须大于 0")
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	names := make([]string, opts.Items)
	for i := range names {
		names[i] = fmt.Sprintf("Demo Item %02d", i+1)
	}

	if err := a.seedPriceHistory(rng, names, opts.Days); err != nil {
		return err
	}
	if err := a.seedSupply(rng, names); err != nil {
		return err
	}
	if err := a.seedImages(names); err != nil {
		return err
	}

	a.Logger.Info().
		Str("prices", a.Config.Data.PriceHistoryPath).
		Str("supply", a.Config.Data.SupplyPath).
		Str("images", a.Config.Data.ImagePath).
		Msg("demo dataset written")
	return nil
}

func (a *App) seedPriceHistory(rng *rand.Rand, names []string, days int) error {
	path := a.Config.Data.PriceHistoryPath
	if err := ensureDir(path); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(append([]string{"timestamp"}, names...)); err != nil {
		return err
	}

	samplesPerHour := a.Config.Analytics.SamplesPerHour
	step := time.Hour / time.Duration(samplesPerHour)
	rows := days * 24 * samplesPerHour
	start := time.Now().UTC().Truncate(time.Hour).Add(-time.Duration(rows) * step)

	prices := make([]float64, len(names))
	for i := range prices {
		prices[i] = 50 + rng.Float64()*450
	}

	record := make([]string, len(names)+1)
	for r := 0; r < rows; r++ {
		record[0] = start.Add(time.Duration(r) * step).Format("2006-01-02 15:04:05")
		for i := range names {
			prices[i] *= 1 + (rng.Float64()-0.5)*0.02
			// 偶尔留空，模拟采集缺口。
			if rng.Float64() < 0.03 {
				record[i+1] = ""
				continue
			}
			record[i+1] = decimal.NewFromFloat(prices[i]).StringFixed(2)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return writer.Error()
}

func (a *App) seedSupply(rng *rand.Rand, names []string) error {
	path := a.Config.Data.SupplyPath
	if err := ensureDir(path); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"Item Name", "Estimated Supply"}); err != nil {
		return err
	}
	for _, name := range names {
		count := 100 + rng.Intn(9900)
		if err := writer.Write([]string{name, fmt.Sprintf("%d", count)}); err != nil {
			return err
		}
	}
	return writer.Error()
}

func (a *App) seedImages(names []string) error {
	path := a.Config.Data.ImagePath
	if err := ensureDir(path); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	fmt.Fprintln(file, "name,url")
	for i, name := range names {
		fmt.Fprintf(file, "%s,https://picsum.photos/seed/%d/400/300\n", name, i+1)
	}
	return nil
}
