package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"price-history-viewer/internal/config"
	"price-history-viewer/internal/window"
)

const dateLayout = "2006-01-02"

// parseWindow turns the --from/--to/--last flag trio into a window. The two
// modes are exclusive; no window flags at all selects all history.
func parseWindow(cfg *config.Config, fromRaw, toRaw, lastRaw string) (window.Window, error) {
	absolute := fromRaw != "" || toRaw != ""
	if absolute && lastRaw != "" {
		return window.Window{}, fmt.Errorf("--from/--to and --last are mutually exclusive")
	}

	if lastRaw != "" {
		d, err := time.ParseDuration(lastRaw)
		if err != nil {
			return window.Window{}, fmt.Errorf("invalid --last value %q (presets: %s; 0 selects all history)",
				lastRaw, cfg.PresetLabels())
		}
		win := window.Lookback(d)
		return win, win.Validate()
	}

	if !absolute {
		return window.Lookback(0), nil
	}

	if fromRaw == "" || toRaw == "" {
		return window.Window{}, fmt.Errorf("select two dates to define the period (--from and --to)")
	}
	from, err := time.Parse(dateLayout, fromRaw)
	if err != nil {
		return window.Window{}, fmt.Errorf("invalid --from value: %w", err)
	}
	to, err := time.Parse(dateLayout, toRaw)
	if err != nil {
		return window.Window{}, fmt.Errorf("invalid --to value: %w", err)
	}
	win := window.AbsoluteRange(from, to)
	return win, win.Validate()
}

// maOverride reports the --ma flag value only when the user actually set
// it, so an untouched flag falls back to the config default.
func maOverride(cmd *cobra.Command, value bool) *bool {
	if cmd.Flags().Changed("ma") {
		return &value
	}
	return nil
}
