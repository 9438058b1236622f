package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"price-history-viewer/internal/cache"
)

const (
	supplyNameHeader  = "Item Name"
	supplyCountHeader = "Estimated Supply"
)

// Supply maps exact item names to estimated circulating supply counts.
type Supply struct {
	counts map[string]int64
}

// Get returns the supply count registered for name.
func (s Supply) Get(name string) (int64, bool) {
	n, ok := s.counts[name]
	return n, ok
}

// Len reports the number of items with a supply entry.
func (s Supply) Len() int { return len(s.counts) }

// SupplyLoader reads the supply catalog from a fixed path, caching the
// parsed result for the life of the process.
type SupplyLoader struct {
	logger zerolog.Logger
	cache  *cache.File
}

// NewSupplyLoader wires a loader for the supply catalog at path.
func NewSupplyLoader(path string, logger zerolog.Logger) *SupplyLoader {
	l := &SupplyLoader{
		logger: logger.With().Str("component", "supply_catalog").Logger(),
	}
	l.cache = cache.NewFile(path, l.load, cache.Options{})
	return l
}

// SupplyCatalog returns the cached supply mapping.
func (l *SupplyLoader) SupplyCatalog() (Supply, error) {
	v, _, err := l.cache.Get()
	if err != nil {
		if os.IsNotExist(err) {
			return Supply{}, fmt.Errorf("%w: %v", ErrMissing, err)
		}
		return Supply{}, err
	}
	return v.(Supply), nil
}

func (l *SupplyLoader) load(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	if len(rows) == 0 {
		return Supply{counts: map[string]int64{}}, nil
	}

	nameCol, countCol := locateSupplyColumns(rows[0])
	counts := make(map[string]int64, len(rows)-1)
	skipped := 0
	for _, row := range rows[1:] {
		if nameCol >= len(row) || countCol >= len(row) {
			skipped++
			continue
		}
		// Keys are exact, no variant registration; only the padding around
		// the delimiter is dropped.
		name := strings.TrimSpace(row[nameCol])
		if name == "" {
			skipped++
			continue
		}
		d, err := decimal.NewFromString(strings.TrimSpace(row[countCol]))
		if err != nil {
			skipped++
			continue
		}
		// Counts are whole units; fractional estimates truncate toward zero
		// and negative estimates clamp to zero.
		n := d.IntPart()
		if n < 0 {
			n = 0
		}
		counts[name] = n
	}

	if skipped > 0 {
		l.logger.Warn().Int("rows", skipped).Str("path", path).Msg("supply rows without a usable name or count skipped")
	}
	l.logger.Debug().Int("items", len(counts)).Str("path", path).Msg("supply catalog loaded")
	return Supply{counts: counts}, nil
}

// locateSupplyColumns finds the name and count columns by header text,
// falling back to the first two columns when the headers are absent.
func locateSupplyColumns(header []string) (nameCol, countCol int) {
	nameCol, countCol = 0, 1
	for i, h := range header {
		switch {
		case strings.EqualFold(strings.TrimSpace(h), supplyNameHeader):
			nameCol = i
		case strings.EqualFold(strings.TrimSpace(h), supplyCountHeader):
			countCol = i
		}
	}
	return nameCol, countCol
}
