package pricetable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"price-history-viewer/internal/cache"
)

var (
	// ErrMissing marks a price history file that does not exist.
	ErrMissing = errors.New("pricetable: source file missing")
	// ErrUnreadable marks a price history file that exists but cannot be
	// read or parsed as a wide CSV table.
	ErrUnreadable = errors.New("pricetable: source file unreadable")
	// ErrInvalidTimestamp marks a row whose first cell parses under none of
	// the accepted timestamp layouts. The whole load fails: a row that
	// cannot be placed on the time axis poisons every series.
	ErrInvalidTimestamp = errors.New("pricetable: invalid timestamp")
)

// timestampLayouts are tried in order; all naive layouts read as UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseTimestamp(raw string) (time.Time, error) {
	v := strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw)
}

// Loader reads the wide price history CSV from a fixed path. Parsed
// snapshots are cached with a TTL and invalidated early when the file's
// modification time advances, so interactive refreshes stay cheap while
// appends by the collector show up promptly.
type Loader struct {
	path   string
	logger zerolog.Logger
	cache  *cache.File
}

// NewLoader wires a loader for the price history file at path.
func NewLoader(path string, ttl time.Duration, logger zerolog.Logger) *Loader {
	l := &Loader{
		path:   path,
		logger: logger.With().Str("component", "price_table").Logger(),
	}
	l.cache = cache.NewFile(path, l.load, cache.Options{
		TTL:          ttl,
		CheckModTime: true,
	})
	return l
}

// PriceTable returns the current snapshot, re-reading the file only when
// the cache decides it is stale.
func (l *Loader) PriceTable() (*Table, error) {
	v, _, err := l.cache.Get()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, l.path)
		}
		return nil, err
	}
	return v.(*Table), nil
}

func (l *Loader) load(path string) (any, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: missing header row", ErrUnreadable, path)
	}
	if len(header) == 0 || !strings.EqualFold(strings.TrimSpace(header[0]), "timestamp") {
		return nil, fmt.Errorf("%w: %s: first column must be the timestamp", ErrUnreadable, path)
	}

	// Item columns are whatever the header says after the time axis. Names
	// are kept verbatim; a duplicate would silently interleave two series.
	itemNames := header[1:]
	columns := make(map[string][]*decimal.Decimal, len(itemNames))
	for _, name := range itemNames {
		if _, dup := columns[name]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate item column %q", ErrUnreadable, path, name)
		}
		columns[name] = nil
	}

	var timestamps []time.Time
	row := 1
	badCells := 0
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: row %d: %v", ErrUnreadable, path, row+1, err)
		}
		row++

		ts, err := parseTimestamp(record[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		timestamps = append(timestamps, ts)

		for i, name := range itemNames {
			var cell string
			if i+1 < len(record) {
				cell = strings.TrimSpace(record[i+1])
			}
			if cell == "" {
				columns[name] = append(columns[name], nil)
				continue
			}
			d, err := decimal.NewFromString(cell)
			if err != nil {
				badCells++
				columns[name] = append(columns[name], nil)
				continue
			}
			columns[name] = append(columns[name], &d)
		}
	}

	if badCells > 0 {
		l.logger.Warn().Int("cells", badCells).Str("path", path).Msg("unparseable price cells treated as absent")
	}
	l.logger.Debug().
		Int("rows", len(timestamps)).
		Int("items", len(itemNames)).
		Time("mod_time", info.ModTime()).
		Msg("price table loaded")
	return newTable(itemNames, timestamps, columns, info.ModTime()), nil
}
