package pricetable

import (
	"time"

	"github.com/shopspring/decimal"
)

// Table is one immutable snapshot of the wide price history file: a shared
// time axis plus one equally long price series per discovered item. A nil
// cell means no observation was recorded for that item at that instant.
type Table struct {
	timestamps []time.Time
	columns    map[string][]*decimal.Decimal
	names      []string
	modTime    time.Time
	latest     time.Time
}

func newTable(names []string, timestamps []time.Time, columns map[string][]*decimal.Decimal, modTime time.Time) *Table {
	t := &Table{
		timestamps: timestamps,
		columns:    columns,
		names:      names,
		modTime:    modTime,
	}
	for _, ts := range timestamps {
		if ts.After(t.latest) {
			t.latest = ts
		}
	}
	return t
}

// Len reports the number of rows.
func (t *Table) Len() int { return len(t.timestamps) }

// Names returns the item columns in file order.
func (t *Table) Names() []string { return t.names }

// Timestamps returns the shared time axis.
func (t *Table) Timestamps() []time.Time { return t.timestamps }

// Column returns the price series for an item name exactly as it appears in
// the file header.
func (t *Table) Column(name string) ([]*decimal.Decimal, bool) {
	col, ok := t.columns[name]
	return col, ok
}

// Latest returns the newest timestamp in the table; ok is false when the
// table holds no rows.
func (t *Table) Latest() (time.Time, bool) {
	return t.latest, len(t.timestamps) > 0
}

// ModTime returns the modification time of the file this snapshot was
// parsed from.
func (t *Table) ModTime() time.Time { return t.modTime }

// Select builds a new table holding only the rows at the given indices, in
// the given order. Column set, column order, and file metadata carry over.
func (t *Table) Select(rows []int) *Table {
	timestamps := make([]time.Time, len(rows))
	for i, r := range rows {
		timestamps[i] = t.timestamps[r]
	}
	columns := make(map[string][]*decimal.Decimal, len(t.columns))
	for name, col := range t.columns {
		sub := make([]*decimal.Decimal, len(rows))
		for i, r := range rows {
			sub[i] = col[r]
		}
		columns[name] = sub
	}
	return newTable(t.names, timestamps, columns, t.modTime)
}
