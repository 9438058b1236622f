package names

import "strings"

// Canonical reduces a raw item name token to the canonical join key:
// surrounding whitespace first, then one matched pair of surrounding quotes,
// then any quote characters left behind by naive comma splitting.
// Canonical(Canonical(s)) == Canonical(s) for every s.
func Canonical(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, `"`, "")
	return strings.TrimSpace(s)
}

// Variants returns the normalization forms a name has historically been
// keyed by: canonical, whitespace-trimmed, and raw. The catalog files were
// produced by uncoordinated tools, so the same item may appear under any of
// these in any source.
func Variants(raw string) []string {
	seen := make(map[string]struct{}, 3)
	var forms []string
	for _, form := range []string{Canonical(raw), strings.TrimSpace(raw), raw} {
		if form == "" {
			continue
		}
		if _, ok := seen[form]; ok {
			continue
		}
		seen[form] = struct{}{}
		forms = append(forms, form)
	}
	return forms
}

// Index resolves item names to a value regardless of which historical
// normalization produced the key on either side of the join.
type Index struct {
	entries map[string]string
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{entries: make(map[string]string)}
}

// Register stores value under every variant of rawName.
func (x *Index) Register(rawName, value string) {
	for _, form := range Variants(rawName) {
		x.entries[form] = value
	}
}

// Lookup resolves rawName by trying each of its variants in turn.
func (x *Index) Lookup(rawName string) (string, bool) {
	if x == nil || x.entries == nil {
		return "", false
	}
	for _, form := range Variants(rawName) {
		if v, ok := x.entries[form]; ok {
			return v, true
		}
	}
	return "", false
}

// Len reports the number of distinct keys registered.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.entries)
}
