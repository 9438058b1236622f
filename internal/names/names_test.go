package names

import "testing"

func TestCanonical(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{`Widget`, `Widget`},
		{`  Widget  `, `Widget`},
		{`"Widget"`, `Widget`},
		{` "Widget" `, `Widget`},
		{`"Widget, Large"`, `Widget, Large`},
		{`Wid"get`, `Widget`},
		{`" Widget "`, `Widget`},
		{`""`, ``},
		{``, ``},
		{`   `, ``},
	}
	for _, tc := range cases {
		if got := Canonical(tc.raw); got != tc.want {
			t.Errorf("Canonical(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestCanonicalIdempotent(t *testing.T) {
	inputs := []string{`"Widget"`, ` "Foo, Bar" `, `plain`, `a"b"c`, ``}
	for _, raw := range inputs {
		once := Canonical(raw)
		if twice := Canonical(once); twice != once {
			t.Errorf("Canonical not idempotent for %q: %q then %q", raw, once, twice)
		}
	}
}

func TestVariantsDeduplicates(t *testing.T) {
	forms := Variants("Widget")
	if len(forms) != 1 || forms[0] != "Widget" {
		t.Fatalf("Variants(%q) = %v, want single form", "Widget", forms)
	}

	forms = Variants(` "Widget" `)
	if len(forms) != 3 {
		t.Fatalf("Variants returned %v, want 3 distinct forms", forms)
	}
	if forms[0] != `Widget` {
		t.Errorf("first variant must be canonical, got %q", forms[0])
	}
}

func TestIndexResolvesHistoricalForms(t *testing.T) {
	idx := NewIndex()
	idx.Register(` "Ancient Relic" `, "https://example.com/relic.png")

	lookups := []string{
		`Ancient Relic`,
		` Ancient Relic `,
		`"Ancient Relic"`,
		` "Ancient Relic" `,
		`Ancient "Relic`,
	}
	for _, name := range lookups {
		got, ok := idx.Lookup(name)
		if !ok {
			t.Errorf("Lookup(%q) missed", name)
			continue
		}
		if got != "https://example.com/relic.png" {
			t.Errorf("Lookup(%q) = %q", name, got)
		}
	}
}

func TestIndexUnknown(t *testing.T) {
	idx := NewIndex()
	idx.Register("Widget", "value")
	if _, ok := idx.Lookup("Other"); ok {
		t.Fatal("Lookup must miss for unregistered names")
	}

	var nilIdx *Index
	if _, ok := nilIdx.Lookup("Widget"); ok {
		t.Fatal("nil index must miss")
	}
	if nilIdx.Len() != 0 {
		t.Fatal("nil index length must be zero")
	}
}
