package tags

import "testing"

func TestEnrichSplitsCategoryAndValue(t *testing.T) {
	got := Enrich([]string{"domain:networking", "type:feature"})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	want := []struct{ category, value string }{
		{"domain", "networking"},
		{"type", "feature"},
	}
	for i, w := range want {
		if got[i].Category != w.category || got[i].Value != w.value {
			t.Errorf("tag %d = {%q, %q}, want {%q, %q}", i, got[i].Category, got[i].Value, w.category, w.value)
		}
	}
	domain, ok := Domain(got)
	if !ok || domain != "networking" {
		t.Errorf("Domain = (%q, %v), want (%q, true)", domain, ok, "networking")
	}
}

func TestParseMalformedTags(t *testing.T) {
	tests := []struct {
		raw      string
		category string
		value    string
	}{
		{"announcement", Uncategorized, "announcement"},
		{"", Uncategorized, ""},
		{":orphan", Uncategorized, ":orphan"},
		{"dangling:", Uncategorized, "dangling:"},
		{"  domain : logs  ", "domain", "logs"},
		{"domain: a:b", "domain", "a:b"},
	}
	for _, tt := range tests {
		got := Parse(tt.raw)
		if got.Category != tt.category || got.Value != tt.value {
			t.Errorf("Parse(%q) = {%q, %q}, want {%q, %q}", tt.raw, got.Category, got.Value, tt.category, tt.value)
		}
	}
}

func TestEnrichPreservesOrderAndDuplicates(t *testing.T) {
	raw := []string{"type: feature", "domain: sinks", "type: feature"}
	got := Enrich(raw)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, r := range raw {
		if got[i].Label != r {
			t.Errorf("tag %d label = %q, want %q", i, got[i].Label, r)
		}
	}
}

func TestUnknownCategoryKeptWithDefaultStyle(t *testing.T) {
	got := Parse("flavor: vanilla")
	if got.Category != "flavor" || got.Value != "vanilla" {
		t.Fatalf("Parse = {%q, %q}", got.Category, got.Value)
	}
	if _, known := styles[got.Category]; known {
		t.Error("flavor should not be a known category")
	}
	if got.Style != DefaultStyle {
		t.Errorf("Style = %q, want %q", got.Style, DefaultStyle)
	}
	if s := Parse("domain: logs").Style; s != "blue" {
		t.Errorf("domain style = %q, want blue", s)
	}
}

func TestDomainMissing(t *testing.T) {
	if d, ok := Domain(Enrich([]string{"type: feature", "rust"})); ok {
		t.Errorf("Domain = %q, want none", d)
	}
	if _, ok := Domain(nil); ok {
		t.Error("Domain(nil) should report none")
	}
}

func TestSlugAndPermalink(t *testing.T) {
	tests := []struct {
		label string
		slug  string
		link  string
	}{
		{"domain: networking", "domain-networking", "/blog/tags/domain-networking/"},
		{"Type: Announcement!", "type-announcement", "/blog/tags/type-announcement/"},
		{"   ", "", "/blog/"},
	}
	for _, tt := range tests {
		if got := Slug(tt.label); got != tt.slug {
			t.Errorf("Slug(%q) = %q, want %q", tt.label, got, tt.slug)
		}
		if got := Permalink(tt.label); got != tt.link {
			t.Errorf("Permalink(%q) = %q, want %q", tt.label, got, tt.link)
		}
	}
}

func TestDisplayValue(t *testing.T) {
	if got := DisplayValue(Parse("domain: observability")); got != "Observability" {
		t.Errorf("DisplayValue = %q, want %q", got, "Observability")
	}
}
