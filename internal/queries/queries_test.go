package queries

import (
	"strings"
	"testing"
)

func TestCollectionQueriesFilterAndOrder(t *testing.T) {
	for _, q := range All() {
		if q.Singleton() {
			continue
		}
		if !strings.Contains(q.GROQ, "isActive") && !strings.Contains(q.GROQ, "show == true") {
			t.Errorf("%s: collection query must filter inactive documents", q.Name)
		}
		if !strings.Contains(q.GROQ, "order(order asc)") {
			t.Errorf("%s: collection query must order ascending by order", q.Name)
		}
	}
}

func TestSlugQueriesBindParameter(t *testing.T) {
	for _, q := range []Query{ProjectBySlug, ServiceBySlug} {
		if !strings.Contains(q.GROQ, "slug.current == $slug") {
			t.Errorf("%s: slug must be bound as $slug", q.Name)
		}
		if !strings.Contains(q.GROQ, "isActive") {
			t.Errorf("%s: detail query must filter inactive documents", q.Name)
		}
		if len(q.Params) != 1 || q.Params[0] != "slug" {
			t.Errorf("%s: expected slug param, got %v", q.Name, q.Params)
		}
	}
}

func TestCatalogNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, q := range All() {
		if q.Name == "" || q.GROQ == "" {
			t.Errorf("incomplete catalog entry: %+v", q)
		}
		if seen[q.Name] {
			t.Errorf("duplicate query name: %s", q.Name)
		}
		seen[q.Name] = true
	}
}

func TestBilingualFieldsNested(t *testing.T) {
	if !strings.Contains(AllServices.GROQ, `"title": {"en": coalesce(title_en, title), "de": coalesce(title_de, title)}`) {
		t.Error("service titles must be projected into the nested locale shape")
	}
	if !strings.Contains(References.GROQ, `"location": {"en": coalesce(location_en, location), "de": coalesce(location_de, location)}`) {
		t.Error("reference location must be projected into the nested locale shape")
	}
}

// Several document types store one unsuffixed value per field
func TestUnsuffixedFieldsProjected(t *testing.T) {
	tests := []struct {
		query Query
		field string
	}{
		{Hero, "title"},
		{Hero, "button1"},
		{FeatureCards, "title"},
		{FeatureCards, "description"},
		{Stats, "title"},
		{AllTestimonials, "role"},
		{AllTestimonials, "message"},
		{Footer, "description"},
		{Footer, "address"},
		{Footer, "label"},
		{Footer, "copyright"},
		{Footer, "privacyPolicyLabel"},
		{References, "location"},
		{ContactPage, "day"},
	}

	for _, tt := range tests {
		for _, locale := range []string{"en", "de"} {
			want := "coalesce(" + tt.field + "_" + locale + ", " + tt.field + ")"
			if !strings.Contains(tt.query.GROQ, want) {
				t.Errorf("%s: expected %s in projection", tt.query.Name, want)
			}
		}
	}
}
