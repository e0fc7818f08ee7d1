package i18n

import "testing"

func TestNoTitlePlaceholder(t *testing.T) {
	tr := New("en")
	if got := tr.NoTitle(); got != "(no title)" {
		t.Fatalf("NoTitle() = %q", got)
	}
}

func TestUnknownLanguageFallsBack(t *testing.T) {
	tr := New("not-a-tag")
	if got := tr.NoTitle(); got != "(no title)" {
		t.Fatalf("fallback NoTitle() = %q", got)
	}
}

func TestCatalogLabels(t *testing.T) {
	tr := New("en")
	for _, key := range []string{"Navigation", "Styles", "Pages", "Templates"} {
		if got := tr.Sprintf(key); got != key {
			t.Fatalf("Sprintf(%q) = %q", key, got)
		}
	}
}
