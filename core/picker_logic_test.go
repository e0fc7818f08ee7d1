package core

import "testing"

func TestFuzzyMatchScore(t *testing.T) {
	cases := []struct {
		label   string
		query   string
		matched bool
	}{
		{"Hello World", "", true},
		{"Hello World", "hw", true},
		{"Hello World", "hello", true},
		{"Hello World", "xyz", false},
		{"Hello World", "wh", false}, // out of order
	}
	for _, tc := range cases {
		matched, _ := FuzzyMatchScore(tc.label, tc.query)
		if matched != tc.matched {
			t.Fatalf("FuzzyMatchScore(%q, %q) matched = %v, want %v", tc.label, tc.query, matched, tc.matched)
		}
	}
}

func TestFuzzyMatchScoreOrdering(t *testing.T) {
	_, prefix := FuzzyMatchScore("Hello World", "hel")
	_, scattered := FuzzyMatchScore("The hotel", "hel")
	if prefix <= scattered {
		t.Fatalf("prefix score %d should beat scattered score %d", prefix, scattered)
	}

	_, exact := FuzzyMatchScore("Styles", "styles")
	_, partial := FuzzyMatchScore("Styles and more", "styles")
	if exact <= partial {
		t.Fatalf("exact score %d should beat partial score %d", exact, partial)
	}
}

func TestPickerFiltersAndNavigates(t *testing.T) {
	p := NewPicker("Test", []PickerItem{
		{ID: "1", Label: "Hello World", Section: "Pages"},
		{ID: "2", Label: "Styles", Section: "Editor"},
		{ID: "3", Label: "Hello Again", Section: "Pages"},
	})

	p.SetQuery("hello")
	items := p.Items()
	if len(items) != 2 {
		t.Fatalf("filtered to %d items, want 2", len(items))
	}

	p.HandleKey("down")
	res := p.HandleKey("enter")
	if res.Action != PickerActionSelected {
		t.Fatalf("enter action = %v, want selected", res.Action)
	}
	if res.Item.ID != "3" {
		t.Fatalf("selected item %q, want 3", res.Item.ID)
	}
}

func TestPickerSpaceKeyAppendsSpace(t *testing.T) {
	p := NewPicker("Test", []PickerItem{{ID: "1", Label: "Hello World"}})
	p.HandleKey("h")
	p.HandleKey("space")
	p.HandleKey("w")
	if p.Query() != "h w" {
		t.Fatalf("query = %q, want %q", p.Query(), "h w")
	}
}

func TestPickerCursorClampsAfterFilter(t *testing.T) {
	p := NewPicker("Test", []PickerItem{
		{ID: "1", Label: "aa"},
		{ID: "2", Label: "ab"},
		{ID: "3", Label: "bb"},
	})
	p.HandleKey("down")
	p.HandleKey("down")
	p.SetQuery("a")
	if _, ok := p.CurrentItem(); !ok {
		t.Fatal("expected a current item after filtering")
	}
	if p.Cursor() > 1 {
		t.Fatalf("cursor %d out of range after filter", p.Cursor())
	}
}
