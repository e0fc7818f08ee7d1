package core

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func testPalette(loaders ...CommandLoader) *PaletteScreen {
	return NewPaletteScreen("tab:editor", NewLoaderRegistry(loaders...), time.Millisecond)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPaletteSettlesOnlyLatestQuery(t *testing.T) {
	s := testPalette(staticLoader("Pages", "Hello World"))

	s.Update(keyRunes("h"))
	s.Update(keyRunes("e"))

	// The first keystroke's emission is stale by the time it arrives.
	s.Update(DebouncedQueryMsg{Gen: 1, Value: "h"})
	if s.Query() != "" {
		t.Fatalf("stale emission settled: %q", s.Query())
	}

	s.Update(DebouncedQueryMsg{Gen: 2, Value: "he"})
	if s.Query() != "he" {
		t.Fatalf("query = %q, want %q", s.Query(), "he")
	}
}

func TestPaletteEnterEmitsSelectionAndPops(t *testing.T) {
	s := testPalette(staticLoader("Pages", "Hello World"))

	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop {
		t.Fatal("enter should pop the palette")
	}
	if cmd == nil {
		t.Fatal("enter should produce a selection command")
	}
	sel, ok := cmd().(PaletteSelectionMsg)
	if !ok {
		t.Fatalf("expected PaletteSelectionMsg, got %T", cmd())
	}
	if sel.Command.Name != "Pages-Hello World" {
		t.Fatalf("selected %q", sel.Command.Name)
	}
}

func TestPaletteEscPops(t *testing.T) {
	s := testPalette(staticLoader("Pages", "Hello World"))
	_, _, pop := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !pop {
		t.Fatal("esc should pop the palette")
	}
}

func TestPaletteCursorMovesAcrossSections(t *testing.T) {
	s := testPalette(
		staticLoader("Pages", "Hello World"),
		staticLoader("Templates", "Home"),
	)
	s.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sel := cmd().(PaletteSelectionMsg)
	if sel.Command.Name != "Templates-Home" {
		t.Fatalf("selected %q, want the second section's entry", sel.Command.Name)
	}
}

func TestPaletteNarrowsBySearchLabel(t *testing.T) {
	// The loader returns every destination; the host is what narrows the
	// list, matching SearchLabel against the settled query.
	loader := LoaderFunc{
		LoaderName: "Site Editor",
		LoadFunc: func(q LoaderQuery) LoaderResult {
			return LoaderResult{Commands: []PaletteCommand{
				{Name: "navigation", Label: "Navigation", SearchLabel: "Navigation"},
				{Name: "styles", Label: "Styles", SearchLabel: "Styles"},
			}}
		},
	}
	s := testPalette(loader)
	s.Update(DebouncedQueryMsg{Gen: 0, Value: "sty"})

	view := s.View(60, 20)
	if strings.Contains(view, "Navigation") {
		t.Fatal("non-matching command survived host-side narrowing")
	}

	_, cmd, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sel := cmd().(PaletteSelectionMsg)
	if sel.Command.Name != "styles" {
		t.Fatalf("selected %q, want styles", sel.Command.Name)
	}
}

func TestPaletteMatchesIdentifierInSearchLabel(t *testing.T) {
	loader := LoaderFunc{
		LoaderName: "Pages",
		LoadFunc: func(q LoaderQuery) LoaderResult {
			return LoaderResult{Commands: []PaletteCommand{
				{Name: "page-7", Label: "(no title)", SearchLabel: "(no title) 7"},
			}}
		},
	}
	s := testPalette(loader)
	s.Update(DebouncedQueryMsg{Gen: 0, Value: "7"})

	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop || cmd == nil {
		t.Fatal("identifier query should still reach the untitled record")
	}
	if sel := cmd().(PaletteSelectionMsg); sel.Command.Name != "page-7" {
		t.Fatalf("selected %q, want page-7", sel.Command.Name)
	}
}

func TestPaletteRefetchesWhenStoreChanges(t *testing.T) {
	l := &prefetchLoader{LoaderFunc: LoaderFunc{
		LoaderName: "Pages",
		LoadFunc: func(q LoaderQuery) LoaderResult {
			return LoaderResult{IsLoading: true}
		},
	}}
	s := testPalette(l)

	_, cmd, _ := s.Update(StoreChangedMsg{})
	if cmd == nil {
		t.Fatal("store change scheduled no refetch")
	}
	if l.calls == 0 {
		t.Fatal("loader prefetch not invoked after the store changed")
	}
}

func TestPaletteViewShowsLoadingRow(t *testing.T) {
	loading := LoaderFunc{
		LoaderName: "Pages",
		LoadFunc: func(q LoaderQuery) LoaderResult {
			return LoaderResult{IsLoading: true}
		},
	}
	s := testPalette(loading)
	view := s.View(60, 20)
	if !strings.Contains(view, "Loading") {
		t.Fatal("view should mark the loading section")
	}
}
