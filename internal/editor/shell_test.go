package editor

import (
	"testing"

	"github.com/pressnav/pressnav/core"
)

func TestTabLocationReflectsActiveSurface(t *testing.T) {
	s, db := newTestStore(t)
	setTheme(t, db, true)
	tab := NewTab(s, nil)
	m := core.NewModel([]core.Tab{tab}, core.NewKeyRegistry(nil), nil)

	loc := tab.Location(&m)
	if loc.Path != "/wp-admin/site-editor.php" {
		t.Fatalf("active tab location = %q", loc.Path)
	}

	if loc := tab.Location(nil); loc.Path == "/wp-admin/site-editor.php" {
		t.Fatal("site editor path leaked while the shell is not active")
	}
}

func TestTabLocationCarriesRouteQuery(t *testing.T) {
	s, _ := newTestStore(t)
	tab := NewTab(s, nil)
	m := core.NewModel([]core.Tab{tab}, core.NewKeyRegistry(nil), nil)

	tab.Update(&m, RouteMsg{Params: RouteParams{PostType: "page", PostID: "5", Canvas: "edit"}})

	q := tab.Location(&m).Query
	if q.Get("postType") != "page" || q.Get("postId") != "5" || q.Get("canvas") != "edit" {
		t.Fatalf("location query = %v", q)
	}
}

func TestTabTracksPatternsAcrossOneHop(t *testing.T) {
	s, _ := newTestStore(t)
	tab := NewTab(s, nil)
	m := core.NewModel([]core.Tab{tab}, core.NewKeyRegistry(nil), nil)

	if tab.OnPatternsPage() {
		t.Fatal("fresh shell should not report the patterns page")
	}

	tab.Update(&m, RouteMsg{Params: RouteParams{Path: "/patterns"}})
	if !tab.OnPatternsPage() {
		t.Fatal("current route is the patterns page")
	}

	tab.Update(&m, RouteMsg{Params: RouteParams{PostType: "wp_template_part", PostID: "x"}})
	if !tab.OnPatternsPage() {
		t.Fatal("prior route was the patterns page")
	}

	tab.Update(&m, RouteMsg{Params: RouteParams{Path: "/page"}})
	if tab.OnPatternsPage() {
		t.Fatal("patterns page is two hops back")
	}
}

func TestTabBackStopsAtRoot(t *testing.T) {
	s, _ := newTestStore(t)
	tab := NewTab(s, nil)
	m := core.NewModel([]core.Tab{tab}, core.NewKeyRegistry(nil), nil)

	tab.Update(&m, RouteMsg{Params: RouteParams{Path: "/navigation"}})
	if !tab.Back() {
		t.Fatal("expected to pop back to the root route")
	}
	if tab.Back() {
		t.Fatal("root route should not pop")
	}
	if tab.Current().Path != "/" {
		t.Fatalf("current = %q, want the root route", tab.Current().Path)
	}
}
