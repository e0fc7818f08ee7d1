package editor

import (
	"net/url"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pressnav/pressnav/core"
)

type stubContext struct{ loc Location }

func (s stubContext) Location(m *core.Model) Location { return s.loc }

type stubPusher struct{ pushed []RouteParams }

func (s *stubPusher) Push(p RouteParams) tea.Cmd {
	s.pushed = append(s.pushed, p)
	return nil
}

type stubRedirector struct{ urls []string }

func (s *stubRedirector) Redirect(u string) error {
	s.urls = append(s.urls, u)
	return nil
}

func adminLocation() Location {
	return Location{Path: "/wp-admin/index.php", Query: url.Values{}}
}

func siteEditorLocation(canvas string) Location {
	q := url.Values{}
	if canvas != "" {
		q.Set("canvas", canvas)
	}
	return Location{Path: "/wp-admin/site-editor.php", Query: q}
}

func run(cmd tea.Cmd) {
	if cmd != nil {
		cmd()
	}
}

func TestDispatchClassicAlwaysRedirects(t *testing.T) {
	pusher := &stubPusher{}
	redir := &stubRedirector{}
	d := NewDispatcher("http://cms.local/wp-admin", stubContext{siteEditorLocation("edit")}, pusher, redir, nil)

	run(d.Dispatch(nil, Target{Classic: true, PostID: "5"}))

	if len(pusher.pushed) != 0 {
		t.Fatalf("classic target pushed a route: %+v", pusher.pushed)
	}
	if len(redir.urls) != 1 {
		t.Fatalf("got %d redirects, want 1", len(redir.urls))
	}
	want := "http://cms.local/wp-admin/post.php?post=5&action=edit"
	if redir.urls[0] != want {
		t.Fatalf("redirect = %q, want %q", redir.urls[0], want)
	}
}

func TestDispatchPushesInAppWhenSiteEditorActive(t *testing.T) {
	pusher := &stubPusher{}
	redir := &stubRedirector{}
	d := NewDispatcher("http://cms.local/wp-admin", stubContext{siteEditorLocation("edit")}, pusher, redir, nil)

	run(d.Dispatch(nil, Target{Params: RouteParams{Path: "/navigation"}}))

	if len(redir.urls) != 0 {
		t.Fatalf("in-app navigation redirected: %v", redir.urls)
	}
	if len(pusher.pushed) != 1 {
		t.Fatalf("got %d pushes, want 1", len(pusher.pushed))
	}
	got := pusher.pushed[0]
	if got.Path != "/navigation" {
		t.Fatalf("pushed path = %q", got.Path)
	}
	if got.Canvas != "edit" {
		t.Fatalf("canvas = %q, want the ambient canvas preserved", got.Canvas)
	}
}

func TestDispatchKeepsExplicitCanvasOverAmbient(t *testing.T) {
	pusher := &stubPusher{}
	d := NewDispatcher("http://cms.local/wp-admin", stubContext{siteEditorLocation("view")}, pusher, &stubRedirector{}, nil)

	run(d.Dispatch(nil, Target{Params: RouteParams{PostType: "page", PostID: "5", Canvas: "edit"}}))

	if pusher.pushed[0].Canvas != "edit" {
		t.Fatalf("canvas = %q, explicit value should win", pusher.pushed[0].Canvas)
	}
}

func TestDispatchRedirectsWhenOutsideSiteEditor(t *testing.T) {
	pusher := &stubPusher{}
	redir := &stubRedirector{}
	d := NewDispatcher("http://cms.local/wp-admin", stubContext{adminLocation()}, pusher, redir, nil)

	run(d.Dispatch(nil, Target{Params: RouteParams{
		PostType: "wp_template",
		PostID:   "twentytwentyfour//home",
		Canvas:   "edit",
	}}))

	if len(pusher.pushed) != 0 {
		t.Fatalf("redirect path pushed a route: %+v", pusher.pushed)
	}
	if len(redir.urls) != 1 {
		t.Fatalf("got %d redirects, want 1", len(redir.urls))
	}
	u := redir.urls[0]
	if !strings.HasPrefix(u, "http://cms.local/wp-admin/site-editor.php?") {
		t.Fatalf("redirect = %q, want a site editor URL", u)
	}
	for _, part := range []string{
		"postType=wp_template",
		"postId=twentytwentyfour%2F%2Fhome",
		"canvas=edit",
	} {
		if !strings.Contains(u, part) {
			t.Fatalf("redirect %q missing %q", u, part)
		}
	}
}

func TestDispatchReportsRedirectOutcomeAsStatus(t *testing.T) {
	d := NewDispatcher("http://cms.local/wp-admin", stubContext{adminLocation()}, &stubPusher{}, &stubRedirector{}, nil)
	cmd := d.Dispatch(nil, Target{Classic: true, PostID: "9"})
	msg, ok := cmd().(core.StatusMsg)
	if !ok || msg.IsErr {
		t.Fatalf("expected success status, got %#v", msg)
	}
}
