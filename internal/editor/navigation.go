package editor

import (
	"net/url"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/pressnav/pressnav/core"
)

// RouteParams addresses a site editor surface. Path routes the list views
// ("/navigation", "/page", "/wp_template"); PostType and PostID open a single
// record in the canvas. Canvas carries the edit mode across navigations;
// DidAccessPatternsPage marks detours through the patterns listing so the
// back stack can return there.
type RouteParams struct {
	Path                  string
	PostType              string
	PostID                string
	Canvas                string
	DidAccessPatternsPage bool
}

// Location is the ambient location at dispatch time: the screen path plus
// its query arguments.
type Location struct {
	Path  string
	Query url.Values
}

// ContextProvider derives the ambient location from the running model.
// Dispatch reads it fresh per call; implementations must not cache across
// navigations.
type ContextProvider interface {
	Location(m *core.Model) Location
}

// RoutePusher performs an in-app route change within the site editor shell.
type RoutePusher interface {
	Push(params RouteParams) tea.Cmd
}

// Redirector hands a full admin URL to the environment, leaving the app.
type Redirector interface {
	Redirect(rawURL string) error
}

// ExecRedirector opens URLs through the desktop's handler.
type ExecRedirector struct{}

func (ExecRedirector) Redirect(rawURL string) error {
	return exec.Command("xdg-open", rawURL).Start()
}

// Target is the navigation outcome of selecting a palette command. Classic
// targets always leave for the classic editor regardless of the ambient
// location; everything else is a site editor target addressed by Params.
type Target struct {
	Classic bool
	PostID  string
	Params  RouteParams
}

// Dispatcher routes targets: an in-app route push when the site editor shell
// is already active, otherwise a full navigation through the Redirector.
type Dispatcher struct {
	baseURL string
	ctx     ContextProvider
	pusher  RoutePusher
	redir   Redirector
	log     *zap.Logger
}

func NewDispatcher(baseURL string, ctx ContextProvider, pusher RoutePusher, redir Redirector, log *zap.Logger) *Dispatcher {
	if redir == nil {
		redir = ExecRedirector{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		ctx:     ctx,
		pusher:  pusher,
		redir:   redir,
		log:     log,
	}
}

func (d *Dispatcher) Dispatch(m *core.Model, t Target) tea.Cmd {
	if t.Classic {
		return d.redirect(d.classicEditURL(t.PostID))
	}
	loc := d.ctx.Location(m)
	if strings.Contains(loc.Path, "site-editor.php") {
		params := t.Params
		if params.Canvas == "" {
			params.Canvas = loc.Query.Get("canvas")
		}
		d.log.Debug("pushing site editor route",
			zap.String("path", params.Path),
			zap.String("postType", params.PostType),
			zap.String("postId", params.PostID))
		return d.pusher.Push(params)
	}
	return d.redirect(d.siteEditorURL(t.Params))
}

func (d *Dispatcher) redirect(rawURL string) tea.Cmd {
	return func() tea.Msg {
		d.log.Debug("redirecting", zap.String("url", rawURL))
		if err := d.redir.Redirect(rawURL); err != nil {
			return core.StatusMsg{Text: "open " + rawURL + ": " + err.Error(), IsErr: true}
		}
		return core.StatusMsg{Text: "Opened " + rawURL}
	}
}

// classicEditURL keeps the CMS's familiar post-then-action parameter order.
// baseURL is the admin root, e.g. https://example.com/wp-admin.
func (d *Dispatcher) classicEditURL(postID string) string {
	return d.baseURL + "/post.php?post=" + url.QueryEscape(postID) + "&action=edit"
}

func (d *Dispatcher) siteEditorURL(p RouteParams) string {
	v := url.Values{}
	if p.Path != "" {
		v.Set("p", p.Path)
	}
	if p.PostType != "" {
		v.Set("postType", p.PostType)
	}
	if p.PostID != "" {
		v.Set("postId", p.PostID)
	}
	if p.Canvas != "" {
		v.Set("canvas", p.Canvas)
	}
	u := d.baseURL + "/site-editor.php"
	if q := v.Encode(); q != "" {
		u += "?" + q
	}
	return u
}
