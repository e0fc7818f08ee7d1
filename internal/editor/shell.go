package editor

import (
	"fmt"
	"net/url"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/pressnav/pressnav/core"
	"github.com/pressnav/pressnav/core/widgets"
	"github.com/pressnav/pressnav/internal/store"
)

// RouteMsg requests an in-app route change within the site editor shell.
type RouteMsg struct {
	Params RouteParams
}

// Tab is the site editor shell: a routed surface mirroring the CMS's
// site-editor.php screen. It keeps a route history so command synthesis can
// read the current and prior routes back.
type Tab struct {
	store  *store.Store
	log    *zap.Logger
	routes []RouteParams
}

func NewTab(s *store.Store, log *zap.Logger) *Tab {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tab{
		store:  s,
		log:    log,
		routes: []RouteParams{{Path: "/"}},
	}
}

func (t *Tab) ID() string    { return "editor" }
func (t *Tab) Title() string { return "Site Editor" }
func (t *Tab) Scope() string { return "tab:editor" }

// Current returns the route at the top of the history.
func (t *Tab) Current() RouteParams {
	return t.routes[len(t.routes)-1]
}

// Push satisfies RoutePusher. The route applies when the message comes back
// through the update loop, after the palette has popped.
func (t *Tab) Push(params RouteParams) tea.Cmd {
	return func() tea.Msg { return RouteMsg{Params: params} }
}

// Back pops the route history, reporting whether anything was popped.
func (t *Tab) Back() bool {
	if len(t.routes) <= 1 {
		return false
	}
	t.routes = t.routes[:len(t.routes)-1]
	return true
}

// Location satisfies ContextProvider. The site editor path is ambient only
// while this tab occupies the body; other surfaces report their classic
// admin screens.
func (t *Tab) Location(m *core.Model) Location {
	if m == nil || m.ActiveTabID() != t.ID() {
		return Location{Path: "/wp-admin/index.php", Query: url.Values{}}
	}
	q := url.Values{}
	cur := t.Current()
	if cur.Path != "" && cur.Path != "/" {
		q.Set("p", cur.Path)
	}
	if cur.PostType != "" {
		q.Set("postType", cur.PostType)
	}
	if cur.PostID != "" {
		q.Set("postId", cur.PostID)
	}
	if cur.Canvas != "" {
		q.Set("canvas", cur.Canvas)
	}
	return Location{Path: "/wp-admin/site-editor.php", Query: q}
}

// OnPatternsPage satisfies PatternsTracker: true when the current or prior
// route is the patterns listing.
func (t *Tab) OnPatternsPage() bool {
	if t.Current().Path == "/patterns" {
		return true
	}
	if n := len(t.routes); n >= 2 && t.routes[n-2].Path == "/patterns" {
		return true
	}
	return false
}

func (t *Tab) listType() string {
	switch t.Current().Path {
	case "/page":
		return store.TypePage
	case "/wp_template":
		return store.TypeTemplate
	case "/patterns":
		return store.TypeTemplatePart
	default:
		return ""
	}
}

func (t *Tab) prefetch() tea.Cmd {
	typ := t.listType()
	if typ == "" {
		return nil
	}
	return t.store.EnsureCmd(store.KindPostType, typ, store.Query{})
}

func (t *Tab) InitTab(m *core.Model) tea.Cmd {
	return t.prefetch()
}

func (t *Tab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case RouteMsg:
		t.routes = append(t.routes, msg.Params)
		t.log.Debug("route pushed",
			zap.String("path", msg.Params.Path),
			zap.String("postType", msg.Params.PostType),
			zap.String("postId", msg.Params.PostID))
		return t.prefetch()
	case core.StoreChangedMsg:
		return t.prefetch()
	case tea.KeyMsg:
		switch msg.String() {
		case "backspace", "h":
			if t.Back() {
				return t.prefetch()
			}
		case "p":
			t.routes = append(t.routes, RouteParams{Path: "/patterns"})
			return t.prefetch()
		}
	}
	return nil
}

func (t *Tab) View(m *core.Model, width, height int) string {
	cur := t.Current()

	var body strings.Builder
	if cur.PostType != "" {
		body.WriteString(fmt.Sprintf("Editing %s %s", cur.PostType, cur.PostID))
		if cur.Canvas != "" {
			body.WriteString(" [canvas: " + cur.Canvas + "]")
		}
		if cur.DidAccessPatternsPage {
			body.WriteString("\nvia patterns")
		}
	} else if typ := t.listType(); typ != "" {
		records, resolved := t.store.GetEntityRecords(store.KindPostType, typ, store.Query{})
		if !resolved {
			body.WriteString("Loading...")
		} else if len(records) == 0 {
			body.WriteString("Nothing here yet.")
		} else {
			for _, rec := range records {
				label := strings.TrimSpace(rec.Title)
				if label == "" {
					label = rec.ID
				}
				body.WriteString(IconForType(rec.Type) + " " + label + "\n")
			}
		}
	} else {
		theme := t.store.CurrentTheme()
		body.WriteString("Theme: " + theme.Name)
		if theme.IsBlockBased {
			body.WriteString(" (block)")
		}
		body.WriteString("\n\nctrl+k to search, p for patterns, backspace to go back")
	}

	crumbs := make([]string, 0, len(t.routes))
	for _, r := range t.routes {
		crumbs = append(crumbs, routeLabel(r))
	}

	pane := widgets.Pane{
		Title:    routeLabel(cur),
		Height:   height - 2,
		Content:  body.String(),
		Selected: true,
	}
	return strings.Join(crumbs, " › ") + "\n" + pane.Render(width, height-1)
}

func routeLabel(r RouteParams) string {
	if r.PostType != "" {
		return r.PostType + ":" + r.PostID
	}
	switch r.Path {
	case "", "/":
		return "Home"
	case "/navigation":
		return "Navigation"
	case "/wp_global_styles":
		return "Styles"
	case "/page":
		return "Pages"
	case "/wp_template":
		return "Templates"
	case "/patterns":
		return "Patterns"
	default:
		return r.Path
	}
}
