package editor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pressnav/pressnav/core"
	"github.com/pressnav/pressnav/internal/i18n"
	"github.com/pressnav/pressnav/internal/store"
)

// searchStatuses lists the content statuses the palette searches across.
var searchStatuses = []string{"publish", "future", "draft", "pending", "private"}

// PatternsTracker reports whether the current or previous route was the
// patterns listing. Single-record targets carry that flag so the site editor
// back stack can return there on classic themes.
type PatternsTracker interface {
	OnPatternsPage() bool
}

// recordLoader turns entity records of one type into palette commands.
// Search-driven types (posts, pages) defer ranking to the store query;
// client-ranked types (templates, template parts) fetch everything and rank
// through RankRecords because their tables have no server-side search.
type recordLoader struct {
	name       string
	recordType string
	store      *store.Store
	tr         *i18n.Translator
	clientRank bool
	eligible   func() bool
	target     func(rec store.Record) Target
	dispatch   func(m *core.Model, t Target) tea.Cmd
}

func (l *recordLoader) Name() string { return l.name }

func (l *recordLoader) query(search string) store.Query {
	if l.clientRank {
		return store.Query{}
	}
	return store.Query{
		Search:   search,
		PerPage:  MaxResults,
		OrderBy:  "relevance",
		Statuses: searchStatuses,
	}
}

func (l *recordLoader) active(q core.LoaderQuery) bool {
	if l.eligible != nil && !l.eligible() {
		return false
	}
	if !l.clientRank && strings.TrimSpace(q.Search) == "" {
		return false
	}
	return true
}

func (l *recordLoader) Load(q core.LoaderQuery) core.LoaderResult {
	if !l.active(q) {
		return core.LoaderResult{}
	}
	sq := l.query(q.Search)
	records, resolved := l.store.GetEntityRecords(store.KindPostType, l.recordType, sq)
	if l.clientRank {
		records = RankRecords(records, q.Search)
	}
	commands := make([]core.PaletteCommand, 0, len(records))
	for _, rec := range records {
		commands = append(commands, l.synthesize(rec))
	}
	return core.LoaderResult{Commands: commands, IsLoading: !resolved}
}

func (l *recordLoader) Prefetch(q core.LoaderQuery) tea.Cmd {
	if !l.active(q) {
		return nil
	}
	return l.store.EnsureCmd(store.KindPostType, l.recordType, l.query(q.Search))
}

func (l *recordLoader) synthesize(rec store.Record) core.PaletteCommand {
	label := strings.TrimSpace(rec.Title)
	if label == "" {
		label = l.tr.NoTitle()
	}
	target := l.target(rec)
	return core.PaletteCommand{
		Name:        l.recordType + "-" + rec.ID,
		Label:       label,
		SearchLabel: label + " " + rec.ID,
		Icon:        IconForType(rec.Type),
		Callback: func(m *core.Model) tea.Cmd {
			return l.dispatch(m, target)
		},
	}
}

// NewPostLoader surfaces posts matching the search. Posts always open in the
// classic editor.
func NewPostLoader(s *store.Store, d *Dispatcher, tr *i18n.Translator) core.CommandLoader {
	return &recordLoader{
		name:       "Posts",
		recordType: store.TypePost,
		store:      s,
		tr:         tr,
		dispatch:   d.Dispatch,
		target: func(rec store.Record) Target {
			return Target{Classic: true, PostID: rec.ID}
		},
	}
}

// NewPageLoader surfaces pages matching the search. Pages open in the site
// editor canvas on block themes and in the classic editor otherwise.
func NewPageLoader(s *store.Store, d *Dispatcher, tr *i18n.Translator, patterns PatternsTracker) core.CommandLoader {
	return &recordLoader{
		name:       "Pages",
		recordType: store.TypePage,
		store:      s,
		tr:         tr,
		dispatch:   d.Dispatch,
		target: func(rec store.Record) Target {
			if !s.CurrentTheme().IsBlockBased {
				return Target{Classic: true, PostID: rec.ID}
			}
			return Target{Params: recordParams(s, patterns, store.TypePage, rec.ID)}
		},
	}
}

// NewTemplateLoader surfaces templates, ranked client-side. Offered only on
// block themes.
func NewTemplateLoader(s *store.Store, d *Dispatcher, tr *i18n.Translator, patterns PatternsTracker) core.CommandLoader {
	return &recordLoader{
		name:       "Templates",
		recordType: store.TypeTemplate,
		store:      s,
		tr:         tr,
		clientRank: true,
		dispatch:   d.Dispatch,
		eligible: func() bool {
			return s.CurrentTheme().IsBlockBased
		},
		target: func(rec store.Record) Target {
			return Target{Params: recordParams(s, patterns, store.TypeTemplate, rec.ID)}
		},
	}
}

// NewTemplatePartLoader surfaces template parts, ranked client-side. Offered
// on every theme; classic themes still own template parts through patterns.
func NewTemplatePartLoader(s *store.Store, d *Dispatcher, tr *i18n.Translator, patterns PatternsTracker) core.CommandLoader {
	return &recordLoader{
		name:       "Template Parts",
		recordType: store.TypeTemplatePart,
		store:      s,
		tr:         tr,
		clientRank: true,
		dispatch:   d.Dispatch,
		target: func(rec store.Record) Target {
			return Target{Params: recordParams(s, patterns, store.TypeTemplatePart, rec.ID)}
		},
	}
}

func recordParams(s *store.Store, patterns PatternsTracker, postType, postID string) RouteParams {
	p := RouteParams{PostType: postType, PostID: postID, Canvas: "edit"}
	if patterns != nil && patterns.OnPatternsPage() && !s.CurrentTheme().IsBlockBased {
		p.DidAccessPatternsPage = true
	}
	return p
}

type staticDestination struct {
	name     string
	labelKey string
	icon     string
	path     string
}

// staticLoader contributes the fixed site editor destinations. They are
// synthesized independent of the search (the palette host narrows them by
// SearchLabel) and offered only when the acting user can create templates on
// a block theme.
type staticLoader struct {
	store    *store.Store
	tr       *i18n.Translator
	dispatch func(m *core.Model, t Target) tea.Cmd
	entries  []staticDestination
}

// NewStaticLoader builds the fixed-destination loader: navigation, styles,
// the pages list, and the templates list.
func NewStaticLoader(s *store.Store, d *Dispatcher, tr *i18n.Translator) core.CommandLoader {
	return &staticLoader{
		store:    s,
		tr:       tr,
		dispatch: d.Dispatch,
		entries: []staticDestination{
			{name: "navigation", labelKey: "Navigation", icon: iconNavigation, path: "/navigation"},
			{name: "styles", labelKey: "Styles", icon: iconStyles, path: "/wp_global_styles"},
			{name: "pages", labelKey: "Pages", icon: iconList, path: "/page"},
			{name: "templates", labelKey: "Templates", icon: iconList, path: "/wp_template"},
		},
	}
}

func (l *staticLoader) Name() string { return "Site Editor" }

func (l *staticLoader) Prefetch(q core.LoaderQuery) tea.Cmd { return nil }

func (l *staticLoader) Load(q core.LoaderQuery) core.LoaderResult {
	if !l.store.CanUser("create", "templates") || !l.store.CurrentTheme().IsBlockBased {
		return core.LoaderResult{}
	}
	commands := make([]core.PaletteCommand, 0, len(l.entries))
	for _, e := range l.entries {
		label := l.tr.Sprintf(e.labelKey)
		path := e.path
		commands = append(commands, core.PaletteCommand{
			Name:        e.name,
			Label:       label,
			SearchLabel: label,
			Icon:        e.icon,
			Callback: func(m *core.Model) tea.Cmd {
				return l.dispatch(m, Target{Params: RouteParams{Path: path}})
			},
		})
	}
	return core.LoaderResult{Commands: commands}
}

// NewLoaderRegistry assembles every navigation loader in display order.
func NewLoaderRegistry(s *store.Store, d *Dispatcher, tr *i18n.Translator, patterns PatternsTracker, commands *core.CommandRegistry) *core.LoaderRegistry {
	return core.NewLoaderRegistry(
		core.NewRegistryLoader("Commands", commands),
		NewStaticLoader(s, d, tr),
		NewPostLoader(s, d, tr),
		NewPageLoader(s, d, tr, patterns),
		NewTemplateLoader(s, d, tr, patterns),
		NewTemplatePartLoader(s, d, tr, patterns),
	)
}
