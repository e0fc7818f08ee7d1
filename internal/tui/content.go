package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pressnav/pressnav/core"
	"github.com/pressnav/pressnav/core/widgets"
	"github.com/pressnav/pressnav/internal/editor"
	"github.com/pressnav/pressnav/internal/store"
)

// recentQuery is the shared selection both content panes render from.
var recentQuery = store.Query{PerPage: 20}

// ContentTab lists recent posts and pages side by side.
type ContentTab struct {
	store *store.Store
	focus int
}

func NewContentTab(s *store.Store) *ContentTab {
	return &ContentTab{store: s}
}

func (t *ContentTab) ID() string    { return "content" }
func (t *ContentTab) Title() string { return "Content" }
func (t *ContentTab) Scope() string { return "tab:content" }

func (t *ContentTab) InitTab(m *core.Model) tea.Cmd {
	return tea.Batch(
		t.store.EnsureCmd(store.KindPostType, store.TypePost, recentQuery),
		t.store.EnsureCmd(store.KindPostType, store.TypePage, recentQuery),
	)
}

func (t *ContentTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.StoreChangedMsg:
		return t.InitTab(m)
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "right":
			t.focus = 1 - t.focus
		}
	}
	return nil
}

func (t *ContentTab) pane(title, typ string, selected bool, width, height int) string {
	records, resolved := t.store.GetEntityRecords(store.KindPostType, typ, recentQuery)
	var b strings.Builder
	if !resolved {
		b.WriteString("Loading...")
	} else if len(records) == 0 {
		b.WriteString("Nothing here yet.")
	} else {
		for _, rec := range records {
			label := strings.TrimSpace(rec.Title)
			if label == "" {
				label = rec.ID
			}
			b.WriteString(editor.IconForType(rec.Type) + " " + label + " (" + rec.Status + ")\n")
		}
	}
	p := widgets.Pane{Title: title, Height: height, Content: b.String(), Selected: selected}
	return p.Render(width, height)
}

func (t *ContentTab) View(m *core.Model, width, height int) string {
	half := width / 2
	left := t.pane("Posts", store.TypePost, t.focus == 0, half, height)
	right := t.pane("Pages", store.TypePage, t.focus == 1, width-half, height)

	leftLines := strings.Split(left, "\n")
	rightLines := strings.Split(right, "\n")
	n := max(len(leftLines), len(rightLines))
	rows := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var l, r string
		if i < len(leftLines) {
			l = leftLines[i]
		}
		if i < len(rightLines) {
			r = rightLines[i]
		}
		rows = append(rows, l+r)
	}
	return strings.Join(rows, "\n")
}
