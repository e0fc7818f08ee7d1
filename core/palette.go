package core

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PaletteSelectionMsg is emitted when the user picks a command. The palette
// pops itself first; the root model then runs the callback, so navigation
// always happens after the palette is gone.
type PaletteSelectionMsg struct {
	Command PaletteCommand
}

// PaletteScreen is the command-palette host: a query input whose value is
// debounced before it reaches the loaders, and a Picker over the merged
// loader output. Loaders are re-invoked whenever their output may have
// changed; the Picker matches each command's SearchLabel against the settled
// query and owns cursor movement, so a loader that returns a superset (or
// unfiltered set) of matches is still narrowed host-side.
type PaletteScreen struct {
	scope    string
	loaders  *LoaderRegistry
	debounce *Debouncer
	input    textinput.Model
	picker   *Picker
	byID     map[string]PaletteCommand
	loading  map[string]bool
}

func NewPaletteScreen(scope string, loaders *LoaderRegistry, window time.Duration) *PaletteScreen {
	in := textinput.New()
	in.Placeholder = "Search for content and commands"
	in.Prompt = "> "
	in.Focus()
	s := &PaletteScreen{
		scope:    scope,
		loaders:  loaders,
		debounce: NewDebouncer(window),
		input:    in,
		picker:   NewPicker("Command Palette", nil),
	}
	s.refresh()
	return s
}

func (s *PaletteScreen) Title() string { return "Command Palette" }
func (s *PaletteScreen) Scope() string { return "screen:palette" }

// Query returns the debounced query currently feeding the loaders.
func (s *PaletteScreen) Query() string { return s.debounce.Value() }

func (s *PaletteScreen) loaderQuery() LoaderQuery {
	return LoaderQuery{Search: s.debounce.Value(), Scope: s.scope}
}

// refresh re-invokes every loader with the settled query and rebuilds the
// picker. Item IDs are namespaced by loader so same-named commands from
// different sources cannot collide.
func (s *PaletteScreen) refresh() {
	q := s.loaderQuery()
	var items []PickerItem
	byID := make(map[string]PaletteCommand)
	loading := make(map[string]bool)

	for _, l := range s.loaders.Loaders() {
		res := l.Load(q)
		if res.IsLoading {
			loading[l.Name()] = true
		}
		for _, c := range res.Commands {
			id := l.Name() + "/" + c.Name
			byID[id] = c
			items = append(items, PickerItem{
				ID:      id,
				Label:   c.Label,
				Section: l.Name(),
				Meta:    c.Icon,
				Search:  c.SearchLabel,
			})
		}
	}

	s.byID = byID
	s.loading = loading
	s.picker.SetItems(items)
	s.picker.SetQuery(q.Search)
}

func (s *PaletteScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case DebouncedQueryMsg:
		if !s.debounce.Settle(msg) {
			return s, nil, false
		}
		s.refresh()
		return s, s.loaders.Prefetch(s.loaderQuery()), false

	case DataLoadedMsg:
		s.refresh()
		return s, nil, false

	case StoreChangedMsg:
		// The watcher dropped the cache under us; without a refetch every
		// loader stays loading until the next keystroke settles.
		s.refresh()
		return s, s.loaders.Prefetch(s.loaderQuery()), false

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			s.debounce.Cancel()
			return s, nil, true
		case "up", "ctrl+p", "down", "ctrl+n":
			s.picker.HandleKey(msg.String())
			return s, nil, false
		case "enter":
			item, ok := s.picker.CurrentItem()
			if !ok {
				return s, nil, false
			}
			selected, ok := s.byID[item.ID]
			if !ok {
				return s, nil, false
			}
			s.debounce.Cancel()
			return s, func() tea.Msg { return PaletteSelectionMsg{Command: selected} }, true
		}

		before := s.input.Value()
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		if after := s.input.Value(); after != before {
			return s, tea.Batch(cmd, s.debounce.Change(after)), false
		}
		return s, cmd, false
	}
	return s, nil, false
}

func (s *PaletteScreen) View(width, height int) string {
	lines := make([]string, 0, 16)
	lines = append(lines, s.input.View(), "")

	items := s.picker.Items()
	if len(items) == 0 && len(s.loading) == 0 {
		if strings.TrimSpace(s.debounce.Value()) == "" {
			lines = append(lines, paletteHintStyle.Render("  Type to search"))
		} else {
			lines = append(lines, paletteHintStyle.Render("  No results"))
		}
	}

	cursor := s.picker.Cursor()
	section := ""
	for idx, item := range items {
		if item.Section != section {
			if section != "" && s.loading[section] {
				lines = append(lines, paletteHintStyle.Render("  Loading..."))
			}
			section = item.Section
			lines = append(lines, paletteSectionStyle.Render(section))
		}
		prefix := "  "
		label := item.Label
		if item.Meta != "" {
			label = item.Meta + " " + label
		}
		if idx == cursor {
			prefix = "> "
			label = paletteActiveStyle.Render(label)
		}
		lines = append(lines, prefix+label)
	}
	if section != "" && s.loading[section] {
		lines = append(lines, paletteHintStyle.Render("  Loading..."))
	}
	// Sections still resolving that contributed no rows yet.
	for _, l := range s.loaders.Loaders() {
		if s.loading[l.Name()] && !sectionHasItems(items, l.Name()) {
			lines = append(lines, paletteSectionStyle.Render(l.Name()))
			lines = append(lines, paletteHintStyle.Render("  Loading..."))
		}
	}

	lines = append(lines, "", paletteHintStyle.Render("Enter selects. Esc closes."))
	view := strings.Join(lines, "\n")
	return ClipHeight(TrimToWidth(view, max(20, width)), max(6, height))
}

func sectionHasItems(items []PickerItem, section string) bool {
	for _, item := range items {
		if item.Section == section {
			return true
		}
	}
	return false
}
