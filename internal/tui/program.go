package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/pressnav/pressnav/core"
	"github.com/pressnav/pressnav/internal/config"
	"github.com/pressnav/pressnav/internal/editor"
	"github.com/pressnav/pressnav/internal/i18n"
	"github.com/pressnav/pressnav/internal/store"
)

// NewProgram assembles the full application: tabs, key bindings, the command
// registry, and the palette loaders wired to the store and dispatcher.
func NewProgram(cfg config.Config, s *store.Store, log *zap.Logger, redir editor.Redirector) *tea.Program {
	tr := i18n.New(cfg.UI.Language)
	editorTab := editor.NewTab(s, log)
	dispatcher := editor.NewDispatcher(cfg.Site.BaseURL, editorTab, editorTab, redir, log)
	commands := core.NewCommandRegistry(appCommands(s, log))
	loaders := editor.NewLoaderRegistry(s, dispatcher, tr, editorTab, commands)

	tabs := []core.Tab{
		editorTab,
		NewContentTab(s),
		NewSettingsTab(cfg),
	}
	m := core.NewModel(tabs, core.NewKeyRegistry(core.DefaultKeyBindings()), commands)
	m.OpenPalette = func(_ *core.Model, scope string) core.Screen {
		return core.NewPaletteScreen(scope, loaders, core.DefaultDebounceWindow)
	}
	return tea.NewProgram(m, tea.WithAltScreen())
}

func appCommands(s *store.Store, log *zap.Logger) []core.Command {
	if log == nil {
		log = zap.NewNop()
	}
	return []core.Command{
		{
			ID:          "refresh",
			Name:        "Refresh data",
			Description: "Drop cached records and refetch",
			Execute: func(m *core.Model) tea.Cmd {
				log.Debug("manual refresh")
				s.Invalidate()
				return tea.Batch(
					func() tea.Msg { return core.StoreChangedMsg{} },
					core.StatusCmd("Refreshed"),
				)
			},
		},
		{
			ID:          "open-settings",
			Name:        "Open settings",
			Description: "Switch to the settings tab",
			Execute: func(m *core.Model) tea.Cmd {
				m.SwitchTabByID("settings")
				return nil
			},
		},
		{
			ID:          "quit",
			Name:        "Quit",
			Description: "Exit the console",
			Execute: func(m *core.Model) tea.Cmd {
				return tea.Quit
			},
		},
	}
}
