package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pressnav/pressnav/core"
	"github.com/pressnav/pressnav/core/widgets"
	"github.com/pressnav/pressnav/internal/config"
)

// SettingsTab shows the effective configuration and lets non-sensitive
// preferences be toggled and saved in place.
type SettingsTab struct {
	cfg config.Config
}

func NewSettingsTab(cfg config.Config) *SettingsTab {
	return &SettingsTab{cfg: cfg}
}

func (t *SettingsTab) ID() string    { return "settings" }
func (t *SettingsTab) Title() string { return "Settings" }
func (t *SettingsTab) Scope() string { return "tab:settings" }

func (t *SettingsTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "d":
		t.cfg.UI.DebugLog = !t.cfg.UI.DebugLog
		cfg := t.cfg
		return func() tea.Msg {
			if err := config.Save(cfg); err != nil {
				return core.StatusMsg{Text: err.Error(), IsErr: true}
			}
			return core.StatusMsg{Text: "Saved. Debug log takes effect on restart."}
		}
	}
	return nil
}

func (t *SettingsTab) View(m *core.Model, width, height int) string {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	rows := []string{
		"Site URL     " + t.cfg.Site.BaseURL,
		"Database     " + t.cfg.Database.Path,
		"Language     " + t.cfg.UI.Language,
		"Debug log    " + onOff(t.cfg.UI.DebugLog) + "  (d toggles)",
		"Log path     " + t.cfg.UI.LogPath,
	}
	p := widgets.Pane{
		Title:    "Settings",
		Height:   height,
		Content:  strings.Join(rows, "\n"),
		Selected: true,
	}
	return p.Render(width, height)
}
