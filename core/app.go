package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

type Tab interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	View(m *Model, width, height int) string
}

type TabInitializer interface {
	InitTab(m *Model) tea.Cmd
}

type Model struct {
	width       int
	height      int
	tabs        []Tab
	activeTab   int
	screens     ScreenStack
	keys        *KeyRegistry
	commands    *CommandRegistry
	status      string
	statusErr   bool
	quitting    bool
	OpenPalette func(m *Model, scope string) Screen
}

func NewModel(tabs []Tab, keys *KeyRegistry, commands *CommandRegistry) Model {
	return Model{
		tabs:      tabs,
		keys:      keys,
		commands:  commands,
		status:    "Ready",
		activeTab: 0,
		width:     100,
		height:    32,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, t := range m.tabs {
		if initTab, ok := t.(TabInitializer); ok {
			if cmd := initTab.InitTab(&m); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if len(m.tabs) == 0 {
		return "app"
	}
	return m.tabs[m.activeTab].Scope()
}

// ActiveTabID identifies the surface currently occupying the body. The
// navigation context provider reads it per invocation to decide whether the
// site editor shell is active.
func (m Model) ActiveTabID() string {
	if len(m.tabs) == 0 {
		return ""
	}
	return m.tabs[m.activeTab].ID()
}

func (m *Model) SwitchTab(index int) {
	if index < 0 || index >= len(m.tabs) {
		return
	}
	m.activeTab = index
}

// SwitchTabByID activates the tab with the given ID, reporting whether it
// exists.
func (m *Model) SwitchTabByID(id string) bool {
	for i, t := range m.tabs {
		if t.ID() == id {
			m.activeTab = i
			return true
		}
	}
	return false
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}
