package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

// DataLoadedMsg signals that an asynchronous store fetch finished. The store
// has already applied the records by the time this arrives; the message only
// exists to trigger a re-render.
type DataLoadedMsg struct {
	Key string
	Err error
}

// StoreChangedMsg signals that the backing database changed outside the
// process (sent by the file watcher).
type StoreChangedMsg struct{}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

type TabSwitchMsg struct {
	Index int
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
