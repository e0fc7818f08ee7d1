package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestCommandSearchFiltersByQueryAndScope(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "refresh", Name: "Refresh data"},
		{ID: "save", Name: "Save view", Scopes: []string{"tab:content"}},
	})

	results := reg.Search("refresh", "tab:editor", nil)
	if len(results) != 1 || results[0].CommandID != "refresh" {
		t.Fatalf("results = %+v, want only refresh", results)
	}

	if got := reg.Search("save", "tab:editor", nil); len(got) != 0 {
		t.Fatalf("out-of-scope command surfaced: %+v", got)
	}
	if got := reg.Search("save", "tab:content", nil); len(got) != 1 {
		t.Fatalf("in-scope command missing: %+v", got)
	}
}

func TestCommandSearchSortsEnabledFirst(t *testing.T) {
	m := NewModel(nil, NewKeyRegistry(nil), nil)
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "Alpha", Disabled: func(m *Model) (bool, string) { return true, "later" }},
		{ID: "b", Name: "Beta"},
	})

	results := reg.Search("", "app", &m)
	if results[0].CommandID != "b" {
		t.Fatalf("enabled command should sort first, got %q", results[0].CommandID)
	}
	if !results[1].Disabled || results[1].Reason != "later" {
		t.Fatalf("disabled metadata lost: %+v", results[1])
	}
}

func TestExecuteUnknownCommandReportsStatus(t *testing.T) {
	reg := NewCommandRegistry(nil)
	cmd := reg.Execute("missing", nil)
	if cmd == nil {
		t.Fatal("expected a status command")
	}
	msg, ok := cmd().(StatusMsg)
	if !ok || msg.Text == "" {
		t.Fatalf("expected status message, got %#v", cmd())
	}
}

func TestExecuteDisabledCommandDoesNotRun(t *testing.T) {
	ran := false
	reg := NewCommandRegistry([]Command{{
		ID:       "x",
		Name:     "X",
		Disabled: func(m *Model) (bool, string) { return true, "not now" },
		Execute:  func(m *Model) tea.Cmd { ran = true; return nil },
	}})

	cmd := reg.Execute("x", nil)
	if ran {
		t.Fatal("disabled command executed")
	}
	if msg := cmd().(StatusMsg); msg.Text != "not now" {
		t.Fatalf("status = %q, want the disable reason", msg.Text)
	}
}
