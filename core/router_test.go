package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type stubScreen struct{ title string }

func (s *stubScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) { return s, nil, false }
func (s *stubScreen) View(width, height int) string              { return s.title }
func (s *stubScreen) Scope() string                              { return "screen:stub" }
func (s *stubScreen) Title() string                              { return s.title }

func TestScreenStackPushPop(t *testing.T) {
	var st ScreenStack
	if st.Top() != nil {
		t.Fatal("empty stack should have no top")
	}

	a := &stubScreen{title: "a"}
	b := &stubScreen{title: "b"}
	st.Push(a)
	st.Push(b)

	if st.Len() != 2 {
		t.Fatalf("len = %d, want 2", st.Len())
	}
	if st.Top() != b {
		t.Fatal("top should be the last pushed screen")
	}

	st.Pop()
	if st.Top() != a {
		t.Fatal("pop should reveal the previous screen")
	}
	st.Pop()
	st.Pop() // popping empty is a no-op
	if st.Len() != 0 {
		t.Fatalf("len = %d after draining, want 0", st.Len())
	}
}
