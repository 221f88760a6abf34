package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/textcase/pkg/textcase"
)

func typeText(m Model, text string) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(Model)
}

func press(m Model, key tea.KeyType) (Model, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: key})
	return updated.(Model), cmd
}

func TestModel_LivePreview(t *testing.T) {
	m := NewModel(textcase.New(textcase.DefaultConfig()), "", textcase.FormatSlug)
	m = typeText(m, "Another Test")

	if m.Input() != "Another Test" {
		t.Fatalf("Input() = %q, want Another Test", m.Input())
	}
	if got, _ := m.Result(); got != "another-test" {
		t.Errorf("Result() = %q, want another-test", got)
	}

	view := m.View()
	for _, want := range []string{"another_test", "AnotherTest", `another\test`} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModel_SelectFormat(t *testing.T) {
	m := NewModel(textcase.New(textcase.DefaultConfig()), "Another Test", textcase.FormatTitle)
	if m.Selected() != textcase.FormatTitle {
		t.Fatalf("Selected() = %v, want title", m.Selected())
	}

	m, _ = press(m, tea.KeyDown)
	if m.Selected() != textcase.FormatSlug {
		t.Errorf("after down Selected() = %v, want slug", m.Selected())
	}

	m, _ = press(m, tea.KeyUp)
	m, _ = press(m, tea.KeyUp)
	if m.Selected() != textcase.FormatNamespaced {
		t.Errorf("up should wrap around, got %v", m.Selected())
	}
}

func TestModel_EnterConfirms(t *testing.T) {
	m := NewModel(textcase.New(textcase.DefaultConfig()), "this_is_a_test", textcase.FormatCamelCaps)

	m, cmd := press(m, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("enter should quit the program")
	}
	out, chosen := m.Result()
	if !chosen || out != "ThisIsATest" {
		t.Errorf("Result() = %q, %v; want ThisIsATest, true", out, chosen)
	}

	m2 := NewModel(textcase.New(textcase.DefaultConfig()), "x", textcase.FormatSlug)
	m2, _ = press(m2, tea.KeyEsc)
	if _, chosen := m2.Result(); chosen {
		t.Error("esc should not confirm")
	}
}

func TestModel_ClearAndRandom(t *testing.T) {
	m := NewModel(textcase.New(textcase.Config{RandomLength: 8}), "something", textcase.FormatSlug)

	m, _ = press(m, tea.KeyCtrlL)
	if m.Input() != "" {
		t.Errorf("ctrl+l left %q", m.Input())
	}
	if !strings.Contains(m.View(), "(leer)") {
		t.Error("empty outputs should render as (leer)")
	}

	m, _ = press(m, tea.KeyCtrlR)
	if len(m.Input()) != 8 {
		t.Errorf("ctrl+r input = %q, want 8 random characters", m.Input())
	}
}

func TestModel_WindowSize(t *testing.T) {
	m := NewModel(textcase.New(textcase.DefaultConfig()), strings.Repeat("word ", 50), textcase.FormatTitle)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	m = updated.(Model)

	if !strings.Contains(m.View(), "…") {
		t.Error("long values should be truncated to the window width")
	}
}
