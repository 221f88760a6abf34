package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/textcase/foundation/utils/stringx"
	"github.com/msto63/textcase/pkg/core/cache"
	"github.com/msto63/textcase/pkg/textcase"
)

// Converter is the part of *textcase.Converter the preview needs
type Converter interface {
	ConvertAll(text string) map[textcase.Format]string
	Random(length int) string
	Stats() map[string]cache.Stats
}

// Model is the live preview model: one input line, every format below it
type Model struct {
	// State
	width    int
	height   int
	ready    bool
	selected int
	showHelp bool
	chosen   bool

	// Components
	input textinput.Model

	converter Converter
	formats   []textcase.Format
	outputs   map[textcase.Format]string
}

// NewModel creates a new preview model. initial pre-fills the input and
// selected marks the highlighted format.
func NewModel(converter Converter, initial string, selected textcase.Format) Model {
	ti := textinput.New()
	ti.Placeholder = "Text eingeben..."
	ti.Prompt = "› "
	ti.CharLimit = 4000
	ti.Width = 60
	ti.SetValue(initial)
	ti.Focus()

	m := Model{
		input:     ti,
		converter: converter,
		formats:   textcase.Formats(),
	}
	for i, f := range m.formats {
		if f == selected {
			m.selected = i
		}
	}
	m.refresh()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			m.chosen = true
			return m, tea.Quit

		case "up", "shift+tab":
			m.selected = (m.selected - 1 + len(m.formats)) % len(m.formats)
			return m, nil

		case "down", "tab":
			m.selected = (m.selected + 1) % len(m.formats)
			return m, nil

		case "ctrl+l":
			// Clear input
			m.input.Reset()
			m.refresh()
			return m, nil

		case "ctrl+r":
			m.input.SetValue(m.converter.Random(0))
			m.input.CursorEnd()
			m.refresh()
			return m, nil

		case "?":
			if m.input.Value() == "" {
				m.showHelp = !m.showHelp
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.input.Width = max(10, msg.Width-8)
		return m, nil
	}

	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	var s strings.Builder

	// Header
	s.WriteString(RenderTitle("textcase · Live-Vorschau"))
	s.WriteString("\n")

	s.WriteString(FocusedInputStyle.Render(m.input.View()))
	s.WriteString("\n")

	s.WriteString(BoxStyle.Render(m.renderFormats()))
	s.WriteString("\n")

	// Footer
	s.WriteString(m.renderStatus())
	if m.showHelp {
		s.WriteString("\n")
		s.WriteString(RenderHelp("↑/↓ Format wählen • Enter übernehmen • Ctrl+R Zufallstext • Ctrl+L leeren • Esc beenden"))
	} else {
		s.WriteString("\n")
		s.WriteString(RenderHelp("? Hilfe • Enter übernehmen • Esc beenden"))
	}

	return s.String()
}

func (m Model) renderFormats() string {
	valueWidth := 60
	if m.ready && m.width > 24 {
		valueWidth = m.width - 22
	}

	rows := make([]string, 0, len(m.formats))
	for i, f := range m.formats {
		nameStyle, valueStyle := FormatNameStyle, ValueStyle
		marker := "  "
		if i == m.selected {
			nameStyle, valueStyle = SelectedFormatNameStyle, SelectedValueStyle
			marker = "▸ "
		}

		value := m.outputs[f]
		rendered := valueStyle.Render(stringx.Truncate(value, valueWidth, "…"))
		if value == "" {
			rendered = EmptyValueStyle.Render("(leer)")
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, marker, nameStyle.Render(f.String()), rendered))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderStatus() string {
	var hits, misses int64
	var entries int
	for _, s := range m.converter.Stats() {
		hits += s.Hits
		misses += s.Misses
		entries += s.Size
	}
	return StatusBarStyle.Render(fmt.Sprintf("Cache: %d Einträge · %d Treffer · %d Fehlzugriffe", entries, hits, misses))
}

func (m *Model) refresh() {
	m.outputs = m.converter.ConvertAll(m.input.Value())
}

// Input returns the current input text
func (m Model) Input() string {
	return m.input.Value()
}

// Selected returns the highlighted format
func (m Model) Selected() textcase.Format {
	return m.formats[m.selected]
}

// Result returns the highlighted conversion and whether the user confirmed
// it with enter
func (m Model) Result() (string, bool) {
	return m.outputs[m.Selected()], m.chosen
}
