package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	tcerror "github.com/msto63/textcase/foundation/core/error"
	"github.com/msto63/textcase/pkg/textcase"
)

// RunConfig holds options for the preview program
type RunConfig struct {
	Initial   string
	Format    textcase.Format
	AltScreen bool
	Input     io.Reader
	Output    io.Writer
}

// Run starts the preview and blocks until the user leaves it. It returns
// the highlighted conversion and whether the user confirmed it.
func Run(converter Converter, cfg RunConfig) (string, bool, error) {
	opts := []tea.ProgramOption{}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.Input != nil {
		opts = append(opts, tea.WithInput(cfg.Input))
	}
	if cfg.Output != nil {
		opts = append(opts, tea.WithOutput(cfg.Output))
	}

	p := tea.NewProgram(NewModel(converter, cfg.Initial, cfg.Format), opts...)
	final, err := p.Run()
	if err != nil {
		return "", false, tcerror.Wrap(err, "preview failed").WithCode(tcerror.CodeIO).WithOperation("tui.Run")
	}

	m, ok := final.(Model)
	if !ok {
		return "", false, tcerror.Newf("unexpected model type %T", final).WithCode(tcerror.CodeInternal)
	}
	out, chosen := m.Result()
	return out, chosen, nil
}
