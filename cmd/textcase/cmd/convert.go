package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	tclog "github.com/msto63/textcase/foundation/core/log"
	"github.com/msto63/textcase/internal/tui"
	"github.com/msto63/textcase/pkg/textcase"
)

// conversion is one encoded convert result
type conversion struct {
	Format string `json:"format" yaml:"format"`
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
}

type convertOptions struct {
	all     bool
	lines   bool
	file    string
	output  string
	workers int
}

func newConvertCmd(a *app) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [format] [text...]",
		Short: "Wandelt Text in ein Format um",
		Long: `Wandelt Text in eines der Formate title, slug, snake, camelcaps,
camelcase oder namespaced um.

Der Text kommt aus den Argumenten, aus --file oder von stdin. Ohne Format
wird convert.default_format aus der Konfiguration verwendet.

Beispiele:
  textcase convert slug "Héllo Wörld"
  textcase convert --all testingCamelCase
  cat namen.txt | textcase convert snake --lines --workers 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.all, "all", false, "Alle Formate ausgeben")
	cmd.Flags().BoolVar(&opts.lines, "lines", false, "Eingabe zeilenweise umwandeln")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Eingabedatei statt stdin")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputText, "Ausgabeformat (text, json, yaml)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "Anzahl paralleler Worker für --lines (default: convert.workers)")

	return cmd
}

func (a *app) runConvert(cmd *cobra.Command, args []string, opts *convertOptions) error {
	if err := validateOutput(opts.output); err != nil {
		return err
	}

	if opts.all {
		text, err := readText(cmd, args, opts.file)
		if err != nil {
			return err
		}
		return a.convertAll(cmd, text, opts.output)
	}

	format := a.cfg.DefaultFormat()
	if len(args) > 0 {
		parsed, err := textcase.ParseFormat(args[0])
		if err != nil {
			return err
		}
		format = parsed
		args = args[1:]
	}

	if opts.lines {
		return a.convertLines(cmd, format, opts)
	}

	text, err := readText(cmd, args, opts.file)
	if err != nil {
		return err
	}

	result := conversion{Format: format.String(), Input: text, Output: a.converter.Convert(format, text)}
	return writeResult(cmd.OutOrStdout(), opts.output, result, func() string {
		return result.Output
	})
}

func (a *app) convertAll(cmd *cobra.Command, text, output string) error {
	rendered := a.converter.ConvertAll(text)

	results := make([]conversion, 0, len(rendered))
	for _, f := range textcase.Formats() {
		results = append(results, conversion{Format: f.String(), Input: text, Output: rendered[f]})
	}

	return writeResult(cmd.OutOrStdout(), output, results, func() string {
		return renderTable(results)
	})
}

func (a *app) convertLines(cmd *cobra.Command, format textcase.Format, opts *convertOptions) error {
	lines, err := readLines(cmd, opts.file)
	if err != nil {
		return err
	}

	workers := opts.workers
	if workers <= 0 {
		workers = a.cfg.Convert.Workers
	}

	logger := a.logger.WithCorrelationID(uuid.New().String())
	timer := logger.StartTimer("convert lines").
		WithField("format", format.String()).
		WithField("lines", len(lines)).
		WithField("workers", workers)

	converted, err := a.converter.ConvertLines(cmd.Context(), format, lines, workers)
	if err != nil {
		timer.StopWithError(err)
		return err
	}
	timer.Stop()

	if logger.IsLevelEnabled(tclog.LevelDebug) {
		for name, stats := range a.converter.Stats() {
			if stats.Size > 0 {
				logger.Debug("cache stats", tclog.Fields{
					"namespace": name,
					"size":      stats.Size,
					"hit_rate":  stats.HitRate,
				})
			}
		}
	}

	if len(lines) == 0 {
		return nil
	}

	results := make([]conversion, len(lines))
	for i := range lines {
		results[i] = conversion{Format: format.String(), Input: lines[i], Output: converted[i]}
	}
	return writeResult(cmd.OutOrStdout(), opts.output, results, func() string {
		return strings.Join(converted, "\n")
	})
}

func renderTable(results []conversion) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.Format, r.Output})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tui.TableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tui.SubtitleStyle.Padding(0, 1)
			case col == 0:
				return tui.FormatNameStyle.Padding(0, 1)
			default:
				return tui.ValueStyle.Padding(0, 1)
			}
		}).
		Headers("Format", "Ergebnis").
		Rows(rows...).
		String()
}
