package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/textcase/internal/tui"
	"github.com/msto63/textcase/pkg/textcase"
)

func newTUICmd(a *app) *cobra.Command {
	var (
		format    string
		altScreen bool
	)

	cmd := &cobra.Command{
		Use:   "tui [text...]",
		Short: "Startet die interaktive Vorschau",
		Long: `Startet eine interaktive Vorschau aller Formate.

Die Vorschau wird auf stderr gezeichnet. Mit Enter wird das ausgewählte
Ergebnis auf stdout ausgegeben, z.B. name=$(textcase tui).

Navigation:
  Tab/↓      - Nächstes Format
  Shift+Tab/↑ - Vorheriges Format
  Enter      - Ergebnis übernehmen
  Ctrl+R     - Zufälligen Text einfügen
  Ctrl+L     - Eingabe leeren
  Esc        - Beenden`,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected := a.cfg.DefaultFormat()
			if format != "" {
				parsed, err := textcase.ParseFormat(format)
				if err != nil {
					return err
				}
				selected = parsed
			}

			result, ok, err := tui.Run(a.converter, tui.RunConfig{
				Initial:   strings.Join(args, " "),
				Format:    selected,
				AltScreen: altScreen,
				Input:     cmd.InOrStdin(),
				Output:    cmd.ErrOrStderr(),
			})
			if err != nil {
				a.logger.LogError(err)
				return err
			}

			if ok {
				fmt.Fprintln(cmd.OutOrStdout(), result)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Vorausgewähltes Format (default: convert.default_format)")
	cmd.Flags().BoolVar(&altScreen, "alt-screen", true, "Alternativen Bildschirm verwenden")

	return cmd
}
