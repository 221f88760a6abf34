package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	tcerror "github.com/msto63/textcase/foundation/core/error"
)

// maxRandomCount bounds --count
const maxRandomCount = 100000

func newRandomCmd(a *app) *cobra.Command {
	var (
		length int
		count  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Erzeugt zufällige alphanumerische Zeichenketten",
		Long: `Erzeugt zufällige Zeichenketten aus [0-9a-zA-Z].

Ohne --length wird random.default_length aus der Konfiguration verwendet.
Die Werte sind nicht kryptographisch sicher.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			if length < 0 {
				return tcerror.Newf("length must not be negative: %d", length).
					WithCode(tcerror.CodeInvalidLength).
					WithDetail("length", length)
			}
			if count < 1 || count > maxRandomCount {
				return tcerror.Newf("count must be between 1 and %d: %d", maxRandomCount, count).
					WithCode(tcerror.CodeInvalidInput).
					WithDetail("count", count)
			}

			values := make([]string, count)
			for i := range values {
				values[i] = a.converter.Random(length)
			}

			return writeResult(cmd.OutOrStdout(), output, values, func() string {
				return strings.Join(values, "\n")
			})
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 0, "Länge der Zeichenkette (default: random.default_length)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Anzahl der Zeichenketten")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Ausgabeformat (text, json, yaml)")

	return cmd
}
