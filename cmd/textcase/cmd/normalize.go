package cmd

import (
	"github.com/spf13/cobra"
)

func newNormalizeCmd(a *app) *cobra.Command {
	var (
		file   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "normalize [text...]",
		Short: "Ersetzt diakritische Zeichen durch ASCII",
		Long: `Ersetzt diakritische Zeichen und Ligaturen durch ihre ASCII-Entsprechung.

Beispiel:
  textcase normalize "åñ åwéßømé téßt ßtrîñg"   # an awesome test string`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			text, err := readText(cmd, args, file)
			if err != nil {
				return err
			}

			result := conversion{Format: "normalized", Input: text, Output: a.converter.Normalize(text)}
			return writeResult(cmd.OutOrStdout(), output, result, func() string {
				return result.Output
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Eingabedatei statt stdin")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Ausgabeformat (text, json, yaml)")

	return cmd
}
