package cmd

import (
	"github.com/spf13/cobra"
)

func newPluralCmd(a *app) *cobra.Command {
	return newInflectCmd("plural <word>", "Bildet den Plural eines englischen Wortes", func(word string) string {
		return a.converter.Pluralize(word)
	})
}

func newSingularCmd(a *app) *cobra.Command {
	return newInflectCmd("singular <word>", "Bildet den Singular eines englischen Wortes", func(word string) string {
		return a.converter.Singularize(word)
	})
}

func newInflectCmd(use, short string, inflect func(string) string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `.

Ausnahmen und unzählbare Wörter werden im Abschnitt [inflection]
der Konfiguration festgelegt.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			result := conversion{Format: cmd.Name(), Input: args[0], Output: inflect(args[0])}
			return writeResult(cmd.OutOrStdout(), output, result, func() string {
				return result.Output
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Ausgabeformat (text, json, yaml)")

	return cmd
}
