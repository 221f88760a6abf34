package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textcase/pkg/core/version"
)

func newVersionCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Zeigt die Version an",
		Args:  cobra.NoArgs,
		// Version output needs no configuration
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			info := version.Get()
			return writeResult(cmd.OutOrStdout(), output, info, func() string {
				return fmt.Sprintf("textcase v%s\n  Bibliothek: %s\n  CLI:        %s\n  Vorschau:   %s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s",
					info.Release, info.Library, info.CLI, info.Preview, info.Commit, info.BuildDate, info.GoVersion, info.Platform)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Ausgabeformat (text, json, yaml)")

	return cmd
}
