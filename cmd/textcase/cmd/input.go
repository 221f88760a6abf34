package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	tcerror "github.com/msto63/textcase/foundation/core/error"
	"github.com/msto63/textcase/foundation/utils/stringx"
)

// Output encodings accepted by --output
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func validateOutput(output string) error {
	switch output {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return tcerror.Newf("unknown output format %q (text, json, yaml)", output).
			WithCode(tcerror.CodeInvalidInput).
			WithDetail("output", output)
	}
}

// readText returns the joined arguments, the content of file, or stdin.
// A single trailing line break is dropped.
func readText(cmd *cobra.Command, args []string, file string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := readSource(cmd, file)
	if err != nil {
		return "", err
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// readLines splits file or stdin into lines
func readLines(cmd *cobra.Command, file string) ([]string, error) {
	data, err := readSource(cmd, file)
	if err != nil {
		return nil, err
	}
	return stringx.SplitLines(string(data)), nil
}

func readSource(cmd *cobra.Command, file string) ([]byte, error) {
	if file != "" && file != "-" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, tcerror.WrapWithCode(err, tcerror.CodeIO, "failed to read input file").
				WithDetail("path", file)
		}
		return data, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, tcerror.WrapWithCode(err, tcerror.CodeIO, "failed to read stdin")
	}
	return data, nil
}

// writeResult encodes v as JSON or YAML, or calls text for plain output
func writeResult(w io.Writer, output string, v interface{}, text func() string) error {
	var err error
	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		err = enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(v); err == nil {
			err = enc.Close()
		}
	default:
		_, err = fmt.Fprintln(w, text())
	}

	if err != nil {
		return tcerror.WrapWithCode(err, tcerror.CodeIO, "failed to write output").
			WithDetail("output", output)
	}
	return nil
}
