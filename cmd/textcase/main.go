package main

import (
	"os"

	"github.com/msto63/textcase/cmd/textcase/cmd"
	tcerror "github.com/msto63/textcase/foundation/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(tcerror.GetCode(err).ExitCode())
	}
}
