package main

import (
	"os"

	"github.com/jvilar-bio/blastq/cmd/blastq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
