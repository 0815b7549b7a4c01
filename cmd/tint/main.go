package main

import (
	"os"

	"github.com/mossrock/tint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
