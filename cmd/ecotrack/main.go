package main

import (
	"os"

	"github.com/ecotrack-dev/ecotrack/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
