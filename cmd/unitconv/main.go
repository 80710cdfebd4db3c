package main

import (
	"os"

	"github.com/goliatone/go-unitconv/cmd/unitconv/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
