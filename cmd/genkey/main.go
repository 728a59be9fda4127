package main

import (
	"os"

	"genkey/cmd/genkey/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
