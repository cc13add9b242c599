package main

import (
	"os"

	"isincodec/cmd/isincodec/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
