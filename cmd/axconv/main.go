package main

import (
	"os"

	"github.com/axia-sw/axstr/cmd/axconv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
