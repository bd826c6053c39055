package main

import (
	"os"

	"github.com/msto63/plus/cmd/plus/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
