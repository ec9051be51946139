package main

import (
	"os"

	"github.com/hearth-sh/hearth/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
