package main

import (
	"os"

	"github.com/tzehon/somm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
