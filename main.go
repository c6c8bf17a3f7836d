package main

import (
	"os"

	"github.com/digital-allies/allies/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
