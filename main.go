package main

import (
	"os"

	"github.com/anikeev/invtree/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
