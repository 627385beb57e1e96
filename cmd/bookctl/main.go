package main

import (
	"os"

	"github.com/openlessons/bookd/cmd/bookctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
