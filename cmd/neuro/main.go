package main

import (
	"os"

	"github.com/wvwvw5/neuro-store/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
