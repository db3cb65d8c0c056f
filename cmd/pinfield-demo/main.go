package main

import (
	"os"

	"github.com/iw2rmb/pinfield/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
