package main

import (
	"os"

	"github.com/dmitrymomot/paramkit/cmd/paramcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
