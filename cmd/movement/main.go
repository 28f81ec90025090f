package main

import (
	"os"

	"github.com/noodlebox/movement/cmd/movement/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
