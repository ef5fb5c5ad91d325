package main

import (
	"os"

	"github.com/statuswatch/statuswatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
