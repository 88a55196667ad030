package main

import (
	"os"

	"github.com/npillmayer/morse/cmd/morse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
