package main

import (
	"os"

	"github.com/abiram/tonedrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
