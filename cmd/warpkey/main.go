package main

import (
	"os"

	"github.com/theyusa/Rebecca-sub000/cmd/warpkey/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
