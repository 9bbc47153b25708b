package main

import (
	"os"

	"github.com/talkincode/restopos/cmd/restopos/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
