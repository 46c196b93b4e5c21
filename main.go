package main

import (
	"os"

	"github.com/AKASH-tech234/paceline/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
