package main

import (
	"os"

	"github.com/bnema/remote-assist-console/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
