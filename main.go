package main

import (
	"os"

	"github.com/storagemon/powerstore-prtg/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
