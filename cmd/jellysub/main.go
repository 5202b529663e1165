package main

import (
	"os"

	"github.com/tgrenier/jellysub/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
