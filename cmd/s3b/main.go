package main

import (
	"os"

	"github.com/fishy/s3bucket/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
