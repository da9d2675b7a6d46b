package main

import (
	"os"

	"caesar_cipher/internal/cli"
	"caesar_cipher/internal/utils/log"
)

func main() {
	defer log.Sync()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
