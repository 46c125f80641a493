package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/parimg/parimg/pkg/cli"
)

func main() {
	// Optional .env next to the working dir supplies defaults; a missing
	// file is fine.
	_ = godotenv.Load()

	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
