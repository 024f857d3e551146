package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/mikiasgoitom/Inflo/internal/cli"
)

func main() {
	// A .env file is optional for the CLI.
	_ = godotenv.Load()

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
