package main

import (
	"os"

	genremix "github.com/arthur-debert/gen-remix/cmd/gen-remix"
)

func main() {
	rootCmd := genremix.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		genremix.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
