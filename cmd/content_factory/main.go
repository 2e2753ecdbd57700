// Package main provides the entry point for the content factory CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "content_factory",
	Short: "Brand-governed content compilation pipeline",
	Long:  "Content Factory compiles declarative brand profiles and content requests into validated, channel-ready content artifacts and deliveries.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
