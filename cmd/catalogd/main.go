// Package main provides the entry point for the process catalog lead server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "catalogd",
	Short: "Process catalog lead-capture server",
	Long:  "catalogd serves the lead-capture API behind the automation process catalog: contact requests with process selections and completed onboarding questionnaires.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
