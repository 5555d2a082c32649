// Package main provides the entry point for the resume screener CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "screener",
	Short: "Resume screening and ranking CLI",
	Long:  "Resume Screener extracts structured candidate information from resume documents and ranks candidates against a configurable job profile.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
