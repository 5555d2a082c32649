package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/spf13/cobra"
)

var sampleJobCmd = &cobra.Command{
	Use:   "sample-job",
	Short: "Print a sample job profile",
	Long:  "Print a ready-to-edit sample job profile JSON that the score command accepts via --job.",
	RunE:  runSampleJob,
}

var sampleJobOutputFile string

func init() {
	sampleJobCmd.Flags().StringVarP(&sampleJobOutputFile, "out", "o", "", "Write the job profile JSON to a file instead of stdout")

	rootCmd.AddCommand(sampleJobCmd)
}

func runSampleJob(_ *cobra.Command, _ []string) error {
	profile := parsing.SampleJobProfile()

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal job profile: %w", err)
	}

	if sampleJobOutputFile != "" {
		if err := os.WriteFile(sampleJobOutputFile, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", sampleJobOutputFile, err)
		}
		fmt.Printf("Sample job profile written to %s\n", sampleJobOutputFile)
		return nil
	}

	fmt.Println(string(data))
	return nil
}
