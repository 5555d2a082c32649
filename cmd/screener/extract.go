package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [resume file]",
	Short: "Extract structured candidate information from a single resume",
	Long:  "Decode one resume document (PDF, DOCX or plain text) and print the extracted candidate record as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

var extractOutputFile string

func init() {
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Write the candidate record JSON to a file instead of stdout")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, args []string) error {
	doc, err := ingestion.DecodeFile(args[0])
	if err != nil {
		return err
	}

	extractor := extraction.NewDefaultExtractor()
	record, err := extractor.ExtractInformation(doc.Text)
	if err != nil {
		return err
	}
	record.Source = doc.Name

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal candidate record: %w", err)
	}

	if extractOutputFile != "" {
		if err := os.WriteFile(extractOutputFile, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", extractOutputFile, err)
		}
		fmt.Printf("Candidate record written to %s\n", extractOutputFile)
		return nil
	}

	fmt.Println(string(data))
	return nil
}
