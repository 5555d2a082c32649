package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/spf13/cobra"
)

var suggestSkillsCmd = &cobra.Command{
	Use:   "suggest-skills [posting file]",
	Short: "Suggest required skills from a saved job posting",
	Long:  "Read a saved job-posting page (HTML or plain text) and print the known skills it mentions, one per line, ready to paste into a job profile's required_skills list.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSuggestSkills,
}

var suggestSkillsConfigFile string

func init() {
	suggestSkillsCmd.Flags().StringVarP(&suggestSkillsConfigFile, "config", "c", "", "Path to screener config JSON (uses its 'posting_html' when no file argument is given)")

	rootCmd.AddCommand(suggestSkillsCmd)
}

func runSuggestSkills(_ *cobra.Command, args []string) error {
	var postingFile string
	if len(args) > 0 {
		postingFile = args[0]
	} else if suggestSkillsConfigFile != "" {
		cfg, err := config.LoadConfig(suggestSkillsConfigFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		postingFile = cfg.PostingHTML
	}
	if postingFile == "" {
		return fmt.Errorf("a posting file is required (pass it as an argument or set 'posting_html' in the config)")
	}

	data, err := os.ReadFile(postingFile)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", postingFile, err)
	}

	text := string(data)
	switch strings.ToLower(filepath.Ext(postingFile)) {
	case ".html", ".htm":
		text, err = ingestion.ExtractPostingText(string(data))
		if err != nil {
			return err
		}
	}

	skills, err := extraction.MatchVocabulary(text)
	if err != nil {
		return err
	}
	if len(skills) == 0 {
		return fmt.Errorf("no known skills found in %s", postingFile)
	}

	for _, skill := range skills {
		fmt.Println(skill)
	}
	return nil
}
