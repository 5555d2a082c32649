package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/export"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var scoreCmd = &cobra.Command{
	Use:   "score [resume files or directories]",
	Short: "Score resume documents against a job profile",
	Long:  "Decode the given resume documents (PDF, DOCX or plain text), extract structured candidate information and print a ranked candidate list scored against the job profile.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScore,
}

var (
	scoreConfigFile       string
	scoreJobFile          string
	scoreOutputCSV        string
	scoreMinScore         float64
	scoreSkillsWeight     float64
	scoreExperienceWeight float64
	scoreEducationWeight  float64
	scoreVerbose          bool
)

// decodeWorkers bounds the decode fan-out. Extraction and scoring stay
// sequential; only file decoding runs concurrently.
const decodeWorkers = 4

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfigFile, "config", "c", "", "Path to screener config JSON")
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to job profile JSON (required unless set in config)")
	scoreCmd.Flags().StringVarP(&scoreOutputCSV, "out", "o", "", "Path to write ranked results as CSV")
	scoreCmd.Flags().Float64Var(&scoreMinScore, "min-score", 0, "Hide candidates below this total score")
	scoreCmd.Flags().Float64Var(&scoreSkillsWeight, "skills-weight", 0, "Skills weight (renormalized with the other two)")
	scoreCmd.Flags().Float64Var(&scoreExperienceWeight, "experience-weight", 0, "Experience weight")
	scoreCmd.Flags().Float64Var(&scoreEducationWeight, "education-weight", 0, "Education weight")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print per-candidate score breakdowns")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, args []string) error {
	cfg := &config.Config{}
	if scoreConfigFile != "" {
		loaded, err := config.LoadConfig(scoreConfigFile)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags override config values.
	jobFile := scoreJobFile
	if jobFile == "" {
		jobFile = cfg.JobProfile
	}
	if jobFile == "" {
		return fmt.Errorf("a job profile is required (use --job or set 'job_profile' in the config)")
	}
	outputCSV := scoreOutputCSV
	if outputCSV == "" {
		outputCSV = cfg.OutputCSV
	}
	minScore := scoreMinScore
	if minScore == 0 {
		minScore = cfg.MinScore
	}
	verbose := scoreVerbose || cfg.Verbose

	profile, err := config.LoadJobProfile(jobFile)
	if err != nil {
		return err
	}

	paths, err := collectResumePaths(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no resume documents found in the given paths")
	}

	documents, failures := decodeAll(paths)

	extractor := extraction.NewDefaultExtractor()
	candidates := make([]*types.CandidateRecord, 0, len(documents))
	for _, doc := range documents {
		record, err := extractor.ExtractInformation(doc.Text)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", doc.Name, err))
			continue
		}
		record.Source = doc.Name
		candidates = append(candidates, record)
	}

	engine := scoring.NewEngine()
	skillsWeight := firstNonZero(scoreSkillsWeight, cfg.SkillsWeight)
	experienceWeight := firstNonZero(scoreExperienceWeight, cfg.ExperienceWeight)
	educationWeight := firstNonZero(scoreEducationWeight, cfg.EducationWeight)
	if skillsWeight+experienceWeight+educationWeight > 0 {
		engine.AdjustWeights(skillsWeight, experienceWeight, educationWeight)
	}

	results := engine.BatchScore(candidates, profile)
	if minScore > 0 {
		filtered := results[:0]
		for _, record := range results {
			if record.TotalScore >= minScore {
				filtered = append(filtered, record)
			}
		}
		results = filtered
	}

	printer := observability.NewPrinter(os.Stdout)
	if verbose {
		printer.PrintJobProfile(profile)
	}
	printer.PrintRanking(results)
	if verbose {
		for i, record := range results {
			printer.PrintScoredRecord(i+1, record)
		}
	}
	printer.PrintSummary(export.SummaryStats(results))

	for _, failure := range failures {
		fmt.Fprintf(os.Stderr, "Skipped: %s\n", failure)
	}

	if outputCSV != "" {
		if err := writeCSVFile(outputCSV, results); err != nil {
			return err
		}
		fmt.Printf("Results exported to %s\n", outputCSV)
	}

	return nil
}

// collectResumePaths expands the argument list, walking directories for
// supported document types.
func collectResumePaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}

		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot read directory %s: %w", arg, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(entry.Name())) {
			case ".pdf", ".docx", ".txt":
				paths = append(paths, filepath.Join(arg, entry.Name()))
			}
		}
	}
	return paths, nil
}

// decodeAll decodes documents with a bounded worker pool. Per-document
// failures are collected, not fatal.
func decodeAll(paths []string) ([]*ingestion.Document, []string) {
	type outcome struct {
		doc *ingestion.Document
		err error
	}

	outcomes := make([]outcome, len(paths))
	var g errgroup.Group
	g.SetLimit(decodeWorkers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			doc, err := ingestion.DecodeFile(path)
			outcomes[i] = outcome{doc: doc, err: err}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures live in outcomes

	var documents []*ingestion.Document
	var failures []string
	for i, out := range outcomes {
		if out.err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", filepath.Base(paths[i]), out.err))
			continue
		}
		documents = append(documents, out.doc)
	}
	return documents, failures
}

func writeCSVFile(path string, results []*types.ScoredRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	if err := export.WriteCSV(file, results, time.Now()); err != nil {
		return fmt.Errorf("failed to export CSV: %w", err)
	}
	return nil
}

func firstNonZero(values ...float64) float64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
