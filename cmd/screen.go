package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/maksimov/resume-screener/internal/explain"
	"github.com/maksimov/resume-screener/internal/logger"
	"github.com/maksimov/resume-screener/internal/profile"
	"github.com/maksimov/resume-screener/internal/scoring"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Score one resume against one job description and explain the result",
	Run: func(cmd *cobra.Command, _ []string) {
		screen(cmd)
	},
}

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().StringP("resume", "r", "", "path to the resume profile JSON file")
	screenCmd.Flags().StringP("job", "J", "", "path to the job requirement JSON file")
	screenCmd.Flags().StringP("out", "o", "", "write the full report as JSON to this file instead of stdout text")

	screenCmd.MarkFlagRequired("resume")
	screenCmd.MarkFlagRequired("job")
}

func screen(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	resumePath, _ := cmd.Flags().GetString("resume")
	jobPath, _ := cmd.Flags().GetString("job")
	outPath, _ := cmd.Flags().GetString("out")

	engine, generator, err := buildEngine(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the scoring engine", zap.Error(err))
	}

	resume, err := profile.LoadResumeProfile(resumePath)
	if err != nil {
		logger.Fatal("loading the resume profile", zap.Error(err))
	}

	job, err := profile.LoadJobRequirement(jobPath)
	if err != nil {
		logger.Fatal("loading the job requirement", zap.Error(err))
	}

	result, err := engine.Match(ctx, resume, job)
	if err != nil {
		logger.Fatal("scoring the match", zap.Error(err))
	}

	report, err := generator.Explain(result)
	if err != nil {
		logger.Fatal("generating the explanation", zap.Error(err))
	}

	if outPath != "" {
		if err := writeReportFile(outPath, result, report); err != nil {
			logger.Fatal("writing the report file", zap.Error(err))
		}
		logger.Info("report written", zap.String("path", outPath))
		return
	}

	printResult(result, report)
}

func writeReportFile(path string, result *scoring.MatchResult, report *explain.Report) error {
	payload := struct {
		Result *scoring.MatchResult `json:"result"`
		Report *explain.Report      `json:"report"`
	}{Result: result, Report: report}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

func printResult(result *scoring.MatchResult, report *explain.Report) {
	fmt.Printf("Score:   %s/100\n", strconv.FormatFloat(result.Composite, 'f', -1, 64))
	fmt.Printf("Verdict: %s\n", result.Verdict)
	if result.Degraded {
		fmt.Println("Note:    semantic signal was unavailable; this is a degraded (low-confidence) result")
	}

	fmt.Println("\nScore breakdown:")
	for _, sub := range result.SubScores {
		fmt.Printf("  %-11s %.2f (weight %.2f)\n", sub.Name, sub.Value, result.Weights.For(sub.Name))
	}

	fmt.Println("\nFactors:")
	for _, factor := range report.Factors {
		marker := "+"
		if factor.Direction == explain.DirectionNegative {
			marker = "-"
		}
		fmt.Printf("  %s %s\n", marker, factor.Text)
	}

	if len(report.Strengths) > 0 {
		fmt.Println("\nStrengths:")
		for _, s := range report.Strengths {
			fmt.Printf("  * %s\n", s)
		}
	}

	if len(report.Gaps) > 0 {
		fmt.Println("\nGaps:")
		for _, g := range report.Gaps {
			fmt.Printf("  * %s\n", g)
		}
	}

	if len(report.Recommendations) > 0 {
		fmt.Println("\nRecommended skills to acquire:")
		for _, rec := range report.Recommendations {
			fmt.Printf("  * %s (%s priority)\n", rec.Skill, rec.Priority)
		}
	}

	fmt.Printf("\n%s\n\n%s\n", report.Summary, report.Narrative)
}
