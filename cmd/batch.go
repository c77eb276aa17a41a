package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/maksimov/resume-screener/internal/batch"
	"github.com/maksimov/resume-screener/internal/logger"
	"github.com/maksimov/resume-screener/internal/profile"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShowReport = "Show a candidate's full report"
	PromptDumpToFile = "Dump results to a file"
	PromptExit       = "Exit"
	PromptBack       = "back"
	defaultDumpFile  = "screening-results.json"
)

var errExit = errors.New("exit requested")

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Screen a directory of resume profiles against one job description",
	Run: func(cmd *cobra.Command, _ []string) {
		runBatch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringP("resumes", "r", "", "directory containing resume profile JSON files")
	batchCmd.Flags().StringP("job", "J", "", "path to the job requirement JSON file")
	batchCmd.Flags().StringP("out", "o", "", "file for dumped results (default "+defaultDumpFile+")")
	batchCmd.Flags().BoolP("auto-aprove", "y", false, "print the ranking and exit without the interactive menu")

	batchCmd.MarkFlagRequired("resumes")
	batchCmd.MarkFlagRequired("job")
}

func runBatch(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	dir, _ := cmd.Flags().GetString("resumes")
	jobPath, _ := cmd.Flags().GetString("job")
	outPath, _ := cmd.Flags().GetString("out")
	autoApprove, _ := cmd.Flags().GetBool("auto-aprove")

	engine, generator, err := buildEngine(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the scoring engine", zap.Error(err))
	}

	job, err := profile.LoadJobRequirement(jobPath)
	if err != nil {
		logger.Fatal("loading the job requirement", zap.Error(err))
	}

	entries, err := loadResumeDir(dir, logger)
	if err != nil {
		logger.Fatal("loading resume profiles", zap.Error(err))
	}

	if len(entries) == 0 {
		logger.Fatal("no resume profiles found", zap.String("dir", dir))
	}

	screener := buildScreener(engine, generator, config, logger)

	summary, err := screener.Run(ctx, job, entries)
	if err != nil {
		logger.Fatal("running the batch screening", zap.Error(err))
	}

	printRanking(summary)

	if autoApprove {
		return
	}

	if err := menu(summary, outPath, logger); err != nil && !errors.Is(err, errExit) {
		logger.Fatal("interactive menu", zap.Error(err))
	}
}

// loadResumeDir collects every .json file in the directory. Files that fail
// to parse still enter the batch as failed entries so one bad file never
// hides the rest of the ranking.
func loadResumeDir(dir string, logger *zap.Logger) ([]batch.Entry, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	entries := make([]batch.Entry, 0, len(paths))
	for _, path := range paths {
		resume, err := profile.LoadResumeProfile(path)
		if err != nil {
			logger.Warn("skipping unreadable resume profile",
				zap.String("path", path),
				zap.Error(err),
			)
			entries = append(entries, batch.Entry{Source: path})
			continue
		}
		entries = append(entries, batch.Entry{Source: path, Resume: resume})
	}

	return entries, nil
}

func printRanking(summary *batch.Summary) {
	fmt.Printf("Screened %d candidates (%d failed), run %s\n\n", len(summary.Items), summary.Failed, summary.RunID)
	fmt.Printf("%-4s %-40s %-8s %s\n", "#", "candidate", "score", "verdict")

	for i, item := range summary.Items {
		if item.Err != "" {
			fmt.Printf("%-4d %-40s %-8s failed: %s\n", i+1, itemLabel(item), "-", item.Err)
			continue
		}

		verdict := item.Result.Verdict
		if item.Result.Degraded {
			verdict += " (degraded)"
		}
		fmt.Printf("%-4d %-40s %-8s %s\n", i+1, itemLabel(item),
			strconv.FormatFloat(item.Result.Composite, 'f', -1, 64), verdict)
	}
	fmt.Println()
}

func itemLabel(item batch.Item) string {
	return filepath.Base(item.Source)
}

func menu(summary *batch.Summary, outPath string, logger *zap.Logger) error {
	for {
		prompt := promptui.Select{
			Label: "What next?",
			Items: []string{PromptShowReport, PromptDumpToFile, PromptExit},
		}

		_, selected, err := prompt.Run()
		if err != nil {
			return err
		}

		switch selected {
		case PromptExit:
			return errExit
		case PromptDumpToFile:
			path := outPath
			if path == "" {
				path = defaultDumpFile
			}

			data, err := json.MarshalIndent(summary, "", "  ")
			if err != nil {
				return err
			}

			if err := os.WriteFile(path, data, 0o644); err != nil {
				return err
			}

			logger.Info("results dumped", zap.String("filename", path))
		case PromptShowReport:
			if err := showReport(summary); err != nil {
				return err
			}
		}
	}
}

func showReport(summary *batch.Summary) error {
	items := make([]string, 0, len(summary.Items)+1)
	for _, item := range summary.Items {
		label := filepath.Base(item.Source)
		if item.Result != nil {
			label = fmt.Sprintf("%s (%s)", label, strconv.FormatFloat(item.Result.Composite, 'f', -1, 64))
		} else {
			label = fmt.Sprintf("%s (failed)", label)
		}
		items = append(items, label)
	}

	candidatePrompt := promptui.Select{
		Label: "Choose a candidate and press ENTER",
		Items: append(items, PromptBack),
	}

	idx, selected, err := candidatePrompt.Run()
	if err != nil {
		return err
	}

	if selected == PromptBack {
		return nil
	}

	item := summary.Items[idx]
	if item.Err != "" {
		fmt.Printf("\n%s could not be screened: %s\n\n", filepath.Base(item.Source), item.Err)
		return nil
	}

	fmt.Printf("\n=== %s ===\n", filepath.Base(item.Source))
	printResult(item.Result, item.Report)

	return nil
}
