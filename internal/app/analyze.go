package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/calder-systems/pygrade/internal/config"
	"github.com/calder-systems/pygrade/internal/logging"
	"github.com/calder-systems/pygrade/internal/model"
	"github.com/calder-systems/pygrade/internal/output"
	"github.com/calder-systems/pygrade/internal/pysrc"
	"github.com/calder-systems/pygrade/internal/rating"
	"github.com/calder-systems/pygrade/internal/report"
	"github.com/calder-systems/pygrade/internal/runner"
)

var (
	analyzeFlagOutput  string
	analyzeFlagWorkers int
	analyzeFlagJSON    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <directory>",
	Short: "Analyze a directory and generate reports",
	Long: `Analyze discovers Python files under the given directory, runs all
production-readiness checks on each file in parallel, grades every file, and
writes the reports under the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFlagOutput, "output", "o", "", "Directory where reports are written")
	analyzeCmd.Flags().IntVar(&analyzeFlagWorkers, "workers", 0, "Number of parallel workers (0 = one per CPU)")
	analyzeCmd.Flags().BoolVar(&analyzeFlagJSON, "json", false, "Print the analysis data as JSON")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if analyzeFlagOutput != "" {
		cfg.OutputDir = analyzeFlagOutput
	}
	if analyzeFlagWorkers > 0 {
		cfg.Workers = analyzeFlagWorkers
	}
	if !cfg.Output.Color {
		output.SetNoColor(true)
	}
	output.SetWidth(cfg.Output.Width)

	root, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	log, sync, err := logging.New(filepath.Join(cfg.OutputDir, logging.LogFileName), flagVerbose)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer sync()

	files, err := pysrc.Discover(root, cfg.OutputDir, cfg.Extensions, cfg.ExcludeDirs)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	log.Infow("discovered files", "count", len(files), "root", root)

	orch := runner.New(cfg.Workers, log)
	run, err := orch.Run(cmd.Context(), root, files)
	if err != nil {
		return fmt.Errorf("analyzing: %w", err)
	}
	if err := orch.Synthesize(cfg.OutputDir, run); err != nil {
		return err
	}

	if analyzeFlagJSON || flagJSON {
		return renderAnalyzeJSON(run)
	}
	renderAnalyzeSummary(run, cfg.OutputDir)
	return nil
}

func renderAnalyzeJSON(run *model.Run) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report.Build(run))
}

func renderAnalyzeSummary(run *model.Run, outDir string) {
	avg := run.Averages()
	overallGrade := "N/A"
	if run.TotalFiles() > 0 {
		overallGrade = rating.Grade(avg.Overall)
	}

	fmt.Println(output.Section("Production Readiness"))
	fmt.Println()
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Overall grade:"),
		output.GradeStyle(overallGrade).Render(fmt.Sprintf("%s (%.1f/10)", overallGrade, avg.Overall)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Files analyzed:"),
		output.StyleValue.Render(fmt.Sprintf("%d", run.TotalFiles())))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Files with issues:"),
		output.StyleValue.Render(fmt.Sprintf("%d", run.FilesWithIssues())))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Total issues:"),
		output.StyleValue.Render(fmt.Sprintf("%d", run.TotalIssues())))

	worst := worstFiles(run, 10)
	if len(worst) > 0 {
		fmt.Println(output.Section("Files Needing Attention"))
		fmt.Println()
		tbl := output.NewTable("Grade", "Score", "Issues", "File")
		for _, result := range worst {
			tbl.AddGradedRow(result.Rating.Grade,
				fmt.Sprintf("%4.1f", result.Rating.Overall),
				fmt.Sprintf("%d", result.IssueCount()),
				result.Unit.RelPath,
			)
		}
		tbl.Print()
	}

	fmt.Println(output.Section("Reports"))
	fmt.Println()
	fmt.Printf(" %s\n", output.StyleMuted.Render("Summary:   "+filepath.Join(outDir, report.SummaryFileName)))
	fmt.Printf(" %s\n", output.StyleMuted.Render("Narrative: "+filepath.Join(outDir, report.FinalFileName)))
	fmt.Printf(" %s\n", output.StyleMuted.Render("Data:      "+filepath.Join(outDir, report.ExportFileName)))
	fmt.Println()
}

// worstFiles returns up to n files with findings, lowest scores first.
func worstFiles(run *model.Run, n int) []*model.FileResult {
	byScore := run.ByScore()
	var worst []*model.FileResult
	for i := len(byScore) - 1; i >= 0 && len(worst) < n; i-- {
		if byScore[i].IssueCount() > 0 {
			worst = append(worst, byScore[i])
		}
	}
	return worst
}
