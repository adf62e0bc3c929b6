package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/calder-systems/pygrade/internal/advice"
	"github.com/calder-systems/pygrade/internal/model"
	"github.com/calder-systems/pygrade/internal/rating"
)

// FinalFileName is the narrative report filename under the output directory.
const FinalFileName = "final_report.md"

// timeNow is swapped in tests for a fixed clock.
var timeNow = time.Now

// WriteFinal writes the narrative final report: executive summary with
// run-wide average scores, severity and issue-type percentage tables, top and
// bottom rated files, per-category recommendations, and a full appendix.
func WriteFinal(outDir string, run *model.Run) (string, error) {
	path := filepath.Join(outDir, FinalFileName)

	avg := run.Averages()
	overallGrade := "N/A"
	if run.TotalFiles() > 0 {
		overallGrade = rating.Grade(avg.Overall)
	}
	totalIssues := run.TotalIssues()
	byScore := run.ByScore()

	var sb strings.Builder
	sb.WriteString("# Code Quality Analysis Final Report\n\n")
	fmt.Fprintf(&sb, "**Generated on:** %s\n\n", timeNow().Format("2006-01-02 15:04:05"))

	sb.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&sb, "This analysis examined **%d** Python files and found issues in **%d** files "+
		"with a total of **%d** issues identified.\n\n",
		run.TotalFiles(), run.FilesWithIssues(), totalIssues)
	fmt.Fprintf(&sb, "**Overall Codebase Grade: %s** (%.1f/10)\n\n", overallGrade, avg.Overall)

	sb.WriteString("### Key Metrics\n\n")
	sb.WriteString("| Metric | Score (0-10) | Grade |\n")
	sb.WriteString("|--------|-------------|-------|\n")
	fmt.Fprintf(&sb, "| Overall Quality | %.1f | %s |\n", avg.Overall, overallGrade)
	fmt.Fprintf(&sb, "| Error Handling | %.1f | %s |\n", avg.ErrorHandling, rating.Grade(avg.ErrorHandling))
	fmt.Fprintf(&sb, "| Maintainability | %.1f | %s |\n", avg.Maintainability, rating.Grade(avg.Maintainability))
	fmt.Fprintf(&sb, "| Scalability | %.1f | %s |\n", avg.Scalability, rating.Grade(avg.Scalability))
	fmt.Fprintf(&sb, "| Security | %.1f | %s |\n\n", avg.Security, rating.Grade(avg.Security))

	sb.WriteString("## Issue Summary\n\n")
	sb.WriteString("### Issues by Severity\n\n")
	sb.WriteString("| Severity | Count | % of Total |\n")
	sb.WriteString("|----------|-------|------------|\n")
	severities := run.SeverityTotals()
	for _, severity := range model.Severities {
		count := severities[severity]
		fmt.Fprintf(&sb, "| %s | %d | %.1f%% |\n", severity, count, percent(count, totalIssues))
	}
	sb.WriteString("\n")

	sb.WriteString("### Top Issue Types\n\n")
	sb.WriteString("| Issue Type | Count | % of Total |\n")
	sb.WriteString("|------------|-------|------------|\n")
	for i, kc := range sortedIssueTypes(run.IssueTypeTotals()) {
		if i == 10 {
			break
		}
		fmt.Fprintf(&sb, "| %s | %d | %.1f%% |\n", kc.kind, kc.count, percent(kc.count, totalIssues))
	}
	sb.WriteString("\n")

	sb.WriteString("## File Ratings\n\n")
	sb.WriteString("### Top Rated Files\n\n")
	writeRatingHeader(&sb)
	for i, result := range byScore {
		if i == 5 {
			break
		}
		writeRatingRow(&sb, result)
	}
	sb.WriteString("\n")

	sb.WriteString("### Lowest Rated Files\n\n")
	writeRatingHeader(&sb)
	bottom := byScore
	if len(bottom) > 5 {
		bottom = bottom[len(bottom)-5:]
	}
	for _, result := range bottom {
		writeRatingRow(&sb, result)
	}
	sb.WriteString("\n")

	sb.WriteString("## Key Recommendations\n\n")
	for i, ca := range advice.ForIssueTypes(run.IssueTypeTotals()) {
		fmt.Fprintf(&sb, "### %d. %s\n\n", i+1, ca.Category)
		for j, item := range ca.Items {
			fmt.Fprintf(&sb, "%d. %s\n", j+1, item)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Appendix: All Files\n\n")
	sb.WriteString("| File | Grade | Overall | Issues |\n")
	sb.WriteString("|------|-------|---------|--------|\n")
	for _, result := range byScore {
		fmt.Fprintf(&sb, "| %s | %s | %.1f | %d |\n",
			shortenPath(result.Unit.RelPath, 50), result.Rating.Grade,
			result.Rating.Overall, result.IssueCount())
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func writeRatingHeader(sb *strings.Builder) {
	sb.WriteString("| File | Grade | Overall | Error | Maintainability | Scalability | Security |\n")
	sb.WriteString("|------|-------|---------|-------|----------------|-------------|----------|\n")
}

func writeRatingRow(sb *strings.Builder, result *model.FileResult) {
	r := result.Rating
	fmt.Fprintf(sb, "| %s | %s | %.1f | %.1f | %.1f | %.1f | %.1f |\n",
		shortenPath(result.Unit.RelPath, 30), r.Grade,
		r.Overall, r.ErrorHandling, r.Maintainability, r.Scalability, r.Security)
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
