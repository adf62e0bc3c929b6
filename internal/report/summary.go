package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/calder-systems/pygrade/internal/model"
)

// SummaryFileName is the summary report filename under the output directory.
const SummaryFileName = "summary_report.txt"

// WriteSummary writes the run-wide summary report: totals, severity and
// issue-type histograms, the top-10 files by issue count, and the full
// ratings table sorted by composite score descending.
func WriteSummary(outDir string, run *model.Run) (string, error) {
	path := filepath.Join(outDir, SummaryFileName)

	var sb strings.Builder
	sb.WriteString("Code Quality Analysis Summary Report\n")
	sb.WriteString(strings.Repeat("=", rule) + "\n\n")

	fmt.Fprintf(&sb, "Total files analyzed: %d\n", run.TotalFiles())
	fmt.Fprintf(&sb, "Files with issues: %d\n", run.FilesWithIssues())
	fmt.Fprintf(&sb, "Total issues found: %d\n\n", run.TotalIssues())

	severities := run.SeverityTotals()
	sb.WriteString("Issues by severity:\n")
	sb.WriteString(strings.Repeat("-", rule) + "\n")
	for _, severity := range model.Severities {
		if count := severities[severity]; count > 0 {
			fmt.Fprintf(&sb, "%s: %d\n", severity, count)
		}
	}
	sb.WriteString("\n")

	sb.WriteString("Issues by type:\n")
	sb.WriteString(strings.Repeat("-", rule) + "\n")
	for _, kc := range sortedIssueTypes(run.IssueTypeTotals()) {
		fmt.Fprintf(&sb, "%s: %d\n", kc.kind, kc.count)
	}
	sb.WriteString("\n")

	sb.WriteString("Files with most issues:\n")
	sb.WriteString(strings.Repeat("-", rule) + "\n")
	listed := 0
	for _, result := range run.ByIssueCount() {
		if result.IssueCount() == 0 || listed == 10 {
			break
		}
		fmt.Fprintf(&sb, "%s: %d issues\n", result.Unit.RelPath, result.IssueCount())
		listed++
	}
	sb.WriteString("\n")

	sb.WriteString("File Ratings:\n")
	sb.WriteString(strings.Repeat("-", rule) + "\n")
	fmt.Fprintf(&sb, "%-40s %-5s %-8s %-8s %-8s %-8s %-8s\n",
		"File", "Grade", "Overall", "Error", "Maint.", "Scale.", "Security")
	sb.WriteString(strings.Repeat("-", rule) + "\n")
	for _, result := range run.ByScore() {
		r := result.Rating
		fmt.Fprintf(&sb, "%-40s %-5s %-8.1f %-8.1f %-8.1f %-8.1f %-8.1f\n",
			shortenPath(result.Unit.RelPath, 39), r.Grade,
			r.Overall, r.ErrorHandling, r.Maintainability, r.Scalability, r.Security)
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

type kindCount struct {
	kind  model.IssueKind
	count int
}

// sortedIssueTypes orders a histogram by count descending, kind ascending on
// ties, so report output is stable across runs.
func sortedIssueTypes(issueTypes map[model.IssueKind]int) []kindCount {
	sorted := make([]kindCount, 0, len(issueTypes))
	for kind, count := range issueTypes {
		sorted = append(sorted, kindCount{kind, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].kind < sorted[j].kind
	})
	return sorted
}
