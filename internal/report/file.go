// Package report synthesizes the run outputs: per-file diagnostic reports,
// the summary report, the narrative final report, and the JSON export.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/calder-systems/pygrade/internal/model"
)

const rule = 80

// FileReportName derives the per-file report filename from a relative path:
// separators become underscores, suffixed "_report.txt".
func FileReportName(relPath string) string {
	name := strings.ReplaceAll(relPath, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	return name + "_report.txt"
}

// WriteFileReport writes the diagnostic report for one file: findings grouped
// by severity, ERROR first. Returns the report path.
func WriteFileReport(outDir string, result *model.FileResult) (string, error) {
	path := filepath.Join(outDir, FileReportName(result.Unit.RelPath))

	var sb strings.Builder
	fmt.Fprintf(&sb, "Code Quality Report for %s\n", result.Unit.RelPath)
	sb.WriteString(strings.Repeat("=", rule) + "\n\n")

	for _, severity := range model.Severities {
		var group []model.Finding
		for _, f := range result.Findings {
			if f.Severity == severity {
				group = append(group, f)
			}
		}
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "%s issues (%d):\n", severity, len(group))
		sb.WriteString(strings.Repeat("-", rule) + "\n")
		for _, f := range group {
			fmt.Fprintf(&sb, "Line %d: %s - %s\n", f.Line, f.Kind, f.Message)
		}
		sb.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// shortenPath fits a path into maxLength characters, keeping the first and
// last segments ("pkg/.../file.py") when the middle has to go.
func shortenPath(path string, maxLength int) string {
	if len(path) <= maxLength {
		return path
	}

	parts := strings.Split(path, string(filepath.Separator))
	if len(parts) <= 2 {
		return path[len(path)-maxLength:]
	}

	first := parts[0]
	last := parts[len(parts)-1]
	middle := maxLength - len(first) - len(last) - 5
	if middle < 3 {
		return "..." + path[len(path)-(maxLength-3):]
	}
	return first + "/.../" + last
}
