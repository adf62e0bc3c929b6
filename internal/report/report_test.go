package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/calder-systems/pygrade/internal/model"
	"github.com/calder-systems/pygrade/internal/rating"
)

// testRun builds a two-file run: one clean file and one with an issue of
// every severity.
func testRun() *model.Run {
	run := model.NewRun("/src")

	clean := &model.FileResult{
		Unit:    model.SourceUnit{RelPath: "clean.py", Parsed: true},
		Metrics: model.NewFileMetrics(),
	}
	messy := &model.FileResult{
		Unit: model.SourceUnit{RelPath: "pkg/messy.py", Parsed: true},
		Findings: []model.Finding{
			{Kind: model.KindMissingDocstring, Message: "Module 'module' is missing a docstring", Line: 1, Severity: model.SeverityInfo},
			{Kind: model.KindBareExcept, Message: "Using bare 'except:' is not recommended for production code", Line: 4, Severity: model.SeverityWarning},
			{Kind: model.KindSQLInjectionRisk, Message: "Potential SQL injection vulnerability", Line: 12, Severity: model.SeverityError},
		},
		Metrics: model.NewFileMetrics(),
	}
	for _, f := range messy.Findings {
		messy.Metrics.Count(f)
	}
	clean.Rating = rating.Rate(clean.Metrics)
	messy.Rating = rating.Rate(messy.Metrics)

	run.Files[clean.Unit.RelPath] = clean
	run.Files[messy.Unit.RelPath] = messy
	return run
}

func TestFileReportName(t *testing.T) {
	cases := []struct {
		relPath string
		want    string
	}{
		{"app.py", "app.py_report.txt"},
		{"pkg/sub/app.py", "pkg_sub_app.py_report.txt"},
		{"pkg\\app.py", "pkg_app.py_report.txt"},
	}
	for _, tc := range cases {
		if got := FileReportName(tc.relPath); got != tc.want {
			t.Errorf("FileReportName(%q) = %q, want %q", tc.relPath, got, tc.want)
		}
	}
}

func TestWriteFileReport(t *testing.T) {
	dir := t.TempDir()
	run := testRun()

	path, err := WriteFileReport(dir, run.Files["pkg/messy.py"])
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "pkg_messy.py_report.txt" {
		t.Errorf("report name = %q", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if !strings.Contains(content, "Code Quality Report for pkg/messy.py") {
		t.Error("header missing")
	}
	if !strings.Contains(content, "Line 12: SQL_INJECTION_RISK - Potential SQL injection vulnerability") {
		t.Error("finding line missing or misformatted")
	}

	errIdx := strings.Index(content, "ERROR issues (1):")
	warnIdx := strings.Index(content, "WARNING issues (1):")
	infoIdx := strings.Index(content, "INFO issues (1):")
	if errIdx < 0 || warnIdx < 0 || infoIdx < 0 {
		t.Fatalf("severity sections missing:\n%s", content)
	}
	if !(errIdx < warnIdx && warnIdx < infoIdx) {
		t.Error("severity sections out of order")
	}
}

func TestShortenPath(t *testing.T) {
	cases := []struct {
		path string
		max  int
		want string
	}{
		{"short.py", 39, "short.py"},
		{"pkg/deeply/nested/tree/module.py", 20, "pkg/.../module.py"},
	}
	for _, tc := range cases {
		if got := shortenPath(tc.path, tc.max); got != tc.want {
			t.Errorf("shortenPath(%q, %d) = %q, want %q", tc.path, tc.max, got, tc.want)
		}
	}

	long := shortenPath("averylongdirectoryname/file_with_a_long_name.py", 20)
	if len(long) > 20 {
		t.Errorf("shortened path still %d chars: %q", len(long), long)
	}
}

func TestWriteSummary(t *testing.T) {
	dir := t.TempDir()
	run := testRun()

	path, err := WriteSummary(dir, run)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	for _, want := range []string{
		"Total files analyzed: 2",
		"Files with issues: 1",
		"Total issues found: 3",
		"ERROR: 1",
		"WARNING: 1",
		"INFO: 1",
		"BARE_EXCEPT: 1",
		"pkg/messy.py: 3 issues",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("summary missing %q", want)
		}
	}

	// The ratings table lists the clean file first (higher score).
	cleanIdx := strings.LastIndex(content, "clean.py")
	messyIdx := strings.LastIndex(content, "pkg/messy.py")
	if cleanIdx < 0 || messyIdx < 0 || cleanIdx > messyIdx {
		t.Error("ratings table not sorted by score descending")
	}
}

func TestWriteFinal(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = time.Now }()

	dir := t.TempDir()
	run := testRun()

	path, err := WriteFinal(dir, run)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	for _, want := range []string{
		"# Code Quality Analysis Final Report",
		"**Generated on:** 2026-01-02 03:04:05",
		"This analysis examined **2** Python files and found issues in **1** files",
		"### Key Metrics",
		"### Issues by Severity",
		"### Top Issue Types",
		"### Top Rated Files",
		"### Lowest Rated Files",
		"## Key Recommendations",
		"Replace bare 'except:' clauses with specific exception handlers to avoid masking critical errors.",
		"Use parameterized queries or ORM to prevent SQL injection vulnerabilities.",
		"## Appendix: All Files",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("final report missing %q", want)
		}
	}
}

func TestWriteExport(t *testing.T) {
	dir := t.TempDir()
	run := testRun()

	path, err := WriteExport(dir, run)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var export Export
	if err := json.Unmarshal(data, &export); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	if export.Summary.TotalFiles != 2 {
		t.Errorf("total files = %d, want 2", export.Summary.TotalFiles)
	}
	if export.Summary.TotalIssues != 3 {
		t.Errorf("total issues = %d, want 3", export.Summary.TotalIssues)
	}
	if export.Summary.SeverityCounts[model.SeverityError] != 1 {
		t.Errorf("error count = %d, want 1", export.Summary.SeverityCounts[model.SeverityError])
	}
	if _, ok := export.FileRatings["pkg/messy.py"]; !ok {
		t.Error("file rating for pkg/messy.py missing")
	}
	if got := export.FileRatings["clean.py"].Grade; got != "A+" {
		t.Errorf("clean.py grade = %q, want A+", got)
	}
	if export.Summary.AverageScores.Grade == "" {
		t.Error("average grade missing")
	}
}
