package runner

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/calder-systems/pygrade/internal/logging"
	"github.com/calder-systems/pygrade/internal/model"
	"github.com/calder-systems/pygrade/internal/report"
)

const cleanSource = `"""Shared constants."""

ANSWER_TEXT = compute()
`

const messySource = `import os

MAX_RETRIES = 5


def risky(path):
    fh = open(path)
    print(fh.read())  # TODO handle errors
`

const brokenSource = "def broken(:\n"

func writeTree(t *testing.T) (root string, files []string) {
	t.Helper()
	root = t.TempDir()
	sources := map[string]string{
		"clean.py":  cleanSource,
		"messy.py":  messySource,
		"broken.py": brokenSource,
	}
	for name, src := range sources {
		path := filepath.Join(root, name)
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
		files = append(files, path)
	}
	return root, files
}

func TestRun(t *testing.T) {
	root, files := writeTree(t)

	orch := New(2, logging.Nop())
	run, err := orch.Run(context.Background(), root, files)
	if err != nil {
		t.Fatal(err)
	}

	if run.TotalFiles() != 3 {
		t.Fatalf("total files = %d, want 3", run.TotalFiles())
	}

	for path, result := range run.Files {
		if result.Rating.Grade == "" {
			t.Errorf("%s: no grade assigned", path)
		}
		var bySeverity int
		for _, n := range result.Metrics.SeverityCounts {
			bySeverity += n
		}
		if bySeverity != len(result.Findings) {
			t.Errorf("%s: severity counts sum to %d, want %d", path, bySeverity, len(result.Findings))
		}
	}

	broken := run.Files[filepath.Join(root, "broken.py")]
	if broken == nil {
		t.Fatal("broken.py missing from run")
	}
	if len(broken.Findings) != 1 || broken.Findings[0].Kind != model.KindSyntaxError {
		t.Errorf("broken.py findings = %+v, want one SYNTAX_ERROR", broken.Findings)
	}

	clean := run.Files[filepath.Join(root, "clean.py")]
	if clean == nil {
		t.Fatal("clean.py missing from run")
	}
	if len(clean.Findings) != 0 {
		t.Errorf("clean.py findings = %+v, want none", clean.Findings)
	}
	if clean.Rating.Overall != 10.0 {
		t.Errorf("clean.py overall = %v, want 10.0", clean.Rating.Overall)
	}
}

func TestRun_Deterministic(t *testing.T) {
	root, files := writeTree(t)
	orch := New(3, logging.Nop())

	first, err := orch.Run(context.Background(), root, files)
	if err != nil {
		t.Fatal(err)
	}
	second, err := orch.Run(context.Background(), root, files)
	if err != nil {
		t.Fatal(err)
	}

	for path, a := range first.Files {
		b := second.Files[path]
		if b == nil {
			t.Fatalf("%s missing from second run", path)
		}
		if !reflect.DeepEqual(a.Findings, b.Findings) {
			t.Errorf("%s: findings differ between runs", path)
		}
		if a.Rating != b.Rating {
			t.Errorf("%s: rating differs between runs: %+v vs %+v", path, a.Rating, b.Rating)
		}
	}
}

func TestRun_UnreadableFileIsolated(t *testing.T) {
	root, files := writeTree(t)
	files = append(files, filepath.Join(root, "missing.py"))

	orch := New(2, logging.Nop())
	run, err := orch.Run(context.Background(), root, files)
	if err != nil {
		t.Fatal(err)
	}

	if run.TotalFiles() != 4 {
		t.Fatalf("total files = %d, want 4", run.TotalFiles())
	}
	missing := run.Files[filepath.Join(root, "missing.py")]
	if missing == nil {
		t.Fatal("missing.py not recorded")
	}
	if len(missing.Findings) != 1 || missing.Findings[0].Kind != model.KindAnalysisError {
		t.Errorf("missing.py findings = %+v, want one ANALYSIS_ERROR", missing.Findings)
	}
	if missing.Findings[0].Severity != model.SeverityError {
		t.Errorf("severity = %v, want ERROR", missing.Findings[0].Severity)
	}
}

func TestRun_Cancelled(t *testing.T) {
	root, files := writeTree(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	orch := New(1, logging.Nop())
	if _, err := orch.Run(ctx, root, files); err == nil {
		t.Error("expected an error from a cancelled run")
	}
}

func TestSynthesize(t *testing.T) {
	root, files := writeTree(t)
	outDir := t.TempDir()

	orch := New(2, logging.Nop())
	run, err := orch.Run(context.Background(), root, files)
	if err != nil {
		t.Fatal(err)
	}
	if err := orch.Synthesize(outDir, run); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{
		report.SummaryFileName,
		report.FinalFileName,
		report.ExportFileName,
		report.FileReportName("messy.py"),
		report.FileReportName("broken.py"),
	} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("report %s not written: %v", name, err)
		}
	}

	// The clean file has no findings, so it gets no per-file report.
	if _, err := os.Stat(filepath.Join(outDir, report.FileReportName("clean.py"))); err == nil {
		t.Error("clean.py report written despite no findings")
	}
}
