// Package runner orchestrates an analysis run: it fans per-file analysis out
// across a bounded worker pool, runs the scoring pass once every file has
// finalized metrics, and drives report synthesis.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/calder-systems/pygrade/internal/analyzer"
	"github.com/calder-systems/pygrade/internal/model"
	"github.com/calder-systems/pygrade/internal/rating"
	"github.com/calder-systems/pygrade/internal/report"
)

// Orchestrator runs one analysis over a file list.
type Orchestrator struct {
	workers int
	log     *zap.SugaredLogger
}

// New creates an orchestrator. workers <= 0 means one worker per CPU.
func New(workers int, log *zap.SugaredLogger) *Orchestrator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Orchestrator{workers: workers, log: log}
}

// Run analyzes every file in parallel, then computes ratings. Per-file
// failures are recorded as findings on that file and never abort the run;
// the only returned error is context cancellation.
//
// Workers write exclusively to their own file's entry in the aggregate;
// scoring runs strictly after all workers finish because it needs each
// file's metrics to be final.
func (o *Orchestrator) Run(ctx context.Context, root string, files []string) (*model.Run, error) {
	run := model.NewRun(root)
	var mu sync.Mutex

	// The group context is cancelled as soon as Wait returns, so the
	// completion check below must look at the caller's context.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for _, path := range files {
		path := path
		g.Go(func() error {
			result := o.analyzeFile(gctx, root, path)
			mu.Lock()
			run.Files[path] = result
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, result := range run.Files {
		result.Rating = rating.Rate(result.Metrics)
	}
	return run, nil
}

// analyzeFile produces the result for one file. It never panics outward: an
// unexpected failure becomes an ANALYSIS_ERROR finding on this file alone.
func (o *Orchestrator) analyzeFile(ctx context.Context, root, path string) (result *model.FileResult) {
	relPath := relativeTo(root, path)

	defer func() {
		if r := recover(); r != nil {
			result = failedResult(relPath, fmt.Sprintf("Error analyzing %s: %v", relPath, r))
			o.log.Errorw("analysis panic", "file", relPath, "reason", r)
		}
	}()

	o.log.Infow("analyzing", "file", relPath)

	source, err := os.ReadFile(path)
	if err != nil {
		o.log.Errorw("read failed", "file", relPath, "error", err)
		return failedResult(relPath, fmt.Sprintf("Error analyzing %s: %v", relPath, err))
	}

	unit := model.SourceUnit{
		Path:      path,
		RelPath:   relPath,
		Source:    source,
		LineCount: bytes.Count(source, []byte("\n")) + 1,
	}
	findings, metrics := analyzer.Analyze(ctx, &unit)

	return &model.FileResult{Unit: unit, Findings: findings, Metrics: metrics}
}

// Synthesize writes every report for a finalized run under outDir: one
// diagnostic report per file with findings, the summary report, the final
// narrative report, and the JSON export.
func (o *Orchestrator) Synthesize(outDir string, run *model.Run) error {
	for _, result := range run.ByIssueCount() {
		if result.IssueCount() == 0 {
			continue
		}
		path, err := report.WriteFileReport(outDir, result)
		if err != nil {
			return fmt.Errorf("writing report for %s: %w", result.Unit.RelPath, err)
		}
		o.log.Infow("file report written", "file", result.Unit.RelPath, "report", path)
	}

	path, err := report.WriteSummary(outDir, run)
	if err != nil {
		return fmt.Errorf("writing summary report: %w", err)
	}
	o.log.Infow("summary report written", "report", path)

	path, err = report.WriteFinal(outDir, run)
	if err != nil {
		return fmt.Errorf("writing final report: %w", err)
	}
	o.log.Infow("final report written", "report", path)

	path, err = report.WriteExport(outDir, run)
	if err != nil {
		return fmt.Errorf("writing analysis data: %w", err)
	}
	o.log.Infow("analysis data written", "export", path)

	return nil
}

// failedResult builds the degraded result for a file that could not be
// analyzed: a single ERROR finding and empty metrics, so the file still
// receives a rating and appears in every report.
func failedResult(relPath, message string) *model.FileResult {
	finding := model.Finding{
		Kind:     model.KindAnalysisError,
		Message:  message,
		Line:     0,
		Severity: model.SeverityError,
	}
	metrics := model.NewFileMetrics()
	metrics.Count(finding)
	return &model.FileResult{
		Unit:     model.SourceUnit{Path: relPath, RelPath: relPath},
		Findings: []model.Finding{finding},
		Metrics:  metrics,
	}
}

func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
