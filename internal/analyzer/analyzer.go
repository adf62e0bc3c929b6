package analyzer

import (
	"context"
	"fmt"

	"github.com/calder-systems/pygrade/internal/model"
	"github.com/calder-systems/pygrade/internal/pyast"
)

// Analyze runs the full per-file pipeline over one source unit: parse, the
// tree detectors, the raw line scanner, and complexity metrics. Every finding
// is counted into the returned metrics exactly once.
//
// A file the grammar cannot fully match yields a single SYNTAX_ERROR finding
// and skips all other checks. Analyze never fails; unexpected parse errors
// (context cancellation aside) surface as an ANALYSIS_ERROR finding.
func Analyze(ctx context.Context, unit *model.SourceUnit) ([]model.Finding, *model.FileMetrics) {
	metrics := model.NewFileMetrics()
	metrics.LinesOfCode = unit.LineCount

	root, synErr, err := pyast.Parse(ctx, unit.Source)
	if err != nil {
		return record(metrics, model.Finding{
			Kind:     model.KindAnalysisError,
			Message:  fmt.Sprintf("Error analyzing %s: %v", unit.RelPath, err),
			Line:     0,
			Severity: model.SeverityError,
		})
	}
	if synErr != nil {
		return record(metrics, model.Finding{
			Kind:     model.KindSyntaxError,
			Message:  fmt.Sprintf("Syntax error: %v", synErr),
			Line:     synErr.Line,
			Severity: model.SeverityError,
		})
	}
	unit.Parsed = true

	detectors := []Detector{
		NewErrorHandling(),
		NewQuality(),
		NewScalability(),
	}

	var findings []model.Finding
	for _, d := range detectors {
		findings = append(findings, d.Inspect(root, metrics)...)
	}
	findings = append(findings, ScanLines(string(unit.Source))...)

	NewComplexityMetrics().Inspect(root, metrics)

	for _, f := range findings {
		metrics.Count(f)
	}
	return findings, metrics
}

func record(metrics *model.FileMetrics, f model.Finding) ([]model.Finding, *model.FileMetrics) {
	metrics.Count(f)
	return []model.Finding{f}, metrics
}
