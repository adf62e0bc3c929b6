package report

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/calder-systems/pygrade/internal/model"
	"github.com/calder-systems/pygrade/internal/rating"
)

// ExportFileName is the machine-readable export filename under the output
// directory.
const ExportFileName = "analysis_data.json"

// Export is the machine-readable mirror of the run aggregate.
type Export struct {
	Summary     ExportSummary                 `json:"summary"`
	FileRatings map[string]model.FileRating   `json:"file_ratings"`
	FileMetrics map[string]*model.FileMetrics `json:"file_metrics"`
}

// ExportSummary holds the run totals and averages.
type ExportSummary struct {
	TotalFiles      int                     `json:"total_files"`
	FilesWithIssues int                     `json:"files_with_issues"`
	TotalIssues     int                     `json:"total_issues"`
	AverageScores   ExportAverages          `json:"average_scores"`
	SeverityCounts  map[model.Severity]int  `json:"severity_counts"`
	IssueTypes      map[model.IssueKind]int `json:"issue_types"`
}

// ExportAverages is the run-wide score block including the overall grade.
type ExportAverages struct {
	model.AverageScores
	Grade string `json:"grade"`
}

// Build assembles the export structure from a finalized run.
func Build(run *model.Run) Export {
	avg := run.Averages()
	grade := "N/A"
	if run.TotalFiles() > 0 {
		grade = rating.Grade(avg.Overall)
	}

	export := Export{
		Summary: ExportSummary{
			TotalFiles:      run.TotalFiles(),
			FilesWithIssues: run.FilesWithIssues(),
			TotalIssues:     run.TotalIssues(),
			AverageScores:   ExportAverages{AverageScores: avg, Grade: grade},
			SeverityCounts:  run.SeverityTotals(),
			IssueTypes:      run.IssueTypeTotals(),
		},
		FileRatings: make(map[string]model.FileRating, len(run.Files)),
		FileMetrics: make(map[string]*model.FileMetrics, len(run.Files)),
	}
	for _, result := range run.Files {
		export.FileRatings[result.Unit.RelPath] = result.Rating
		export.FileMetrics[result.Unit.RelPath] = result.Metrics
	}
	return export
}

// WriteExport writes the JSON export and returns its path.
func WriteExport(outDir string, run *model.Run) (string, error) {
	path := filepath.Join(outDir, ExportFileName)

	data, err := json.MarshalIndent(Build(run), "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
