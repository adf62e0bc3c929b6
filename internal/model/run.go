package model

import "sort"

// FileResult is the per-file outcome produced by one worker: the source unit,
// its findings, and its finalized metrics. Rating is filled in by the scoring
// pass after all workers finish.
type FileResult struct {
	Unit     SourceUnit
	Findings []Finding
	Metrics  *FileMetrics
	Rating   FileRating
}

// IssueCount returns the number of findings for this file.
func (r *FileResult) IssueCount() int {
	return len(r.Findings)
}

// Run is the run-wide aggregate: one FileResult per analyzed file.
// Workers each write exclusively to their own file's entry; the orchestrator
// guards map inserts.
type Run struct {
	Root  string
	Files map[string]*FileResult
}

// NewRun creates an empty aggregate for the given analysis root.
func NewRun(root string) *Run {
	return &Run{Root: root, Files: make(map[string]*FileResult)}
}

// TotalFiles returns the number of analyzed files.
func (r *Run) TotalFiles() int {
	return len(r.Files)
}

// FilesWithIssues returns how many files have at least one finding.
func (r *Run) FilesWithIssues() int {
	n := 0
	for _, f := range r.Files {
		if len(f.Findings) > 0 {
			n++
		}
	}
	return n
}

// TotalIssues returns the run-wide finding count.
func (r *Run) TotalIssues() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Findings)
	}
	return n
}

// SeverityTotals returns the run-wide severity histogram.
func (r *Run) SeverityTotals() map[Severity]int {
	totals := make(map[Severity]int)
	for _, f := range r.Files {
		for _, fd := range f.Findings {
			totals[fd.Severity]++
		}
	}
	return totals
}

// IssueTypeTotals returns the run-wide issue-kind histogram.
func (r *Run) IssueTypeTotals() map[IssueKind]int {
	totals := make(map[IssueKind]int)
	for _, f := range r.Files {
		for _, fd := range f.Findings {
			totals[fd.Kind]++
		}
	}
	return totals
}

// ByScore returns all file results sorted by overall score descending.
// Ties break on relative path so report ordering is deterministic regardless
// of worker completion order.
func (r *Run) ByScore() []*FileResult {
	results := r.all()
	sort.Slice(results, func(i, j int) bool {
		if results[i].Rating.Overall != results[j].Rating.Overall {
			return results[i].Rating.Overall > results[j].Rating.Overall
		}
		return results[i].Unit.RelPath < results[j].Unit.RelPath
	})
	return results
}

// ByIssueCount returns all file results sorted by finding count descending,
// ties broken by relative path.
func (r *Run) ByIssueCount() []*FileResult {
	results := r.all()
	sort.Slice(results, func(i, j int) bool {
		if len(results[i].Findings) != len(results[j].Findings) {
			return len(results[i].Findings) > len(results[j].Findings)
		}
		return results[i].Unit.RelPath < results[j].Unit.RelPath
	})
	return results
}

// AverageScores holds run-wide averages of the per-file scores. Averages are
// taken across files, not re-derived from pooled issue counts.
type AverageScores struct {
	Overall         float64 `json:"overall"`
	ErrorHandling   float64 `json:"error_handling"`
	Maintainability float64 `json:"maintainability"`
	Scalability     float64 `json:"scalability"`
	Security        float64 `json:"security"`
}

// Averages computes run-wide average scores. Returns zeros when the run has
// no files.
func (r *Run) Averages() AverageScores {
	if len(r.Files) == 0 {
		return AverageScores{}
	}
	var avg AverageScores
	for _, f := range r.Files {
		avg.Overall += f.Rating.Overall
		avg.ErrorHandling += f.Rating.ErrorHandling
		avg.Maintainability += f.Rating.Maintainability
		avg.Scalability += f.Rating.Scalability
		avg.Security += f.Rating.Security
	}
	n := float64(len(r.Files))
	avg.Overall /= n
	avg.ErrorHandling /= n
	avg.Maintainability /= n
	avg.Scalability /= n
	avg.Security /= n
	return avg
}

func (r *Run) all() []*FileResult {
	results := make([]*FileResult, 0, len(r.Files))
	for _, f := range r.Files {
		results = append(results, f)
	}
	return results
}
