package model

// SourceUnit describes one file under analysis. Immutable after creation.
type SourceUnit struct {
	Path      string `json:"-"`
	RelPath   string `json:"path"`
	Source    []byte `json:"-"`
	LineCount int    `json:"line_count"`
	Parsed    bool   `json:"parsed"`
}

// FileMetrics accumulates per-file counters while a file's detectors run.
// It is written by one worker only and read-only once that file's pass ends.
type FileMetrics struct {
	LinesOfCode       int               `json:"lines_of_code"`
	IssueCounts       map[IssueKind]int `json:"issue_counts"`
	SeverityCounts    map[Severity]int  `json:"severity_counts"`
	ComplexityScore   int               `json:"complexity_score"`
	AvgFuncComplexity float64           `json:"avg_func_complexity"`
	MaxFuncComplexity int               `json:"max_func_complexity"`
	FunctionCount     int               `json:"functions_count"`
	ClassCount        int               `json:"classes_count"`
}

// NewFileMetrics returns an empty metrics accumulator.
func NewFileMetrics() *FileMetrics {
	return &FileMetrics{
		IssueCounts:    make(map[IssueKind]int),
		SeverityCounts: make(map[Severity]int),
	}
}

// Count records one finding in the issue and severity histograms. Counting
// every finding exactly once keeps sum(SeverityCounts) == len(findings).
func (m *FileMetrics) Count(f Finding) {
	m.IssueCounts[f.Kind]++
	m.SeverityCounts[f.Severity]++
}

// FileRating holds the derived scores for one file. All scores are in [0,10]
// and rounded to one decimal place.
type FileRating struct {
	ErrorHandling   float64 `json:"error_handling_score"`
	Maintainability float64 `json:"maintainability_score"`
	Scalability     float64 `json:"scalability_score"`
	Security        float64 `json:"security_score"`
	Overall         float64 `json:"overall_score"`
	Grade           string  `json:"grade"`
}
