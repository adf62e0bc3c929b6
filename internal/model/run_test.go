package model

import "testing"

func resultWith(relPath string, overall float64, findings int) *FileResult {
	r := &FileResult{
		Unit:    SourceUnit{RelPath: relPath},
		Metrics: NewFileMetrics(),
		Rating:  FileRating{Overall: overall},
	}
	for i := 0; i < findings; i++ {
		f := Finding{Kind: KindMissingDocstring, Severity: SeverityInfo}
		r.Findings = append(r.Findings, f)
		r.Metrics.Count(f)
	}
	return r
}

func testRun() *Run {
	run := NewRun("/src")
	for _, r := range []*FileResult{
		resultWith("a.py", 10.0, 0),
		resultWith("b.py", 7.5, 3),
		resultWith("c.py", 7.5, 1),
		resultWith("d.py", 4.0, 6),
	} {
		run.Files[r.Unit.RelPath] = r
	}
	return run
}

func TestRunTotals(t *testing.T) {
	run := testRun()

	if got := run.TotalFiles(); got != 4 {
		t.Errorf("total files = %d, want 4", got)
	}
	if got := run.FilesWithIssues(); got != 3 {
		t.Errorf("files with issues = %d, want 3", got)
	}
	if got := run.TotalIssues(); got != 10 {
		t.Errorf("total issues = %d, want 10", got)
	}
	if got := run.SeverityTotals()[SeverityInfo]; got != 10 {
		t.Errorf("INFO total = %d, want 10", got)
	}
	if got := run.IssueTypeTotals()[KindMissingDocstring]; got != 10 {
		t.Errorf("MISSING_DOCSTRING total = %d, want 10", got)
	}
}

func TestByScore_TieBreaksOnPath(t *testing.T) {
	byScore := testRun().ByScore()

	want := []string{"a.py", "b.py", "c.py", "d.py"}
	for i, relPath := range want {
		if byScore[i].Unit.RelPath != relPath {
			t.Errorf("byScore[%d] = %q, want %q", i, byScore[i].Unit.RelPath, relPath)
		}
	}
}

func TestByIssueCount(t *testing.T) {
	byCount := testRun().ByIssueCount()

	want := []string{"d.py", "b.py", "c.py", "a.py"}
	for i, relPath := range want {
		if byCount[i].Unit.RelPath != relPath {
			t.Errorf("byIssueCount[%d] = %q, want %q", i, byCount[i].Unit.RelPath, relPath)
		}
	}
}

func TestAverages(t *testing.T) {
	run := NewRun("/src")
	run.Files["a.py"] = &FileResult{
		Unit:   SourceUnit{RelPath: "a.py"},
		Rating: FileRating{Overall: 10.0, ErrorHandling: 10.0, Maintainability: 8.0, Scalability: 10.0, Security: 10.0},
	}
	run.Files["b.py"] = &FileResult{
		Unit:   SourceUnit{RelPath: "b.py"},
		Rating: FileRating{Overall: 6.0, ErrorHandling: 4.0, Maintainability: 6.0, Scalability: 8.0, Security: 6.0},
	}

	avg := run.Averages()
	if avg.Overall != 8.0 {
		t.Errorf("overall average = %v, want 8.0", avg.Overall)
	}
	if avg.ErrorHandling != 7.0 {
		t.Errorf("error handling average = %v, want 7.0", avg.ErrorHandling)
	}
	if avg.Maintainability != 7.0 {
		t.Errorf("maintainability average = %v, want 7.0", avg.Maintainability)
	}
}

func TestAverages_EmptyRun(t *testing.T) {
	avg := NewRun("/src").Averages()
	if avg != (AverageScores{}) {
		t.Errorf("empty run averages = %+v, want zeros", avg)
	}
}

func TestCategoryMapping(t *testing.T) {
	cases := []struct {
		kind IssueKind
		want Category
	}{
		{KindBareExcept, CategoryErrorHandling},
		{KindLongLine, CategoryMaintainability},
		{KindHardcodedConfig, CategoryScalability},
		{KindSQLInjectionRisk, CategorySecurity},
		{KindSyntaxError, CategoryNone},
		{KindAnalysisError, CategoryNone},
	}
	for _, tc := range cases {
		if got := tc.kind.Category(); got != tc.want {
			t.Errorf("%s category = %q, want %q", tc.kind, got, tc.want)
		}
	}
}
