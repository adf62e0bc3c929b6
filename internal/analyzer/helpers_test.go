package analyzer

import (
	"context"
	"testing"

	"github.com/calder-systems/pygrade/internal/model"
	"github.com/calder-systems/pygrade/internal/pyast"
)

func parseSrc(t *testing.T, src string) *pyast.Node {
	t.Helper()
	root, synErr, err := pyast.Parse(context.Background(), []byte(src))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if synErr != nil {
		t.Fatalf("unexpected syntax error: %v", synErr)
	}
	return root
}

func ofKind(findings []model.Finding, kind model.IssueKind) []model.Finding {
	var out []model.Finding
	for _, f := range findings {
		if f.Kind == kind {
			out = append(out, f)
		}
	}
	return out
}
