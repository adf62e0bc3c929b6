package analyzer

import (
	"testing"

	"github.com/calder-systems/pygrade/internal/model"
	"github.com/calder-systems/pygrade/internal/pyast"
)

func firstFunction(t *testing.T, src string) *pyast.Node {
	t.Helper()
	var fn *pyast.Node
	pyast.Walk(parseSrc(t, src), func(n *pyast.Node) bool {
		if fn == nil && n.Kind == pyast.KindFunctionDef {
			fn = n
		}
		return fn == nil
	})
	if fn == nil {
		t.Fatal("no function found")
	}
	return fn
}

func TestCyclomaticApprox(t *testing.T) {
	src := `def f(x):
    if x and x > 1:
        pass
    elif x < 0:
        pass
    while x:
        x -= 1
    for i in x:
        pass
    try:
        pass
    except ValueError:
        pass
`
	if got := cyclomaticApprox(firstFunction(t, src)); got != 7 {
		t.Errorf("complexity = %d, want 7", got)
	}
}

func TestCyclomaticApprox_OrNotCounted(t *testing.T) {
	fn := firstFunction(t, "def g(a, b):\n    return a or b\n")
	if got := cyclomaticApprox(fn); got != 1 {
		t.Errorf("complexity = %d, want 1", got)
	}
}

func TestComplexityMetrics(t *testing.T) {
	src := `"""M."""


class Store:
    """S."""


def one():
    """D."""
    return 1


def branchy(x):
    """D."""
    if x:
        return 1
    if x > 2:
        return 2
    return 3
`
	metrics := model.NewFileMetrics()
	NewComplexityMetrics().Inspect(parseSrc(t, src), metrics)

	if metrics.ComplexityScore != 5 {
		t.Errorf("complexity score = %d, want 5", metrics.ComplexityScore)
	}
	if metrics.FunctionCount != 2 {
		t.Errorf("function count = %d, want 2", metrics.FunctionCount)
	}
	if metrics.ClassCount != 1 {
		t.Errorf("class count = %d, want 1", metrics.ClassCount)
	}
	if metrics.MaxFuncComplexity != 3 {
		t.Errorf("max complexity = %d, want 3", metrics.MaxFuncComplexity)
	}
	if metrics.AvgFuncComplexity != 2.0 {
		t.Errorf("avg complexity = %f, want 2.0", metrics.AvgFuncComplexity)
	}
}
