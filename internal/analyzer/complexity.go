package analyzer

import (
	"github.com/calder-systems/pygrade/internal/model"
	"github.com/calder-systems/pygrade/internal/pyast"
)

// cyclomaticApprox returns the syntactic branch-count approximation for a
// function subtree: 1 base, +1 per conditional or loop, +1 per except
// clause, +1 per binary short-circuit "and". This is a heuristic, not a
// control-flow-graph metric.
func cyclomaticApprox(fn *pyast.Node) int {
	cx := 1
	pyast.Walk(fn, func(n *pyast.Node) bool {
		if n == fn {
			return true
		}
		switch n.Kind {
		case pyast.KindIf, pyast.KindElifClause, pyast.KindWhile, pyast.KindFor:
			cx++
		case pyast.KindExceptClause:
			cx++
		case pyast.KindBooleanOp:
			if op := n.Field("operator"); op != nil && op.Text == "and" {
				cx++
			}
		}
		return true
	})
	return cx
}

// ComplexityMetrics derives the per-file complexity score and function/class
// counts. The file score is the sum of every function's approximation plus
// one per class. Nested functions are scored individually; their branches
// also remain part of the enclosing function's subtree.
type ComplexityMetrics struct{}

// NewComplexityMetrics returns the metrics detector. It is stateless and
// emits no findings.
func NewComplexityMetrics() ComplexityMetrics {
	return ComplexityMetrics{}
}

// Inspect implements Detector.
func (ComplexityMetrics) Inspect(root *pyast.Node, metrics *model.FileMetrics) []model.Finding {
	var sum, max, functions, classes int

	pyast.Walk(root, func(n *pyast.Node) bool {
		switch n.Kind {
		case pyast.KindClassDef:
			classes++
		case pyast.KindFunctionDef:
			cx := cyclomaticApprox(n)
			functions++
			sum += cx
			if cx > max {
				max = cx
			}
		}
		return true
	})

	metrics.ComplexityScore = sum + classes
	metrics.FunctionCount = functions
	metrics.ClassCount = classes
	metrics.MaxFuncComplexity = max
	if functions > 0 {
		metrics.AvgFuncComplexity = float64(sum) / float64(functions)
	}
	return nil
}
