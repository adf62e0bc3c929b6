package analyzer

import (
	"fmt"

	"github.com/calder-systems/pygrade/internal/model"
	"github.com/calder-systems/pygrade/internal/pyast"
)

// ioMethods are the call names treated as I/O operations.
var ioMethods = map[string]bool{
	"open":  true,
	"read":  true,
	"write": true,
	"close": true,
}

// ErrorHandling flags functions that contain no try statement, catch-all
// except clauses, and I/O calls made outside any enclosing try. The
// heuristics are deliberately conservative; findings are advisory.
type ErrorHandling struct {
	findings []model.Finding
	w        walker

	// Traversal scope, saved and restored at function and try boundaries.
	inTry  bool
	sawTry bool
}

// NewErrorHandling returns a fresh detector. Detectors hold per-traversal
// state and must not be reused across files.
func NewErrorHandling() *ErrorHandling {
	d := &ErrorHandling{}
	d.w.on = map[pyast.Kind]handler{
		pyast.KindFunctionDef:  d.visitFunction,
		pyast.KindTry:          d.visitTry,
		pyast.KindExceptClause: d.visitExcept,
		pyast.KindCall:         d.visitCall,
	}
	return d
}

// Inspect implements Detector.
func (d *ErrorHandling) Inspect(root *pyast.Node, _ *model.FileMetrics) []model.Finding {
	d.w.walk(root)
	return d.findings
}

func (d *ErrorHandling) visitFunction(n *pyast.Node) bool {
	prevIn, prevSaw := d.inTry, d.sawTry
	d.inTry, d.sawTry = false, false

	body := n.Field("body")
	if body != nil {
		for _, c := range body.Children {
			d.w.walk(c)
		}
		// A one-statement body is treated as a trivial accessor and skipped.
		if !d.sawTry && body.StatementCount() > 1 {
			d.findings = append(d.findings, model.Finding{
				Kind:     model.KindMissingErrorHandling,
				Message:  fmt.Sprintf("Function '%s' has no error handling", funcName(n)),
				Line:     n.Line,
				Severity: model.SeverityWarning,
			})
		}
	}

	d.inTry, d.sawTry = prevIn, prevSaw
	return false
}

func (d *ErrorHandling) visitTry(n *pyast.Node) bool {
	d.sawTry = true
	prev := d.inTry
	d.inTry = true
	for _, c := range n.Children {
		d.w.walk(c)
	}
	d.inTry = prev
	return false
}

func (d *ErrorHandling) visitExcept(n *pyast.Node) bool {
	if isBareExcept(n) {
		d.findings = append(d.findings, model.Finding{
			Kind:     model.KindBareExcept,
			Message:  "Using bare 'except:' is not recommended for production code",
			Line:     n.Line,
			Severity: model.SeverityWarning,
		})
	}
	return true
}

func (d *ErrorHandling) visitCall(n *pyast.Node) bool {
	fn := n.Field("function")
	if fn == nil || d.inTry {
		return true
	}

	switch fn.Kind {
	case pyast.KindAttribute:
		attr := fn.Field("attribute")
		if attr == nil || !ioMethods[attr.Text] {
			return true
		}
		operation := "unknown operation"
		if obj := fn.Field("object"); obj != nil && obj.Kind == pyast.KindIdentifier {
			operation = obj.Text + "." + attr.Text
		}
		d.reportUnhandledIO(n.Line, operation)
	case pyast.KindIdentifier:
		if fn.Text == "open" {
			d.reportUnhandledIO(n.Line, "open")
		}
	}
	return true
}

func (d *ErrorHandling) reportUnhandledIO(line int, operation string) {
	d.findings = append(d.findings, model.Finding{
		Kind:     model.KindUnhandledIO,
		Message:  fmt.Sprintf("IO operation '%s' without error handling", operation),
		Line:     line,
		Severity: model.SeverityWarning,
	})
}

// isBareExcept reports whether an except clause declares no exception type.
func isBareExcept(n *pyast.Node) bool {
	for _, c := range n.Children {
		if c.Kind != pyast.KindBlock && c.Kind != pyast.KindComment {
			return false
		}
	}
	return true
}
