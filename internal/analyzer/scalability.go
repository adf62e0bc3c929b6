package analyzer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/calder-systems/pygrade/internal/model"
	"github.com/calder-systems/pygrade/internal/pyast"
)

// largeRangeLimit is the literal range bound above which a loop is flagged as
// a computational bottleneck.
const largeRangeLimit = 1000

// literalValueKinds are the right-hand sides that mark an uppercase
// module-level assignment as hardcoded configuration.
var literalValueKinds = map[pyast.Kind]bool{
	pyast.KindString:  true,
	pyast.KindInteger: true,
	pyast.KindFloat:   true,
	pyast.KindList:    true,
	pyast.KindDict:    true,
}

// Scalability flags hardcoded configuration constants, unmanaged resource
// acquisition, and potential bottlenecks (unbounded SQL selects, large
// literal-range loops). All checks are pure syntactic pattern matching on
// literals; variables are never resolved.
type Scalability struct {
	findings []model.Finding
	w        walker

	inWith bool
}

// NewScalability returns a fresh detector for one file.
func NewScalability() *Scalability {
	d := &Scalability{}
	d.w.on = map[pyast.Kind]handler{
		pyast.KindAssignment: d.visitAssignment,
		pyast.KindWith:       d.visitWith,
		pyast.KindCall:       d.visitCall,
		pyast.KindFor:        d.visitFor,
	}
	return d
}

// Inspect implements Detector.
func (d *Scalability) Inspect(root *pyast.Node, _ *model.FileMetrics) []model.Finding {
	d.w.walk(root)
	return d.findings
}

func (d *Scalability) visitAssignment(n *pyast.Node) bool {
	left := n.Field("left")
	right := n.Field("right")
	if left == nil || right == nil || d.inWith {
		return true
	}
	if left.Kind == pyast.KindIdentifier && isUpperName(left.Text) && literalValueKinds[right.Kind] {
		d.findings = append(d.findings, model.Finding{
			Kind:     model.KindHardcodedConfig,
			Message:  fmt.Sprintf("Hardcoded configuration value '%s'", left.Text),
			Line:     n.Line,
			Severity: model.SeverityInfo,
		})
	}
	return true
}

func (d *Scalability) visitWith(n *pyast.Node) bool {
	prev := d.inWith
	d.inWith = true
	for _, c := range n.Children {
		d.w.walk(c)
	}
	d.inWith = prev
	return false
}

func (d *Scalability) visitCall(n *pyast.Node) bool {
	fn := n.Field("function")
	if fn == nil {
		return true
	}

	if fn.Kind == pyast.KindIdentifier && fn.Text == "open" && !d.inWith {
		d.findings = append(d.findings, model.Finding{
			Kind:     model.KindResourceManagement,
			Message:  "Resource 'file' might not be properly managed",
			Line:     n.Line,
			Severity: model.SeverityWarning,
		})
	}

	if fn.Kind == pyast.KindAttribute {
		obj := fn.Field("object")
		attr := fn.Field("attribute")
		if obj != nil && obj.Kind == pyast.KindIdentifier && attr != nil &&
			(attr.Text == "execute" || attr.Text == "executemany") {
			if arg := firstArgument(n); arg != nil && arg.Kind == pyast.KindString {
				query := strings.ToUpper(arg.Text)
				if strings.Contains(query, "SELECT") && !strings.Contains(query, "LIMIT") {
					d.findings = append(d.findings, model.Finding{
						Kind:     model.KindPotentialBottleneck,
						Message:  "SQL query bottleneck: SQL query without LIMIT clause",
						Line:     n.Line,
						Severity: model.SeverityWarning,
					})
				}
			}
		}
	}
	return true
}

func (d *Scalability) visitFor(n *pyast.Node) bool {
	iter := n.Field("right")
	if iter == nil || iter.Kind != pyast.KindCall {
		return true
	}
	fn := iter.Field("function")
	if fn == nil || fn.Kind != pyast.KindIdentifier || fn.Text != "range" {
		return true
	}
	arg := firstArgument(iter)
	if arg == nil || arg.Kind != pyast.KindInteger {
		return true
	}
	if v, err := strconv.Atoi(arg.Text); err == nil && v > largeRangeLimit {
		d.findings = append(d.findings, model.Finding{
			Kind:     model.KindPotentialBottleneck,
			Message:  fmt.Sprintf("Computational bottleneck: Large range loop (n=%d)", v),
			Line:     n.Line,
			Severity: model.SeverityWarning,
		})
	}
	return true
}

// isUpperName reports whether a name is all-uppercase in the Python
// str.isupper sense: at least one cased character and no lowercase ones.
func isUpperName(name string) bool {
	hasUpper := false
	for _, r := range name {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}
