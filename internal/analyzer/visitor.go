// Package analyzer implements the per-file analysis passes: four independent
// tree detectors over the tagged syntax tree plus a raw line scanner.
package analyzer

import (
	"github.com/calder-systems/pygrade/internal/model"
	"github.com/calder-systems/pygrade/internal/pyast"
)

// handler processes one node during traversal. Returning true recurses into
// the node's children; handlers that need custom child traversal (scope push
// and pop) walk the children themselves and return false.
type handler func(*pyast.Node) bool

// walker dispatches nodes by kind. Unhandled kinds recurse into children by
// default. All traversal state lives on the owning detector, never in package
// scope, so concurrent per-file analyses cannot interfere.
type walker struct {
	on map[pyast.Kind]handler
}

func (w *walker) walk(n *pyast.Node) {
	if h, ok := w.on[n.Kind]; ok {
		if !h(n) {
			return
		}
	}
	for _, c := range n.Children {
		w.walk(c)
	}
}

// Detector is one independent pass over a parsed file. Implementations append
// findings and update metrics only; the tree is never mutated.
type Detector interface {
	Inspect(root *pyast.Node, metrics *model.FileMetrics) []model.Finding
}

// funcName returns a function or class definition's name, or "?" when the
// name field is absent (possible on malformed subtrees).
func funcName(n *pyast.Node) string {
	if name := n.Field("name"); name != nil && name.Text != "" {
		return name.Text
	}
	return "?"
}

// firstArgument returns the first non-comment argument of a call, or nil.
func firstArgument(call *pyast.Node) *pyast.Node {
	args := call.Field("arguments")
	if args == nil {
		return nil
	}
	for _, c := range args.Children {
		if c.Kind != pyast.KindComment {
			return c
		}
	}
	return nil
}
