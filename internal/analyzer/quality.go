package analyzer

import (
	"fmt"
	"strings"

	"github.com/calder-systems/pygrade/internal/model"
	"github.com/calder-systems/pygrade/internal/pyast"
)

// longFunctionNodes is the subtree node count above which a function is
// flagged as too long. This is a node-count approximation of size, not a
// literal line count.
const longFunctionNodes = 30

// complexFunctionLimit is the cyclomatic approximation above which a function
// is flagged as too complex.
const complexFunctionLimit = 10

// Quality flags missing docstrings, oversized and overly complex functions,
// and records every import as a possibly-unused candidate. The unused-import
// check is best-effort by design: it never cross-references actual usage.
type Quality struct {
	findings []model.Finding
	w        walker
}

// NewQuality returns a fresh detector for one file.
func NewQuality() *Quality {
	d := &Quality{}
	d.w.on = map[pyast.Kind]handler{
		pyast.KindFunctionDef: d.visitFunction,
		pyast.KindClassDef:    d.visitClass,
		pyast.KindImport:      d.visitImport,
		pyast.KindImportFrom:  d.visitImportFrom,
	}
	return d
}

// Inspect implements Detector.
func (d *Quality) Inspect(root *pyast.Node, _ *model.FileMetrics) []model.Finding {
	if root.Kind == pyast.KindModule && root.Docstring() == "" {
		d.missingDocstring("Module", "module", 1)
	}
	d.w.walk(root)
	return d.findings
}

func (d *Quality) visitFunction(n *pyast.Node) bool {
	name := funcName(n)
	if n.Docstring() == "" {
		d.missingDocstring("Function", name, n.Line)
	}

	if size := n.DescendantCount(); size > longFunctionNodes {
		d.findings = append(d.findings, model.Finding{
			Kind:     model.KindLongFunction,
			Message:  fmt.Sprintf("Function '%s' is too long (%d lines)", name, size),
			Line:     n.Line,
			Severity: model.SeverityInfo,
		})
	}

	if cx := cyclomaticApprox(n); cx > complexFunctionLimit {
		d.findings = append(d.findings, model.Finding{
			Kind:     model.KindComplexFunction,
			Message:  fmt.Sprintf("Function '%s' has high cyclomatic complexity (%d)", name, cx),
			Line:     n.Line,
			Severity: model.SeverityWarning,
		})
	}
	return true
}

func (d *Quality) visitClass(n *pyast.Node) bool {
	if n.Docstring() == "" {
		d.missingDocstring("Class", funcName(n), n.Line)
	}
	return true
}

func (d *Quality) visitImport(n *pyast.Node) bool {
	for _, c := range n.Children {
		switch c.Kind {
		case pyast.KindDottedName:
			d.possiblyUnused(c.Text, n.Line)
		case pyast.KindAliasedImport:
			if name := c.Field("name"); name != nil {
				d.possiblyUnused(name.Text, n.Line)
			}
		}
	}
	return false
}

func (d *Quality) visitImportFrom(n *pyast.Node) bool {
	module := n.Field("module_name")
	// Relative imports ("from . import x") carry no module name to report.
	if module == nil || module.Kind != pyast.KindDottedName {
		return false
	}
	base, _, _ := strings.Cut(module.Text, ".")

	for _, c := range n.Children {
		if c == module {
			continue
		}
		switch c.Kind {
		case pyast.KindDottedName:
			d.possiblyUnused(base+"."+c.Text, n.Line)
		case pyast.KindAliasedImport:
			if name := c.Field("name"); name != nil {
				d.possiblyUnused(base+"."+name.Text, n.Line)
			}
		}
	}
	return false
}

func (d *Quality) missingDocstring(itemType, name string, line int) {
	d.findings = append(d.findings, model.Finding{
		Kind:     model.KindMissingDocstring,
		Message:  fmt.Sprintf("%s '%s' is missing a docstring", itemType, name),
		Line:     line,
		Severity: model.SeverityInfo,
	})
}

func (d *Quality) possiblyUnused(name string, line int) {
	d.findings = append(d.findings, model.Finding{
		Kind:     model.KindUnusedImport,
		Message:  fmt.Sprintf("Import '%s' might be unused", name),
		Line:     line,
		Severity: model.SeverityInfo,
	})
}
