package analyzer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/calder-systems/pygrade/internal/model"
)

// maxLineLength is the character count above which a line is flagged.
const maxLineLength = 100

var (
	todoPattern     = regexp.MustCompile(`#\s*TODO`)
	printPattern    = regexp.MustCompile(`\bprint\s*\(`)
	printDefPattern = regexp.MustCompile(`def\s+print`)
	sqlFormatRisk   = regexp.MustCompile(`execute\s*\(\s*["'].*%`)
	sqlFStringRisk  = regexp.MustCompile(`execute\s*\(\s*f["']`)
)

// ScanLines inspects raw source text line by line for patterns that are not
// easily expressed on the tree: overlong lines, TODO comments, leftover
// prints, and string-formatted SQL. A single line may yield several findings.
func ScanLines(src string) []model.Finding {
	var findings []model.Finding

	for i, line := range strings.Split(src, "\n") {
		lineNo := i + 1

		if n := utf8.RuneCountInString(line); n > maxLineLength {
			findings = append(findings, model.Finding{
				Kind:     model.KindLongLine,
				Message:  fmt.Sprintf("Line exceeds %d characters (%d)", maxLineLength, n),
				Line:     lineNo,
				Severity: model.SeverityInfo,
			})
		}

		if todoPattern.MatchString(line) {
			findings = append(findings, model.Finding{
				Kind:     model.KindTodoComment,
				Message:  "TODO comment found",
				Line:     lineNo,
				Severity: model.SeverityInfo,
			})
		}

		if printPattern.MatchString(line) && !printDefPattern.MatchString(line) {
			findings = append(findings, model.Finding{
				Kind:     model.KindPrintStatement,
				Message:  "Print statement should be replaced with proper logging",
				Line:     lineNo,
				Severity: model.SeverityInfo,
			})
		}

		if sqlFormatRisk.MatchString(line) || sqlFStringRisk.MatchString(line) {
			findings = append(findings, model.Finding{
				Kind:     model.KindSQLInjectionRisk,
				Message:  "Potential SQL injection vulnerability",
				Line:     lineNo,
				Severity: model.SeverityError,
			})
		}
	}

	return findings
}
