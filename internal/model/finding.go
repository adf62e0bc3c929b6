// Package model defines the shared data types for a pygrade analysis run:
// findings, severities, per-file metrics and ratings, and the run aggregate.
package model

// Severity classifies how urgent a finding is.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
	SeverityInfo    Severity = "INFO"
)

// Severities lists all severities from most to least urgent. Report sections
// are emitted in this order.
var Severities = []Severity{SeverityError, SeverityWarning, SeverityInfo}

// Rank returns an integer rank for comparison (ERROR=3, INFO=1).
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// IssueKind is the closed taxonomy of detectable issues.
type IssueKind string

const (
	// Error-handling kinds.
	KindMissingErrorHandling IssueKind = "MISSING_ERROR_HANDLING"
	KindBareExcept           IssueKind = "BARE_EXCEPT"
	KindUnhandledIO          IssueKind = "UNHANDLED_IO"

	// Maintainability kinds.
	KindLongFunction     IssueKind = "LONG_FUNCTION"
	KindComplexFunction  IssueKind = "COMPLEX_FUNCTION"
	KindMissingDocstring IssueKind = "MISSING_DOCSTRING"
	KindUnusedImport     IssueKind = "UNUSED_IMPORT"
	KindLongLine         IssueKind = "LONG_LINE"
	KindTodoComment      IssueKind = "TODO_COMMENT"
	KindPrintStatement   IssueKind = "PRINT_STATEMENT"

	// Scalability kinds.
	KindHardcodedConfig     IssueKind = "HARDCODED_CONFIG"
	KindResourceManagement  IssueKind = "RESOURCE_MANAGEMENT"
	KindPotentialBottleneck IssueKind = "POTENTIAL_BOTTLENECK"

	// Security kinds.
	KindSQLInjectionRisk IssueKind = "SQL_INJECTION_RISK"

	// Processing failures. These carry no per-kind score penalty; their
	// severity weight still applies.
	KindSyntaxError   IssueKind = "SYNTAX_ERROR"
	KindAnalysisError IssueKind = "ANALYSIS_ERROR"
)

// Category groups issue kinds for scoring and recommendations.
type Category string

const (
	CategoryErrorHandling   Category = "Error Handling"
	CategoryMaintainability Category = "Code Maintainability"
	CategoryScalability     Category = "Scalability"
	CategorySecurity        Category = "Security"
	CategoryNone            Category = ""
)

// Categories lists the scored categories in report order.
var Categories = []Category{
	CategoryErrorHandling,
	CategoryMaintainability,
	CategoryScalability,
	CategorySecurity,
}

// Category returns the scoring category an issue kind belongs to.
// SYNTAX_ERROR and ANALYSIS_ERROR belong to no category.
func (k IssueKind) Category() Category {
	switch k {
	case KindMissingErrorHandling, KindBareExcept, KindUnhandledIO:
		return CategoryErrorHandling
	case KindLongFunction, KindComplexFunction, KindMissingDocstring,
		KindUnusedImport, KindLongLine, KindTodoComment, KindPrintStatement:
		return CategoryMaintainability
	case KindHardcodedConfig, KindResourceManagement, KindPotentialBottleneck:
		return CategoryScalability
	case KindSQLInjectionRisk:
		return CategorySecurity
	default:
		return CategoryNone
	}
}

// Finding is one detected issue in one source file. Immutable once created.
type Finding struct {
	Kind     IssueKind `json:"type"`
	Message  string    `json:"message"`
	Line     int       `json:"line"`
	Severity Severity  `json:"severity"`
}
