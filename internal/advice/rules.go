// Package advice generates the recommendations section of the final report:
// one fixed human-readable sentence per distinct observed issue kind in each
// category, with a generic fallback when a category saw nothing.
package advice

import "github.com/calder-systems/pygrade/internal/model"

// Rule emits a recommendation when its trigger kinds were observed. Several
// kinds may share one sentence; the sentence is emitted at most once.
type Rule struct {
	Triggers []model.IssueKind
	Text     string
}

// CategoryAdvice is the rendered recommendation list for one category.
type CategoryAdvice struct {
	Category model.Category
	Items    []string
}

var rulesByCategory = map[model.Category][]Rule{
	model.CategoryErrorHandling: {
		{
			Triggers: []model.IssueKind{model.KindMissingErrorHandling},
			Text:     "Add proper error handling to functions that lack it, especially those performing I/O operations.",
		},
		{
			Triggers: []model.IssueKind{model.KindBareExcept},
			Text:     "Replace bare 'except:' clauses with specific exception handlers to avoid masking critical errors.",
		},
		{
			Triggers: []model.IssueKind{model.KindUnhandledIO},
			Text:     "Use try-except blocks or context managers (with statement) for all file and network operations.",
		},
	},
	model.CategoryMaintainability: {
		{
			Triggers: []model.IssueKind{model.KindMissingDocstring},
			Text:     "Add docstrings to all modules, classes, and functions to improve code clarity and maintainability.",
		},
		{
			Triggers: []model.IssueKind{model.KindLongFunction, model.KindComplexFunction},
			Text:     "Refactor long or complex functions into smaller, more focused ones with clear responsibilities.",
		},
		{
			Triggers: []model.IssueKind{model.KindUnusedImport},
			Text:     "Remove unused imports to reduce code clutter and improve performance.",
		},
		{
			Triggers: []model.IssueKind{model.KindPrintStatement},
			Text:     "Replace print statements with proper logging for better debugging and monitoring in production.",
		},
		{
			Triggers: []model.IssueKind{model.KindTodoComment},
			Text:     "Address TODO comments in the code or convert them to tracked issues in your project management system.",
		},
	},
	model.CategoryScalability: {
		{
			Triggers: []model.IssueKind{model.KindHardcodedConfig},
			Text:     "Move hardcoded configuration values to configuration files or environment variables.",
		},
		{
			Triggers: []model.IssueKind{model.KindPotentialBottleneck},
			Text:     "Review and optimize potential bottlenecks, particularly in data processing and database operations.",
		},
		{
			Triggers: []model.IssueKind{model.KindResourceManagement},
			Text:     "Ensure proper resource management with context managers (with statements) for files, connections, etc.",
		},
	},
	model.CategorySecurity: {
		{
			Triggers: []model.IssueKind{model.KindSQLInjectionRisk},
			Text:     "Use parameterized queries or ORM to prevent SQL injection vulnerabilities.",
		},
	},
}

var fallbacks = map[model.Category]string{
	model.CategoryErrorHandling:   "Implement comprehensive error handling throughout the codebase, focusing on critical operations.",
	model.CategoryMaintainability: "Follow PEP 8 style guidelines and add documentation to improve code readability.",
	model.CategoryScalability:     "Design for scalability by focusing on efficient algorithms and resource management.",
	model.CategorySecurity:        "Apply security best practices for input validation, authentication, and sensitive data handling.",
}

// ForIssueTypes returns per-category recommendations for the observed
// run-wide issue histogram, in fixed category order.
func ForIssueTypes(issueTypes map[model.IssueKind]int) []CategoryAdvice {
	result := make([]CategoryAdvice, 0, len(model.Categories))
	for _, category := range model.Categories {
		ca := CategoryAdvice{Category: category}
		for _, rule := range rulesByCategory[category] {
			if triggered(rule, issueTypes) {
				ca.Items = append(ca.Items, rule.Text)
			}
		}
		if len(ca.Items) == 0 {
			ca.Items = append(ca.Items, fallbacks[category])
		}
		result = append(result, ca)
	}
	return result
}

func triggered(rule Rule, issueTypes map[model.IssueKind]int) bool {
	for _, kind := range rule.Triggers {
		if issueTypes[kind] > 0 {
			return true
		}
	}
	return false
}
