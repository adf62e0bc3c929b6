// Package pyast parses Python source with tree-sitter and exposes the result
// as an immutable tree of tagged nodes. Detectors dispatch on Node.Kind only
// and never see parser internals, so the grammar binding stays contained here.
package pyast

// Kind is the closed enumeration of grammar constructs the detectors care
// about. Grammar types outside this set map to KindOther and are still
// traversed.
type Kind int

const (
	KindOther Kind = iota
	KindModule
	KindFunctionDef
	KindClassDef
	KindDecorated
	KindBlock
	KindTry
	KindExceptClause
	KindFinallyClause
	KindElseClause
	KindIf
	KindElifClause
	KindFor
	KindWhile
	KindWith
	KindCall
	KindArgumentList
	KindAttribute
	KindIdentifier
	KindAssignment
	KindAugAssignment
	KindExpressionStatement
	KindBooleanOp
	KindOperator
	KindString
	KindInteger
	KindFloat
	KindList
	KindDict
	KindTuple
	KindSet
	KindTrue
	KindFalse
	KindNone
	KindImport
	KindImportFrom
	KindDottedName
	KindAliasedImport
	KindWildcardImport
	KindComment
	KindError
)

var kindNames = map[Kind]string{
	KindOther:               "other",
	KindModule:              "module",
	KindFunctionDef:         "function_definition",
	KindClassDef:            "class_definition",
	KindDecorated:           "decorated_definition",
	KindBlock:               "block",
	KindTry:                 "try_statement",
	KindExceptClause:        "except_clause",
	KindFinallyClause:       "finally_clause",
	KindElseClause:          "else_clause",
	KindIf:                  "if_statement",
	KindElifClause:          "elif_clause",
	KindFor:                 "for_statement",
	KindWhile:               "while_statement",
	KindWith:                "with_statement",
	KindCall:                "call",
	KindArgumentList:        "argument_list",
	KindAttribute:           "attribute",
	KindIdentifier:          "identifier",
	KindAssignment:          "assignment",
	KindAugAssignment:       "augmented_assignment",
	KindExpressionStatement: "expression_statement",
	KindBooleanOp:           "boolean_operator",
	KindOperator:            "operator",
	KindString:              "string",
	KindInteger:             "integer",
	KindFloat:               "float",
	KindList:                "list",
	KindDict:                "dictionary",
	KindTuple:               "tuple",
	KindSet:                 "set",
	KindTrue:                "true",
	KindFalse:               "false",
	KindNone:                "none",
	KindImport:              "import_statement",
	KindImportFrom:          "import_from_statement",
	KindDottedName:          "dotted_name",
	KindAliasedImport:       "aliased_import",
	KindWildcardImport:      "wildcard_import",
	KindComment:             "comment",
	KindError:               "ERROR",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "other"
}

// Node is one tagged syntax node. Line is 1-based. Text carries the literal
// source text for leaf nodes (identifiers, literals, comments, dotted names)
// and is empty for containers. Children holds named children in source order.
type Node struct {
	Kind     Kind
	Line     int
	Text     string
	Children []*Node

	fields map[string]*Node
}

// Field returns the named grammar field of this node (e.g. "name", "body",
// "function", "left", "right"), or nil.
func (n *Node) Field(name string) *Node {
	return n.fields[name]
}

// DescendantCount returns the number of nodes in the subtree below n,
// excluding n itself. This is the node-count size approximation the
// long-function check is built on.
func (n *Node) DescendantCount() int {
	count := 0
	for _, c := range n.Children {
		count += 1 + c.DescendantCount()
	}
	return count
}

// StatementCount returns the number of statements directly in a body block,
// ignoring interleaved comments.
func (n *Node) StatementCount() int {
	count := 0
	for _, c := range n.Children {
		if c.Kind != KindComment {
			count++
		}
	}
	return count
}

// Docstring returns the documentation string attached to a module, function,
// or class: the first statement of its body when that statement is a bare
// string expression. Returns "" when absent.
func (n *Node) Docstring() string {
	body := n
	if n.Kind == KindFunctionDef || n.Kind == KindClassDef {
		body = n.Field("body")
		if body == nil {
			return ""
		}
	}
	for _, c := range body.Children {
		if c.Kind == KindComment {
			continue
		}
		if c.Kind == KindExpressionStatement && len(c.Children) == 1 && c.Children[0].Kind == KindString {
			return c.Children[0].Text
		}
		return ""
	}
	return ""
}

// Walk visits n and its descendants in pre-order. The visit function may
// return false to skip a node's children.
func Walk(n *Node, visit func(*Node) bool) {
	if !visit(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, visit)
	}
}
