package pyast

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// SyntaxError reports that the grammar could not fully match the source.
// Line points at the first error or missing node, 0 when unknown.
type SyntaxError struct {
	Line int
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid syntax at line %d", e.Line)
	}
	return "invalid syntax"
}

// grammarKinds maps tree-sitter python node types to tagged kinds.
var grammarKinds = map[string]Kind{
	"module":                KindModule,
	"function_definition":   KindFunctionDef,
	"class_definition":      KindClassDef,
	"decorated_definition":  KindDecorated,
	"block":                 KindBlock,
	"try_statement":         KindTry,
	"except_clause":         KindExceptClause,
	"finally_clause":        KindFinallyClause,
	"else_clause":           KindElseClause,
	"if_statement":          KindIf,
	"elif_clause":           KindElifClause,
	"for_statement":         KindFor,
	"while_statement":       KindWhile,
	"with_statement":        KindWith,
	"call":                  KindCall,
	"argument_list":         KindArgumentList,
	"attribute":             KindAttribute,
	"identifier":            KindIdentifier,
	"assignment":            KindAssignment,
	"augmented_assignment":  KindAugAssignment,
	"expression_statement":  KindExpressionStatement,
	"boolean_operator":      KindBooleanOp,
	"string":                KindString,
	"concatenated_string":   KindString,
	"integer":               KindInteger,
	"float":                 KindFloat,
	"list":                  KindList,
	"dictionary":            KindDict,
	"tuple":                 KindTuple,
	"set":                   KindSet,
	"true":                  KindTrue,
	"false":                 KindFalse,
	"none":                  KindNone,
	"import_statement":      KindImport,
	"import_from_statement": KindImportFrom,
	"dotted_name":           KindDottedName,
	"aliased_import":        KindAliasedImport,
	"wildcard_import":       KindWildcardImport,
	"comment":               KindComment,
	"ERROR":                 KindError,
}

// leafKinds are converted with their literal source text and no children.
var leafKinds = map[Kind]bool{
	KindIdentifier:     true,
	KindString:         true,
	KindInteger:        true,
	KindFloat:          true,
	KindTrue:           true,
	KindFalse:          true,
	KindNone:           true,
	KindDottedName:     true,
	KindWildcardImport: true,
	KindComment:        true,
}

// grammarFields lists the named fields captured per node type. Field values
// are the same objects as the corresponding entries in Children.
var grammarFields = map[string][]string{
	"function_definition":   {"name", "body"},
	"class_definition":      {"name", "body"},
	"call":                  {"function", "arguments"},
	"attribute":             {"object", "attribute"},
	"assignment":            {"left", "right"},
	"augmented_assignment":  {"left", "right"},
	"for_statement":         {"left", "right", "body"},
	"while_statement":       {"condition", "body"},
	"if_statement":          {"condition"},
	"boolean_operator":      {"left", "operator", "right"},
	"import_from_statement": {"module_name"},
	"aliased_import":        {"name", "alias"},
}

// Parse parses Python source into a tagged node tree. A non-nil *SyntaxError
// is returned alongside the tree when the grammar could not fully match; the
// error from ParseCtx itself is only non-nil for context cancellation.
func Parse(ctx context.Context, src []byte) (*Node, *SyntaxError, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	var synErr *SyntaxError
	if root.HasError() {
		synErr = &SyntaxError{Line: firstErrorLine(root)}
	}
	return convert(root, src), synErr, nil
}

// firstErrorLine locates the first error or missing node in the raw tree.
func firstErrorLine(n *sitter.Node) int {
	if n.IsMissing() || n.Type() == "ERROR" {
		return int(n.StartPoint().Row) + 1
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || !child.HasError() {
			continue
		}
		if line := firstErrorLine(child); line > 0 {
			return line
		}
	}
	return 0
}

func convert(n *sitter.Node, src []byte) *Node {
	kind, ok := grammarKinds[n.Type()]
	if !ok {
		kind = KindOther
	}

	node := &Node{
		Kind: kind,
		Line: int(n.StartPoint().Row) + 1,
	}

	if leafKinds[kind] {
		node.Text = n.Content(src)
		return node
	}

	// Locate field children by start byte so field values alias the entries
	// in Children rather than being converted twice.
	var fieldAt map[uint32][]string
	if names := grammarFields[n.Type()]; len(names) > 0 {
		fieldAt = make(map[uint32][]string, len(names))
		node.fields = make(map[string]*Node, len(names))
		for _, name := range names {
			if f := n.ChildByFieldName(name); f != nil {
				fieldAt[f.StartByte()] = append(fieldAt[f.StartByte()], name)
			}
		}
	}

	count := int(n.NamedChildCount())
	node.Children = make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		child := n.NamedChild(i)
		converted := convert(child, src)
		node.Children = append(node.Children, converted)
		for _, name := range fieldAt[child.StartByte()] {
			node.fields[name] = converted
		}
	}

	// Anonymous field tokens (e.g. the and/or of a boolean_operator) are not
	// named children; convert them as bare operator leaves.
	for _, name := range grammarFields[n.Type()] {
		if node.fields[name] != nil {
			continue
		}
		f := n.ChildByFieldName(name)
		if f == nil {
			continue
		}
		node.fields[name] = &Node{
			Kind: KindOperator,
			Line: int(f.StartPoint().Row) + 1,
			Text: f.Content(src),
		}
	}

	return node
}
