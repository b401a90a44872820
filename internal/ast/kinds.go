package ast

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// The closed set of node kinds the matchers and mutators recognize. Anything
// outside this set at an anchor position is an unsupported shape.
const (
	KindProgram             = "program"
	KindObject              = "object"
	KindArray               = "array"
	KindPair                = "pair"
	KindShorthandProperty   = "shorthand_property_identifier"
	KindSpread              = "spread_element"
	KindCall                = "call_expression"
	KindMember              = "member_expression"
	KindArguments           = "arguments"
	KindIdentifier          = "identifier"
	KindPropertyIdentifier  = "property_identifier"
	KindString              = "string"
	KindImport              = "import_statement"
	KindImportClause        = "import_clause"
	KindNamedImports        = "named_imports"
	KindImportSpecifier     = "import_specifier"
	KindExport              = "export_statement"
	KindExpressionStatement = "expression_statement"
	KindAssignment          = "assignment_expression"
	KindLexicalDeclaration  = "lexical_declaration"
	KindVariableDeclaration = "variable_declaration"
	KindVariableDeclarator  = "variable_declarator"
	KindReturn              = "return_statement"
	KindParenthesized       = "parenthesized_expression"
	KindJSXElement          = "jsx_element"
	KindJSXSelfClosing      = "jsx_self_closing_element"
	KindJSXOpening          = "jsx_opening_element"
	KindHashBang            = "hash_bang_line"
)

// IsJSX reports whether n is a JSX element node.
func IsJSX(n *sitter.Node) bool {
	if n == nil {
		return false
	}
	switch n.Type() {
	case KindJSXElement, KindJSXSelfClosing:
		return true
	}
	return false
}

// Unwrap strips parentheses and TypeScript type assertions so shape checks
// see the underlying expression.
func Unwrap(n *sitter.Node) *sitter.Node {
	for n != nil {
		switch n.Type() {
		case KindParenthesized:
			n = n.NamedChild(0)
		case "as_expression", "satisfies_expression", "non_null_expression":
			n = n.NamedChild(0)
		default:
			return n
		}
	}
	return nil
}

// JSXTagName returns the tag name of a JSX element ("App", "React.StrictMode").
func (t *Tree) JSXTagName(n *sitter.Node) string {
	switch n.Type() {
	case KindJSXSelfClosing:
		if name := n.ChildByFieldName("name"); name != nil {
			return t.Text(name)
		}
	case KindJSXElement:
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			if child.Type() == KindJSXOpening {
				if name := child.ChildByFieldName("name"); name != nil {
					return t.Text(name)
				}
			}
		}
	}
	return ""
}

// StringValue returns the contents of a string literal node without quotes.
func (t *Tree) StringValue(n *sitter.Node) string {
	text := t.Text(n)
	if len(text) >= 2 {
		switch text[0] {
		case '"', '\'', '`':
			return text[1 : len(text)-1]
		}
	}
	return text
}

// PropertyKey returns the key name of an object property node, handling both
// identifier and string-literal keys. Empty for non-property nodes.
func (t *Tree) PropertyKey(n *sitter.Node) string {
	switch n.Type() {
	case KindPair:
		key := n.ChildByFieldName("key")
		if key == nil {
			return ""
		}
		if key.Type() == KindString {
			return t.StringValue(key)
		}
		return t.Text(key)
	case KindShorthandProperty:
		return t.Text(n)
	}
	return ""
}

// LineIndent returns the run of spaces and tabs between the start of n's line
// and n itself, and whether n starts its own line. Used to match surrounding
// indentation when inserting new properties or elements.
func (t *Tree) LineIndent(n *sitter.Node) (indent string, ownLine bool) {
	start := int(n.StartByte())
	i := start
	for i > 0 {
		c := t.src[i-1]
		if c == ' ' || c == '\t' {
			i--
			continue
		}
		break
	}
	if i == 0 || t.src[i-1] == '\n' {
		return string(t.src[i:start]), true
	}
	return "", false
}

// IndentOfLine returns the leading whitespace of the line n starts on,
// regardless of whether n itself starts the line.
func (t *Tree) IndentOfLine(n *sitter.Node) string {
	lineStart := int(n.StartByte())
	for lineStart > 0 && t.src[lineStart-1] != '\n' {
		lineStart--
	}
	end := lineStart
	for end < len(t.src) && (t.src[end] == ' ' || t.src[end] == '\t') {
		end++
	}
	return string(t.src[lineStart:end])
}

// baseCallee returns the identifier a value reduces to for structural
// comparison: a bare identifier yields itself, a call yields its callee text.
func baseCallee(t *Tree, n *sitter.Node) string {
	n = Unwrap(n)
	if n == nil {
		return ""
	}
	switch n.Type() {
	case KindIdentifier:
		return t.Text(n)
	case KindCall:
		if fn := n.ChildByFieldName("function"); fn != nil {
			return t.Text(fn)
		}
	}
	return ""
}

// BaseName reduces a source expression string the same way baseCallee reduces
// a node: "relay()" and "relay" both yield "relay".
func BaseName(expr string) string {
	expr = strings.TrimSpace(expr)
	if i := strings.IndexByte(expr, '('); i > 0 {
		return strings.TrimSpace(expr[:i])
	}
	return expr
}

// SameReference reports whether node n and source expression expr refer to
// the same binding (identity rule for array element upserts).
func (t *Tree) SameReference(n *sitter.Node, expr string) bool {
	base := baseCallee(t, n)
	return base != "" && base == BaseName(expr)
}
