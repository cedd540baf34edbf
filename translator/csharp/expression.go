package csharp

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/swiftbridge/translator/symbol"
)

// lowerExpression lowers an initializer syntax node into the closed resolved
// expression grammar. Anything outside it becomes UnsupportedExpression
// carrying the node kind.
func (i *Inspector) lowerExpression(node *sitter.Node, src []byte) symbol.Expression {
	switch node.Type() {
	case "boolean_literal":
		return &symbol.BoolLiteral{Value: node.Content(src) == "true"}
	case "integer_literal", "real_literal":
		return &symbol.NumericLiteral{Text: node.Content(src)}
	case "string_literal":
		return &symbol.StringLiteral{Text: node.Content(src)}
	case "verbatim_string_literal":
		text := strings.TrimPrefix(node.Content(src), "@")
		return &symbol.StringLiteral{Text: text, Verbatim: true}
	case "null_literal":
		return &symbol.NullLiteral{}
	case "this_expression":
		return &symbol.ThisReference{}
	case "identifier":
		return &symbol.Identifier{Name: node.Content(src)}
	case "member_access_expression":
		target := node.ChildByFieldName("expression")
		name := fieldContent(node, "name", src)
		if target == nil || name == "" {
			break
		}
		return &symbol.MemberAccess{Target: i.lowerExpression(target, src), Name: name}
	case "invocation_expression":
		callee := node.ChildByFieldName("function")
		if callee == nil {
			break
		}
		invocation := &symbol.Invocation{Callee: i.lowerExpression(callee, src)}
		if arguments := node.ChildByFieldName("arguments"); arguments != nil {
			for j := uint32(0); j < arguments.NamedChildCount(); j++ {
				argument := arguments.NamedChild(int(j))
				if argument.Type() != "argument" {
					continue
				}
				if count := argument.NamedChildCount(); count > 0 {
					inner := argument.NamedChild(int(count) - 1)
					invocation.Args = append(invocation.Args, i.lowerExpression(inner, src))
				}
			}
		}
		return invocation
	case "cast_expression":
		value := node.ChildByFieldName("value")
		typeNode := node.ChildByFieldName("type")
		if value == nil || typeNode == nil {
			break
		}
		return &symbol.Cast{Value: i.lowerExpression(value, src), TypeText: typeNode.Content(src)}
	case "parenthesized_expression":
		if node.NamedChildCount() > 0 {
			return &symbol.Parenthesized{Inner: i.lowerExpression(node.NamedChild(0), src)}
		}
	}
	return &symbol.UnsupportedExpression{Kind: node.Type()}
}
