package csharp

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/swiftbridge/translator/symbol"
)

var declKinds = map[string]symbol.DeclKind{
	"class_declaration":     symbol.DeclClass,
	"struct_declaration":    symbol.DeclStruct,
	"interface_declaration": symbol.DeclInterface,
	"enum_declaration":      symbol.DeclEnum,
	"delegate_declaration":  symbol.DeclDelegate,
}

// parseDeclaration resolves one type declaration node. A declaration whose
// name cannot be resolved is returned with a nil symbol; the collector skips
// it silently.
func (i *Inspector) parseDeclaration(node *sitter.Node, src []byte, reg *registry) *symbol.Declaration {
	kind := declKinds[node.Type()]
	decl := &symbol.Declaration{Kind: kind, Trivia: leadingTrivia(node, src)}

	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return decl
	}
	decl.Name = nameNode.Content(src)
	decl.Symbol = &symbol.Type{
		Kind:        symbol.KindNamed,
		Name:        decl.Name,
		IsReference: kind != symbol.DeclStruct && kind != symbol.DeclEnum,
	}

	typeParams := typeParameterSet(node, src)
	i.parseBases(node, src, decl.Symbol, reg, typeParams)

	if kind != symbol.DeclClass && kind != symbol.DeclStruct {
		return decl
	}
	body := node.ChildByFieldName("body")
	if body == nil {
		return decl
	}
	for j := uint32(0); j < body.NamedChildCount(); j++ {
		child := body.NamedChild(int(j))
		switch child.Type() {
		case "field_declaration":
			if field := i.parseField(child, src, reg, typeParams); field != nil {
				decl.Members = append(decl.Members, field)
			}
		case "method_declaration":
			if method := i.parseMethod(child, src, reg, typeParams); method != nil {
				decl.Members = append(decl.Members, method)
			}
		default:
			decl.Members = append(decl.Members, &symbol.Unsupported{Kind: child.Type()})
		}
	}
	return decl
}

// parseBases splits the base list into one base type and the capability set.
// Registered interfaces classify as capabilities; for unknown names the
// I-prefix convention decides.
func (i *Inspector) parseBases(node *sitter.Node, src []byte, sym *symbol.Type, reg *registry, typeParams map[string]bool) {
	bases := childOfType(node, "base_list")
	if bases == nil {
		return
	}
	for j := uint32(0); j < bases.NamedChildCount(); j++ {
		resolved := i.resolveType(bases.NamedChild(int(j)), src, reg, typeParams)
		if resolved == nil {
			continue
		}
		if sym.Base == nil && !isInterface(resolved, reg) {
			sym.Base = resolved
			continue
		}
		sym.Capabilities = append(sym.Capabilities, resolved)
	}
}

// parseField extracts one field declaration group; co-declared names share
// the type, the modifiers and the initializer.
func (i *Inspector) parseField(node *sitter.Node, src []byte, reg *registry, typeParams map[string]bool) *symbol.Field {
	varDecl := childOfType(node, "variable_declaration")
	if varDecl == nil {
		return nil
	}
	field := &symbol.Field{
		Trivia: leadingTrivia(node, src),
		Access: symbol.AccessPrivate, // C# member default
		Type:   i.resolveType(varDecl.ChildByFieldName("type"), src, reg, typeParams),
	}
	for _, modifier := range modifiers(node, src) {
		switch modifier {
		case "static":
			field.Static = true
		case "readonly":
			field.ReadOnly = true
		case "const":
			field.ReadOnly = true
			field.Static = true
		default:
			field.Access = accessibility(modifier, field.Access)
		}
	}
	for j := uint32(0); j < varDecl.NamedChildCount(); j++ {
		declarator := varDecl.NamedChild(int(j))
		if declarator.Type() != "variable_declarator" {
			continue
		}
		name := declaratorName(declarator, src)
		if name == "" {
			continue
		}
		field.Names = append(field.Names, name)
		if field.Initializer == nil {
			if value := declaratorValue(declarator); value != nil {
				field.Initializer = i.lowerExpression(value, src)
			}
		}
	}
	if len(field.Names) == 0 {
		return nil
	}
	return field
}

// parseMethod extracts one method signature; the body is never carried
func (i *Inspector) parseMethod(node *sitter.Node, src []byte, reg *registry, typeParams map[string]bool) *symbol.Method {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	method := &symbol.Method{
		Name:   nameNode.Content(src),
		Trivia: leadingTrivia(node, src),
		Access: symbol.AccessPrivate,
	}
	for _, modifier := range modifiers(node, src) {
		switch modifier {
		case "static":
			method.Static = true
		case "override":
			method.Override = true
		case "sealed":
			method.Sealed = true
		case "abstract":
			method.Abstract = true
		case "virtual":
			method.Virtual = true
		default:
			method.Access = accessibility(modifier, method.Access)
		}
	}
	scope := typeParameterSet(node, src)
	for name := range typeParams {
		scope[name] = true
	}
	returns := node.ChildByFieldName("type")
	if returns == nil {
		returns = node.ChildByFieldName("returns")
	}
	method.Returns = i.resolveType(returns, src, reg, scope)

	if params := node.ChildByFieldName("parameters"); params != nil {
		for j := uint32(0); j < params.NamedChildCount(); j++ {
			param := params.NamedChild(int(j))
			if param.Type() != "parameter" {
				continue
			}
			method.Params = append(method.Params, symbol.Parameter{
				Name: fieldContent(param, "name", src),
				Type: i.resolveType(param.ChildByFieldName("type"), src, reg, scope),
			})
		}
	}
	return method
}

// modifiers lists the modifier keywords attached to a declaration node
func modifiers(node *sitter.Node, src []byte) []string {
	var out []string
	for j := uint32(0); j < node.NamedChildCount(); j++ {
		child := node.NamedChild(int(j))
		if child.Type() == "modifier" {
			out = append(out, child.Content(src))
		}
	}
	return out
}

func accessibility(modifier string, current symbol.Accessibility) symbol.Accessibility {
	switch modifier {
	case "public":
		return symbol.AccessPublic
	case "internal":
		return symbol.AccessInternal
	case "protected":
		return symbol.AccessProtected
	case "private":
		return symbol.AccessPrivate
	}
	return current
}

// declaratorName returns the declared variable name
func declaratorName(declarator *sitter.Node, src []byte) string {
	if name := declarator.ChildByFieldName("name"); name != nil {
		return name.Content(src)
	}
	if first := declarator.NamedChild(0); first != nil && first.Type() == "identifier" {
		return first.Content(src)
	}
	return ""
}

// declaratorValue returns the initializer expression node, unwrapping an
// equals_value_clause when the grammar produces one.
func declaratorValue(declarator *sitter.Node) *sitter.Node {
	for j := uint32(0); j < declarator.NamedChildCount(); j++ {
		child := declarator.NamedChild(int(j))
		switch child.Type() {
		case "identifier", "bracketed_argument_list":
			continue
		case "equals_value_clause":
			if count := child.NamedChildCount(); count > 0 {
				return child.NamedChild(int(count) - 1)
			}
			return nil
		}
		return child
	}
	return nil
}

// childOfType returns the first named child with the given node type
func childOfType(node *sitter.Node, nodeType string) *sitter.Node {
	for j := uint32(0); j < node.NamedChildCount(); j++ {
		child := node.NamedChild(int(j))
		if child.Type() == nodeType {
			return child
		}
	}
	return nil
}

// typeParameterSet collects the declared generic parameter names in scope
func typeParameterSet(node *sitter.Node, src []byte) map[string]bool {
	out := map[string]bool{}
	params := childOfType(node, "type_parameter_list")
	if params == nil {
		return out
	}
	for j := uint32(0); j < params.NamedChildCount(); j++ {
		param := params.NamedChild(int(j))
		if param.Type() != "type_parameter" {
			continue
		}
		if name := param.ChildByFieldName("name"); name != nil {
			out[name.Content(src)] = true
		} else {
			out[param.Content(src)] = true
		}
	}
	return out
}
