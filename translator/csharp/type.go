package csharp

import (
	"strings"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/swiftbridge/translator/symbol"
)

// predefined maps C# type keywords to their root system namespace names;
// the bool marks value types.
var predefined = map[string]struct {
	name  string
	value bool
}{
	"bool":    {"Boolean", true},
	"byte":    {"Byte", true},
	"sbyte":   {"SByte", true},
	"short":   {"Int16", true},
	"ushort":  {"UInt16", true},
	"int":     {"Int32", true},
	"uint":    {"UInt32", true},
	"long":    {"Int64", true},
	"ulong":   {"UInt64", true},
	"float":   {"Single", true},
	"double":  {"Double", true},
	"decimal": {"Decimal", true},
	"char":    {"Char", true},
	"nint":    {"IntPtr", true},
	"nuint":   {"UIntPtr", true},
	"void":    {"Void", true},
	"object":  {"Object", false},
	"string":  {"String", false},
}

// systemNames lets explicitly written System type names (Int32, String, ...)
// resolve the same way their keyword forms do.
var systemNames = map[string]bool{}

func init() {
	for _, entry := range predefined {
		systemNames[entry.name] = entry.value
	}
}

// registry records type names declared anywhere in the compilation so member
// types resolve with their declared kind
type registry struct {
	kinds map[string]symbol.DeclKind
}

func newRegistry() *registry {
	return &registry{kinds: map[string]symbol.DeclKind{}}
}

// register walks a whole parse tree recording declared type names
func (r *registry) register(node *sitter.Node, src []byte) {
	if kind, ok := declKinds[node.Type()]; ok {
		if name := node.ChildByFieldName("name"); name != nil {
			r.kinds[name.Content(src)] = kind
		}
	}
	for j := uint32(0); j < node.NamedChildCount(); j++ {
		r.register(node.NamedChild(int(j)), src)
	}
}

// resolveType resolves a type syntax node. Resolution here is light binding:
// predefined keywords, structural types, names declared in this compilation
// and generic parameters in scope; any other name resolves as a named
// reference type.
func (i *Inspector) resolveType(node *sitter.Node, src []byte, reg *registry, typeParams map[string]bool) *symbol.Type {
	if node == nil {
		return nil
	}
	switch node.Type() {
	case "void_keyword":
		return &symbol.Type{Kind: symbol.KindNamed, Name: "Void", Namespace: "System"}
	case "predefined_type":
		text := node.Content(src)
		if entry, ok := predefined[text]; ok {
			return &symbol.Type{Kind: symbol.KindNamed, Name: entry.name, Namespace: "System", IsReference: !entry.value}
		}
		return &symbol.Type{Kind: symbol.KindNamed, Name: text}
	case "array_type":
		element := i.resolveType(node.ChildByFieldName("type"), src, reg, typeParams)
		return &symbol.Type{Kind: symbol.KindArray, Element: element, IsReference: true}
	case "nullable_type":
		if node.NamedChildCount() > 0 {
			return i.resolveType(node.NamedChild(0), src, reg, typeParams)
		}
		return &symbol.Type{Kind: symbol.KindError, Name: node.Content(src)}
	case "pointer_type":
		return &symbol.Type{Kind: symbol.KindPointer, Name: node.Content(src)}
	case "identifier", "qualified_name", "generic_name":
		return i.resolveName(node, src, reg, typeParams)
	}
	return &symbol.Type{Kind: symbol.KindError, Name: node.Content(src)}
}

func (i *Inspector) resolveName(node *sitter.Node, src []byte, reg *registry, typeParams map[string]bool) *symbol.Type {
	name := node.Content(src)
	namespace := ""
	switch node.Type() {
	case "qualified_name":
		name = fieldContent(node, "name", src)
		namespace = fieldContent(node, "qualifier", src)
		if name == "" {
			full := node.Content(src)
			if idx := strings.LastIndex(full, "."); idx != -1 {
				namespace, name = full[:idx], full[idx+1:]
			}
		}
	case "generic_name":
		// generics are unhandled; the bare name passes through
		if base := node.NamedChild(0); base != nil && base.Type() == "identifier" {
			name = base.Content(src)
		}
	}
	if name == "dynamic" && namespace == "" {
		return &symbol.Type{Kind: symbol.KindDynamic, Name: name, IsReference: true}
	}
	if typeParams[name] && namespace == "" {
		return &symbol.Type{Kind: symbol.KindTypeParameter, Name: name}
	}
	if kind, ok := reg.kinds[name]; ok && namespace == "" {
		return &symbol.Type{
			Kind:        symbol.KindNamed,
			Name:        name,
			IsReference: kind != symbol.DeclStruct && kind != symbol.DeclEnum,
		}
	}
	if value, ok := systemNames[name]; ok && (namespace == "" || namespace == "System") {
		return &symbol.Type{Kind: symbol.KindNamed, Name: name, Namespace: "System", IsReference: !value}
	}
	return &symbol.Type{Kind: symbol.KindNamed, Name: name, Namespace: namespace, IsReference: true}
}

// isInterface classifies a resolved base-list entry, falling back to the
// I-prefix naming convention for names declared outside this compilation
func isInterface(t *symbol.Type, reg *registry) bool {
	if kind, ok := reg.kinds[t.Name]; ok {
		return kind == symbol.DeclInterface
	}
	runes := []rune(t.Name)
	return len(runes) >= 2 && runes[0] == 'I' && unicode.IsUpper(runes[1])
}
