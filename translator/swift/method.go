package swift

import (
	"github.com/viant/swiftbridge/translator/diag"
	"github.com/viant/swiftbridge/translator/symbol"
)

// ParamDecl is one translated method parameter
type ParamDecl struct {
	Name     string
	TypeName string
}

// MethodDecl is one method signature of the target declaration tree; bodies
// are always empty since statement translation is out of scope.
type MethodDecl struct {
	Doc    string
	Access string
	Slot   string // static or override, empty otherwise
	Name   string
	Params []ParamDecl
	Result string // empty for void
}

func (*MethodDecl) memberDecl() {}

// translateMethod builds a method signature. Slot qualifiers resolve by
// priority static > override > abstract > virtual > default. Abstract
// methods still emit; the shortfall is only recorded as a diagnostic.
func translateMethod(method *symbol.Method, bag *diag.Bag) *MethodDecl {
	out := &MethodDecl{
		Doc:    DocComment(method.Trivia),
		Access: AccessQualifier(method.Access),
		Name:   method.Name,
	}
	switch {
	case method.Static:
		out.Slot = "static"
	case method.Override:
		out.Slot = "override"
	case method.Abstract:
		bag.Report("Abstract methods are not supported")
	case method.Virtual:
		// Swift instance methods are overridable already
	}
	if !isVoid(method.Returns) {
		out.Result = TypeName(method.Returns, bag)
	}
	for _, param := range method.Params {
		out.Params = append(out.Params, ParamDecl{Name: param.Name, TypeName: TypeName(param.Type, bag)})
	}
	return out
}

// isVoid reports a missing return symbol or the Void type in the root system
// namespace, either of which suppresses the return-type clause.
func isVoid(t *symbol.Type) bool {
	return t == nil || t.IsSystem("Void")
}
