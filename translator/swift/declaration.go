package swift

import (
	"github.com/viant/swiftbridge/translator/diag"
	"github.com/viant/swiftbridge/translator/symbol"
)

// TypeDecl is an in-memory Swift type declaration assembled from a resolved
// source declaration. Building the tree is separate from rendering it, so
// translation stays testable without text comparison and declarations remain
// independent emission units.
type TypeDecl struct {
	Doc      string
	Keyword  string // class or struct
	Name     string
	Inherits []string
	Members  []MemberDecl
}

// MemberDecl is one rendered member of a TypeDecl
type MemberDecl interface {
	memberDecl()
}

// Translate builds the Swift declaration tree for a class or struct
// declaration. Unsupported member kinds are dropped silently; every
// translatable member degrades to tagged placeholders rather than failing,
// so one problematic declaration never blocks the rest of the run.
func Translate(decl *symbol.Declaration, bag *diag.Bag) *TypeDecl {
	keyword := "class"
	if decl.Kind == symbol.DeclStruct {
		keyword = "struct"
	}
	out := &TypeDecl{
		Doc:     DocComment(decl.Trivia),
		Keyword: keyword,
		Name:    TypeName(decl.Symbol, bag),
	}
	if sym := decl.Symbol; sym != nil {
		if sym.Base != nil {
			out.Inherits = append(out.Inherits, TypeName(sym.Base, bag))
		}
		for _, capability := range sym.Capabilities {
			out.Inherits = append(out.Inherits, TypeName(capability, bag))
		}
	}
	for _, member := range decl.Members {
		switch actual := member.(type) {
		case *symbol.Field:
			out.Members = append(out.Members, translateField(actual, bag)...)
		case *symbol.Method:
			out.Members = append(out.Members, translateMethod(actual, bag))
		}
	}
	return out
}
