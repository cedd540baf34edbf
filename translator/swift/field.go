package swift

import (
	"github.com/viant/swiftbridge/translator/diag"
	"github.com/viant/swiftbridge/translator/symbol"
)

// FieldDecl is one stored-property line of the target declaration tree
type FieldDecl struct {
	Doc      string
	Access   string
	Static   bool
	Keyword  string // let or var
	Name     string
	TypeName string
	Optional bool
	Value    string
}

func (*FieldDecl) memberDecl() {}

// translateField expands one field declaration group into one property line
// per co-declared name, in declaration order.
//
// Initializer policy: readonly fields keep their translated source
// initializer when present; non-readonly fields always receive the
// synthesized default and any declared initializer is discarded. The discard
// replicates the reference behavior and must not be corrected here.
func translateField(field *symbol.Field, bag *diag.Bag) []MemberDecl {
	keyword := "var"
	if field.ReadOnly {
		keyword = "let"
	}
	var value string
	if field.ReadOnly && field.Initializer != nil {
		value = Render(field.Initializer, bag)
	} else {
		value = DefaultValue(field.Type, bag)
	}
	doc := DocComment(field.Trivia)
	access := AccessQualifier(field.Access)
	typeName := TypeName(field.Type, bag)
	// a null-valued initializer implies an optional type regardless of the
	// declared nullability
	optional := value == nilLiteral
	out := make([]MemberDecl, 0, len(field.Names))
	for _, name := range field.Names {
		out = append(out, &FieldDecl{
			Doc:      doc,
			Access:   access,
			Static:   field.Static,
			Keyword:  keyword,
			Name:     name,
			TypeName: typeName,
			Optional: optional,
			Value:    value,
		})
	}
	return out
}
