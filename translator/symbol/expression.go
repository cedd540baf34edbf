package symbol

// Expression is the closed grammar of initializer expressions the core
// re-renders. Anything outside it lowers to UnsupportedExpression so the
// surrounding output stays structurally valid.
type Expression interface {
	expression()
}

type BoolLiteral struct {
	Value bool
}

// NumericLiteral carries the literal source text verbatim, without re-basing
// or suffix normalization.
type NumericLiteral struct {
	Text string
}

// StringLiteral carries the quoted literal text; Verbatim marks a literal
// declared with the source verbatim-string marker.
type StringLiteral struct {
	Text     string
	Verbatim bool
}

type MemberAccess struct {
	Target Expression
	Name   string
}

type Identifier struct {
	Name string
}

type Invocation struct {
	Callee Expression
	Args   []Expression
}

// Cast keeps the source type text as written; it is not remapped to a target
// type name.
type Cast struct {
	Value    Expression
	TypeText string
}

type NullLiteral struct{}

type ThisReference struct{}

type Parenthesized struct {
	Inner Expression
}

type UnsupportedExpression struct {
	Kind string
}

func (*BoolLiteral) expression()           {}
func (*NumericLiteral) expression()        {}
func (*StringLiteral) expression()         {}
func (*MemberAccess) expression()          {}
func (*Identifier) expression()            {}
func (*Invocation) expression()            {}
func (*Cast) expression()                  {}
func (*NullLiteral) expression()           {}
func (*ThisReference) expression()         {}
func (*Parenthesized) expression()         {}
func (*UnsupportedExpression) expression() {}
