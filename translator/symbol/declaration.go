package symbol

// DeclKind tags a declaration-level construct
type DeclKind int

const (
	DeclClass DeclKind = iota
	DeclStruct
	DeclInterface
	DeclEnum
	DeclDelegate
)

// String returns the declaration kind name
func (k DeclKind) String() string {
	switch k {
	case DeclClass:
		return "class"
	case DeclStruct:
		return "struct"
	case DeclInterface:
		return "interface"
	case DeclEnum:
		return "enum"
	}
	return "delegate"
}

// CompilationUnit is the resolved representation of one source file
type CompilationUnit struct {
	Path   string
	Global *Namespace
}

// Node is an ordered element of a namespace scope: a nested *Namespace or a
// *Declaration, preserving source order through collection.
type Node interface {
	node()
}

// Namespace groups declarations and nested namespaces in source order
type Namespace struct {
	Name  string
	Nodes []Node
}

func (*Namespace) node() {}

// Declaration represents a class/struct/interface/enum/delegate construct.
// Symbol is nil when the front end could not resolve the declared name.
type Declaration struct {
	Kind    DeclKind
	Name    string
	Symbol  *Type
	Trivia  string // leading trivia, raw
	Members []Member
}

func (*Declaration) node() {}

// Member is a field, a method or an unsupported member kind
type Member interface {
	member()
}

// Field holds one declaration group; co-declared names share the type,
// modifiers and initializer policy.
type Field struct {
	Names       []string
	Type        *Type
	ReadOnly    bool
	Static      bool
	Initializer Expression // nil when absent
	Access      Accessibility
	Trivia      string
}

func (*Field) member() {}

// Parameter is an ordered method parameter
type Parameter struct {
	Name string
	Type *Type
}

// Method holds a method signature; bodies are never carried through
type Method struct {
	Name     string
	Returns  *Type // nil when the return symbol is missing
	Params   []Parameter
	Access   Accessibility
	Static   bool
	Override bool
	Sealed   bool
	Abstract bool
	Virtual  bool
	Trivia   string
}

func (*Method) member() {}

// Unsupported carries the source kind of a member the core does not translate
type Unsupported struct {
	Kind string
}

func (*Unsupported) member() {}
