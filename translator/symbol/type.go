package symbol

// TypeKind classifies a resolved type handle supplied by the front end.
type TypeKind int

const (
	KindNamed TypeKind = iota
	KindArray
	KindPointer
	KindDynamic
	KindTypeParameter
	KindError
)

// String returns the kind name used in diagnostics
func (k TypeKind) String() string {
	switch k {
	case KindNamed:
		return "Named"
	case KindArray:
		return "Array"
	case KindPointer:
		return "Pointer"
	case KindDynamic:
		return "Dynamic"
	case KindTypeParameter:
		return "TypeParameter"
	}
	return "Error"
}

// Type is the resolved view of a source type. It exposes only what the
// translation core needs; semantic resolution itself belongs to the front end.
type Type struct {
	Kind         TypeKind
	Name         string
	Namespace    string
	Element      *Type // array element type
	IsReference  bool
	Base         *Type
	Capabilities []*Type // interfaces the type implements
}

// IsSystem reports whether the type is the named type in the root system namespace
func (t *Type) IsSystem(name string) bool {
	return t != nil && t.Namespace == "System" && t.Name == name
}

// String returns a printable representation used in diagnostics
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case KindArray:
		return t.Element.String() + "[]"
	case KindNamed:
		if t.Name == "" {
			return "<unnamed " + t.Kind.String() + ">"
		}
		if t.Namespace != "" {
			return t.Namespace + "." + t.Name
		}
		return t.Name
	}
	if t.Name != "" {
		return t.Name
	}
	return "<" + t.Kind.String() + ">"
}

// Accessibility represents declared source visibility
type Accessibility int

const (
	AccessUnresolved Accessibility = iota
	AccessPrivate
	AccessProtected
	AccessInternal
	AccessPublic
)
