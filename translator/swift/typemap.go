package swift

import (
	"github.com/viant/swiftbridge/translator/diag"
	"github.com/viant/swiftbridge/translator/symbol"
)

// anyObject is the universal reference type used whenever no better target
// name exists.
const anyObject = "AnyObject"

// aliases maps root system namespace type names whose Swift spelling differs
// from the source spelling. Everything else passes through unchanged, which
// assumes identifier compatibility; cross-ecosystem name collisions are not
// resolved here.
var aliases = map[string]string{
	"Boolean": "Bool",
	"Byte":    "UInt8",
	"Char":    "Character",
	"IntPtr":  "Int",
	"Object":  anyObject,
	"Single":  "Float",
}

// TypeName maps a resolved source type to its Swift spelling. Pure and
// idempotent: identical input always yields identical output.
func TypeName(t *symbol.Type, bag *diag.Bag) string {
	if t == nil {
		return anyObject
	}
	switch t.Kind {
	case symbol.KindArray:
		return "[" + TypeName(t.Element, bag) + "]"
	case symbol.KindDynamic:
		return anyObject
	}
	if t.Namespace == "System" {
		if alias, ok := aliases[t.Name]; ok {
			return alias
		}
	}
	if t.Name == "" {
		bag.Reportf("Symbol %s has no name", t)
		return anyObject
	}
	return t.Name
}
