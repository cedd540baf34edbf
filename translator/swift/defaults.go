package swift

import (
	"github.com/viant/swiftbridge/translator/diag"
	"github.com/viant/swiftbridge/translator/symbol"
)

// nilLiteral is the target null literal. A synthesized or translated
// initializer equal to it marks the field type optional.
const nilLiteral = "nil"

// zeroValues fixes the canonical zero literal for root system namespace
// value types.
var zeroValues = map[string]string{
	"Boolean": "false",
	"Byte":    "0",
	"Double":  "0.0",
	"Single":  "0.0",
	"Int16":   "0",
	"Int32":   "0",
	"Int64":   "0",
	"IntPtr":  "0",
	"UInt16":  "0",
	"UInt32":  "0",
	"UInt64":  "0",
	"UIntPtr": "0",
}

// DefaultValue synthesizes the zero-value literal for a resolved type. It is
// used whenever a field's declared initializer is intentionally discarded.
// Deterministic: identical (kind, name) always yields identical text.
func DefaultValue(t *symbol.Type, bag *diag.Bag) string {
	if t == nil {
		return nilLiteral
	}
	switch t.Kind {
	case symbol.KindArray:
		return "[]"
	case symbol.KindPointer, symbol.KindDynamic, symbol.KindTypeParameter, symbol.KindError:
		return nilLiteral
	case symbol.KindNamed:
		if t.Namespace == "System" {
			if zero, ok := zeroValues[t.Name]; ok {
				return zero
			}
		}
		if t.IsReference {
			return nilLiteral
		}
		bag.Reportf("Unhandled default value for named type: %s", t.Name)
		return sentinel(t.Name)
	}
	bag.Reportf("Unhandled default value for type %s", t.Kind)
	return sentinel(t.Kind.String())
}

// sentinel produces a syntactically valid, visibly tagged placeholder. It
// never compares equal to the plain null literal, so it does not trigger the
// optional-type heuristic.
func sentinel(tag string) string {
	return nilLiteral + " /* default " + tag + " */"
}
