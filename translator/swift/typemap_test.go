package swift_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/swiftbridge/translator/diag"
	"github.com/viant/swiftbridge/translator/swift"
	"github.com/viant/swiftbridge/translator/symbol"
)

func system(name string, reference bool) *symbol.Type {
	return &symbol.Type{Kind: symbol.KindNamed, Name: name, Namespace: "System", IsReference: reference}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		name     string
		input    *symbol.Type
		expected string
	}{
		{name: "missing type", input: nil, expected: "AnyObject"},
		{name: "boolean alias", input: system("Boolean", false), expected: "Bool"},
		{name: "byte alias", input: system("Byte", false), expected: "UInt8"},
		{name: "char alias", input: system("Char", false), expected: "Character"},
		{name: "native int alias", input: system("IntPtr", false), expected: "Int"},
		{name: "object alias", input: system("Object", true), expected: "AnyObject"},
		{name: "single alias", input: system("Single", false), expected: "Float"},
		{name: "system pass-through", input: system("Int32", false), expected: "Int32"},
		{name: "named pass-through", input: &symbol.Type{Kind: symbol.KindNamed, Name: "Customer", IsReference: true}, expected: "Customer"},
		{
			name: "user type shadowing an alias name",
			input: &symbol.Type{Kind: symbol.KindNamed, Name: "Byte", Namespace: "Acme"},
			expected: "Byte",
		},
		{
			name:     "array of arrays",
			input:    &symbol.Type{Kind: symbol.KindArray, Element: &symbol.Type{Kind: symbol.KindArray, Element: system("Int32", false)}},
			expected: "[[Int32]]",
		},
		{name: "dynamic", input: &symbol.Type{Kind: symbol.KindDynamic, Name: "dynamic"}, expected: "AnyObject"},
		{name: "type parameter", input: &symbol.Type{Kind: symbol.KindTypeParameter, Name: "T"}, expected: "T"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag := diag.NewBag()
			actual := swift.TypeName(tt.input, bag)
			assert.Equal(t, tt.expected, actual)
			// idempotent: the same input yields the same output again
			assert.Equal(t, actual, swift.TypeName(tt.input, bag))
			assert.Equal(t, 0, bag.Len())
		})
	}
}

func TestTypeName_Unnamed(t *testing.T) {
	bag := diag.NewBag()
	unnamed := &symbol.Type{Kind: symbol.KindNamed, Namespace: "Acme"}
	assert.Equal(t, "AnyObject", swift.TypeName(unnamed, bag))
	assert.Equal(t, "AnyObject", swift.TypeName(unnamed, bag))
	if bag.Count("Symbol <unnamed Named> has no name") != 2 {
		t.Errorf("expected one diagnostic entry with count 2, got %v", bag.Entries())
	}
}
