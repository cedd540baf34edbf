package swift_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/swiftbridge/translator/diag"
	"github.com/viant/swiftbridge/translator/swift"
	"github.com/viant/swiftbridge/translator/symbol"
)

func classOf(name string, members ...symbol.Member) *symbol.Declaration {
	return &symbol.Declaration{
		Kind:    symbol.DeclClass,
		Name:    name,
		Symbol:  &symbol.Type{Kind: symbol.KindNamed, Name: name, IsReference: true},
		Members: members,
	}
}

func TestTranslate_FieldPolicy(t *testing.T) {
	tests := []struct {
		name     string
		field    *symbol.Field
		expected string
	}{
		{
			name: "readonly keeps source initializer",
			field: &symbol.Field{
				Names:       []string{"answer"},
				Type:        system("Int32", false),
				ReadOnly:    true,
				Initializer: &symbol.NumericLiteral{Text: "42"},
				Access:      symbol.AccessPublic,
			},
			expected: "    let answer: Int32 = 42\n",
		},
		{
			name: "non-readonly discards initializer",
			field: &symbol.Field{
				Names:       []string{"count"},
				Type:        system("Int32", false),
				Initializer: &symbol.NumericLiteral{Text: "42"},
				Access:      symbol.AccessPublic,
			},
			expected: "    var count: Int32 = 0\n",
		},
		{
			name: "private static readonly",
			field: &symbol.Field{
				Names:    []string{"shared"},
				Type:     system("Boolean", false),
				ReadOnly: true,
				Static:   true,
				Access:   symbol.AccessPrivate,
			},
			expected: "    private static let shared: Bool = false\n",
		},
		{
			name: "null initializer marks type optional",
			field: &symbol.Field{
				Names:       []string{"tag"},
				Type:        &symbol.Type{Kind: symbol.KindNamed, Name: "String", Namespace: "System", IsReference: true},
				ReadOnly:    true,
				Initializer: &symbol.NullLiteral{},
				Access:      symbol.AccessPublic,
			},
			expected: "    let tag: String? = nil\n",
		},
		{
			name: "synthesized null marks type optional",
			field: &symbol.Field{
				Names:  []string{"owner"},
				Type:   &symbol.Type{Kind: symbol.KindNamed, Name: "Customer", IsReference: true},
				Access: symbol.AccessProtected,
			},
			expected: "    var owner: Customer? = nil\n",
		},
		{
			name: "co-declared names emit one line each",
			field: &symbol.Field{
				Names:  []string{"x", "y", "z"},
				Type:   system("Double", false),
				Access: symbol.AccessInternal,
			},
			expected: "    var x: Double = 0.0\n    var y: Double = 0.0\n    var z: Double = 0.0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag := diag.NewBag()
			rendered := swift.Translate(classOf("Holder", tt.field), bag).Render()
			assert.Equal(t, "class Holder {\n"+tt.expected+"}\n", rendered)
		})
	}
}

func TestTranslate_MethodSlots(t *testing.T) {
	tests := []struct {
		name     string
		method   *symbol.Method
		expected string
	}{
		{
			name:     "plain void method",
			method:   &symbol.Method{Name: "Reset", Access: symbol.AccessPublic},
			expected: "    func Reset() { }\n",
		},
		{
			name:     "static wins over override",
			method:   &symbol.Method{Name: "Create", Static: true, Override: true, Access: symbol.AccessPublic},
			expected: "    static func Create() { }\n",
		},
		{
			name:     "override",
			method:   &symbol.Method{Name: "Describe", Override: true, Access: symbol.AccessPublic},
			expected: "    override func Describe() { }\n",
		},
		{
			name:     "virtual emits no qualifier",
			method:   &symbol.Method{Name: "Touch", Virtual: true, Access: symbol.AccessPublic},
			expected: "    func Touch() { }\n",
		},
		{
			name: "parameters and return type",
			method: &symbol.Method{
				Name:    "Scale",
				Access:  symbol.AccessPublic,
				Returns: system("Double", false),
				Params: []symbol.Parameter{
					{Name: "value", Type: system("Double", false)},
					{Name: "factor", Type: system("Int32", false)},
				},
			},
			expected: "    func Scale(value: Double, factor: Int32) -> Double { }\n",
		},
		{
			name:     "explicit void return suppressed",
			method:   &symbol.Method{Name: "Clear", Access: symbol.AccessPublic, Returns: system("Void", false)},
			expected: "    func Clear() { }\n",
		},
		{
			name:     "private method",
			method:   &symbol.Method{Name: "reset", Access: symbol.AccessPrivate},
			expected: "    private func reset() { }\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag := diag.NewBag()
			rendered := swift.Translate(classOf("Holder", tt.method), bag).Render()
			assert.Equal(t, "class Holder {\n"+tt.expected+"}\n", rendered)
		})
	}
}

func TestTranslate_AbstractMethod(t *testing.T) {
	bag := diag.NewBag()
	method := &symbol.Method{Name: "Compute", Abstract: true, Access: symbol.AccessPublic}
	rendered := swift.Translate(classOf("Holder", method, method), bag).Render()
	// abstract still emits, the shortfall is only recorded
	assert.Equal(t, "class Holder {\n    func Compute() { }\n    func Compute() { }\n}\n", rendered)
	assert.Equal(t, 2, bag.Count("Abstract methods are not supported"))
}

func TestTranslate_Header(t *testing.T) {
	bag := diag.NewBag()
	decl := &symbol.Declaration{
		Kind: symbol.DeclClass,
		Name: "Order",
		Symbol: &symbol.Type{
			Kind:        symbol.KindNamed,
			Name:        "Order",
			IsReference: true,
			Base:        &symbol.Type{Kind: symbol.KindNamed, Name: "Document", IsReference: true},
			Capabilities: []*symbol.Type{
				{Kind: symbol.KindNamed, Name: "IComparable", IsReference: true},
				{Kind: symbol.KindNamed, Name: "IDisposable", IsReference: true},
			},
		},
	}
	assert.Equal(t, "class Order: Document, IComparable, IDisposable {\n}\n", swift.Translate(decl, bag).Render())

	value := &symbol.Declaration{
		Kind:   symbol.DeclStruct,
		Name:   "Size",
		Symbol: &symbol.Type{Kind: symbol.KindNamed, Name: "Size"},
	}
	assert.Equal(t, "struct Size {\n}\n", swift.Translate(value, bag).Render())
}

// the assembled end-to-end shape: a class with one public readonly numeric
// field initialized to 0 and one public void method, no base type
func TestTranslate_Point(t *testing.T) {
	bag := diag.NewBag()
	decl := classOf("Point",
		&symbol.Field{
			Names:       []string{"X"},
			Type:        system("Int32", false),
			ReadOnly:    true,
			Initializer: &symbol.NumericLiteral{Text: "0"},
			Access:      symbol.AccessPublic,
		},
		&symbol.Method{Name: "Reset", Access: symbol.AccessPublic},
	)
	expected := "class Point {\n" +
		"    let X: Int32 = 0\n" +
		"    func Reset() { }\n" +
		"}\n"
	assert.Equal(t, expected, swift.Translate(decl, bag).Render())
	assert.Equal(t, 0, bag.Len())
}

func TestTranslate_UnsupportedMembersDropped(t *testing.T) {
	bag := diag.NewBag()
	decl := classOf("Holder", &symbol.Unsupported{Kind: "property_declaration"})
	assert.Equal(t, "class Holder {\n}\n", swift.Translate(decl, bag).Render())
	// dropped silently, not counted
	assert.Equal(t, 0, bag.Len())
}
