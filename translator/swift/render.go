package swift

import "strings"

const indent = "    "

// Render serializes the declaration tree to Swift source text
func (d *TypeDecl) Render() string {
	builder := &strings.Builder{}
	if d.Doc != "" {
		builder.WriteString("/// " + d.Doc + "\n")
	}
	builder.WriteString(d.Keyword + " " + d.Name)
	if len(d.Inherits) > 0 {
		builder.WriteString(": " + strings.Join(d.Inherits, ", "))
	}
	builder.WriteString(" {\n")
	for _, member := range d.Members {
		switch actual := member.(type) {
		case *FieldDecl:
			actual.write(builder)
		case *MethodDecl:
			actual.write(builder)
		}
	}
	builder.WriteString("}\n")
	return builder.String()
}

func (f *FieldDecl) write(builder *strings.Builder) {
	if f.Doc != "" {
		builder.WriteString(indent + "/// " + f.Doc + "\n")
	}
	builder.WriteString(indent)
	if f.Access != "" {
		builder.WriteString(f.Access + " ")
	}
	if f.Static {
		builder.WriteString("static ")
	}
	builder.WriteString(f.Keyword + " " + f.Name + ": " + f.TypeName)
	if f.Optional {
		builder.WriteString("?")
	}
	builder.WriteString(" = " + f.Value + "\n")
}

func (m *MethodDecl) write(builder *strings.Builder) {
	if m.Doc != "" {
		builder.WriteString(indent + "/// " + m.Doc + "\n")
	}
	builder.WriteString(indent)
	if m.Access != "" {
		builder.WriteString(m.Access + " ")
	}
	if m.Slot != "" {
		builder.WriteString(m.Slot + " ")
	}
	builder.WriteString("func " + m.Name + "(")
	for i, param := range m.Params {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(param.Name + ": " + param.TypeName)
	}
	builder.WriteString(")")
	if m.Result != "" {
		builder.WriteString(" -> " + m.Result)
	}
	builder.WriteString(" { }\n")
}
