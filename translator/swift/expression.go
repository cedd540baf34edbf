package swift

import (
	"strings"

	"github.com/viant/swiftbridge/translator/diag"
	"github.com/viant/swiftbridge/translator/symbol"
)

// Render re-renders a resolved initializer expression as Swift source. It is
// a restricted best-effort renderer over a closed grammar, not a general
// expression compiler: unsupported kinds become a tagged inert placeholder so
// the surrounding declaration stays valid.
func Render(expr symbol.Expression, bag *diag.Bag) string {
	switch e := expr.(type) {
	case *symbol.BoolLiteral:
		if e.Value {
			return "true"
		}
		return "false"
	case *symbol.NumericLiteral:
		return e.Text
	case *symbol.StringLiteral:
		if e.Verbatim {
			return renderVerbatim(e.Text)
		}
		return e.Text
	case *symbol.MemberAccess:
		return Render(e.Target, bag) + "." + e.Name
	case *symbol.Identifier:
		return e.Name
	case *symbol.Invocation:
		args := make([]string, 0, len(e.Args))
		for _, arg := range e.Args {
			args = append(args, Render(arg, bag))
		}
		return Render(e.Callee, bag) + "(" + strings.Join(args, ", ") + ")"
	case *symbol.Cast:
		// source type text as written, not remapped
		return Render(e.Value, bag) + " as " + e.TypeText
	case *symbol.NullLiteral:
		return nilLiteral
	case *symbol.ThisReference:
		return "self"
	case *symbol.Parenthesized:
		return "(" + Render(e.Inner, bag) + ")"
	case *symbol.UnsupportedExpression:
		bag.Reportf("Unhandled expression kind %s", e.Kind)
		return nilLiteral + " /* " + e.Kind + " */"
	}
	bag.Report("Unhandled expression kind unknown")
	return nilLiteral + " /* unknown */"
}

// renderVerbatim rewrites a verbatim string literal to the triple-quoted
// block form, keeping the body verbatim.
func renderVerbatim(text string) string {
	body := strings.TrimSuffix(strings.TrimPrefix(text, `"`), `"`)
	return "\"\"\"\n" + body + "\n\"\"\""
}
