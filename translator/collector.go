package translator

import (
	"fmt"
	"io"

	"github.com/viant/swiftbridge/translator/symbol"
)

// Collector walks compilation units depth-first and produces the ordered
// list of declarations to emit: compilation unit, then namespace, then
// nested namespace, then declaration, exactly in source-discovery order.
type Collector struct {
	log io.Writer
}

// NewCollector creates a collector logging one informational line per
// discovered declaration to the supplied writer.
func NewCollector(log io.Writer) *Collector {
	if log == nil {
		log = io.Discard
	}
	return &Collector{log: log}
}

// Collect appends every successfully resolved declaration across units,
// preserving order. Declarations whose symbol failed to resolve are skipped
// silently; that is the front end's responsibility, not this core's.
func (c *Collector) Collect(units []*symbol.CompilationUnit) []*symbol.Declaration {
	var out []*symbol.Declaration
	for _, unit := range units {
		if unit == nil || unit.Global == nil {
			continue
		}
		out = c.collectScope(unit.Global, out)
	}
	return out
}

func (c *Collector) collectScope(scope *symbol.Namespace, out []*symbol.Declaration) []*symbol.Declaration {
	for _, node := range scope.Nodes {
		switch actual := node.(type) {
		case *symbol.Namespace:
			out = c.collectScope(actual, out)
		case *symbol.Declaration:
			if actual.Symbol == nil {
				continue
			}
			fmt.Fprintf(c.log, "collected %s %s\n", actual.Kind, actual.Name)
			out = append(out, actual)
		}
	}
	return out
}
