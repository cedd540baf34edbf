package csharp

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	lang "github.com/smacker/go-tree-sitter/csharp"
	"github.com/viant/swiftbridge/translator/symbol"
)

// Source is one C# file handed to the front end
type Source struct {
	Path string
	Data []byte
}

// Inspector parses C# source and resolves it into compilation units. It is
// the source front end boundary: downstream translation only consumes the
// resolved symbol data it produces.
type Inspector struct{}

// NewInspector creates a new C# Inspector
func NewInspector() *Inspector {
	return &Inspector{}
}

// InspectSource parses a single C# source held in a byte slice
func (i *Inspector) InspectSource(src []byte) (*symbol.CompilationUnit, error) {
	units, err := i.InspectSources([]Source{{Path: "source.cs", Data: src}})
	if err != nil {
		return nil, err
	}
	return units[0], nil
}

// InspectFile parses a single C# source file
func (i *Inspector) InspectFile(filename string) (*symbol.CompilationUnit, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	units, err := i.InspectSources([]Source{{Path: filename, Data: src}})
	if err != nil {
		return nil, err
	}
	return units[0], nil
}

// InspectPackage parses every C# file directly under a directory as one
// compilation, resolving declared names across all of them.
func (i *Inspector) InspectPackage(packagePath string) ([]*symbol.CompilationUnit, error) {
	entries, err := os.ReadDir(packagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", packagePath, err)
	}
	var sources []Source
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cs" {
			continue
		}
		filePath := path.Join(packagePath, entry.Name())
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
		}
		sources = append(sources, Source{Path: filePath, Data: data})
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no C# files found in package: %s", packagePath)
	}
	return i.InspectSources(sources)
}

// InspectSources parses a set of C# files as one compilation. Any file with
// a syntax error fails the whole call before any unit is produced; that is
// the run's binary did-compile gate.
func (i *Inspector) InspectSources(sources []Source) ([]*symbol.CompilationUnit, error) {
	sort.Slice(sources, func(x, y int) bool { return sources[x].Path < sources[y].Path })

	trees := make([]*sitter.Tree, len(sources))
	var broken []string
	for idx, source := range sources {
		tree, err := parse(source.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", source.Path, err)
		}
		if tree.RootNode().HasError() {
			broken = append(broken, source.Path)
			continue
		}
		trees[idx] = tree
	}
	if len(broken) > 0 {
		return nil, fmt.Errorf("compilation failed, syntax errors in: %s", strings.Join(broken, ", "))
	}

	// first pass: register every declared type name so member types resolve
	// across files
	reg := newRegistry()
	for idx := range sources {
		reg.register(trees[idx].RootNode(), sources[idx].Data)
	}

	// second pass: build resolved units
	units := make([]*symbol.CompilationUnit, len(sources))
	for idx, source := range sources {
		unit := &symbol.CompilationUnit{Path: source.Path, Global: &symbol.Namespace{}}
		i.collectScope(trees[idx].RootNode(), source.Data, unit.Global, reg)
		units[idx] = unit
	}
	return units, nil
}

func parse(src []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(lang.GetLanguage())
	return parser.ParseCtx(context.Background(), nil, src)
}

// collectScope walks one syntax scope depth-first, preserving source order
// of namespaces and type declarations.
func (i *Inspector) collectScope(node *sitter.Node, src []byte, scope *symbol.Namespace, reg *registry) {
	for j := uint32(0); j < node.NamedChildCount(); j++ {
		child := node.NamedChild(int(j))
		switch child.Type() {
		case "namespace_declaration":
			ns := &symbol.Namespace{Name: fieldContent(child, "name", src)}
			if body := child.ChildByFieldName("body"); body != nil {
				i.collectScope(body, src, ns, reg)
			}
			scope.Nodes = append(scope.Nodes, ns)
		case "file_scoped_namespace_declaration":
			ns := &symbol.Namespace{Name: fieldContent(child, "name", src)}
			i.collectScope(child, src, ns, reg)
			scope.Nodes = append(scope.Nodes, ns)
		case "class_declaration", "struct_declaration", "interface_declaration",
			"enum_declaration", "delegate_declaration":
			if decl := i.parseDeclaration(child, src, reg); decl != nil {
				scope.Nodes = append(scope.Nodes, decl)
			}
		}
	}
}

// fieldContent returns the text of a named field child, or empty
func fieldContent(node *sitter.Node, field string, src []byte) string {
	child := node.ChildByFieldName(field)
	if child == nil {
		return ""
	}
	return child.Content(src)
}
