package csharp

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// leadingTrivia collects the comment run immediately preceding a declaration
// node, top to bottom. The raw lines are carried through unprocessed; the
// target side decides what counts as documentation.
func leadingTrivia(node *sitter.Node, src []byte) string {
	var lines []string
	for prev := node.PrevNamedSibling(); prev != nil; prev = prev.PrevNamedSibling() {
		if prev.Type() != "comment" {
			break
		}
		lines = append([]string{prev.Content(src)}, lines...)
	}
	return strings.Join(lines, "\n")
}
