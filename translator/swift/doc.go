package swift

import "strings"

// docMarkers is the fixed markup set stripped from documentation trivia
var docMarkers = []string{"<summary>", "</summary>", "<b>", "</b>", "///", "\t"}

// DocComment condenses leading documentation trivia into a single line:
// documentation-comment lines only, markup stripped, trimmed, empties
// dropped, survivors joined with single spaces. No re-wrapping.
func DocComment(trivia string) string {
	var parts []string
	for _, line := range strings.Split(trivia, "\n") {
		if !strings.HasPrefix(strings.TrimSpace(line), "///") {
			continue
		}
		for _, marker := range docMarkers {
			line = strings.ReplaceAll(line, marker, "")
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}
