package swift

import "github.com/viant/swiftbridge/translator/symbol"

// AccessQualifier maps source visibility to a Swift access qualifier. Only
// private survives; protected, internal, public and unresolved visibility all
// widen to open-by-default. The widening is a documented lossy
// simplification replicated from the reference behavior.
func AccessQualifier(access symbol.Accessibility) string {
	if access == symbol.AccessPrivate {
		return "private"
	}
	return ""
}
