package swift

import "fmt"

// Manifest renders a SwiftPM manifest declaring a single dependency-free
// library unit named after the translation unit.
func Manifest(name string) string {
	return fmt.Sprintf(`// swift-tools-version:5.9
import PackageDescription

let package = Package(
    name: %[1]q,
    products: [
        .library(name: %[1]q, targets: [%[1]q]),
    ],
    targets: [
        .target(name: %[1]q, path: "."),
    ]
)
`, name)
}
