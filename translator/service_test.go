package translator_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/swiftbridge/translator"
)

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestService_Translate(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "Geometry.csproj", "<Project />")
	writeSource(t, dir, "Point.cs", `namespace Geometry
{
    public class Point
    {
        public readonly int X = 0;
        public void Reset() { }
    }

    public interface IShape { }
}`)
	writeSource(t, dir, "Size.cs", `namespace Geometry
{
    public struct Size
    {
        public decimal Width;
    }
}`)

	output := filepath.Join(dir, "out")
	service := translator.New(&translator.Config{Output: output, Concurrency: 2})
	result, err := service.Translate(context.Background(), dir)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	assert.Equal(t, "Geometry", result.Module)
	assert.Equal(t, 2, len(result.Files))
	assert.Equal(t, map[string]int{"interface": 1}, result.Skipped)

	point, err := os.ReadFile(filepath.Join(output, "Point.swift"))
	if err != nil {
		t.Fatal(err)
	}
	expected := "class Point {\n" +
		"    let X: Int32 = 0\n" +
		"    func Reset() { }\n" +
		"}\n"
	assert.Equal(t, expected, string(point))

	size, err := os.ReadFile(filepath.Join(output, "Size.swift"))
	if err != nil {
		t.Fatal(err)
	}
	assert.Contains(t, string(size), "struct Size {")
	assert.Contains(t, string(size), "var Width: Decimal = nil /* default Decimal */")

	manifest, err := os.ReadFile(filepath.Join(output, "Package.swift"))
	if err != nil {
		t.Fatal(err)
	}
	assert.Contains(t, string(manifest), `name: "Geometry"`)
	assert.Contains(t, string(manifest), ".library(")

	// the non-readonly decimal default surfaces exactly once
	if assert.Equal(t, 1, len(result.Diagnostics)) {
		assert.Equal(t, "Unhandled default value for named type: Decimal", result.Diagnostics[0].Message)
		assert.Equal(t, 1, result.Diagnostics[0].Count)
	}
}

func TestService_CompilationGate(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "Broken.csproj", "<Project />")
	writeSource(t, dir, "Broken.cs", "public class Broken {")

	output := filepath.Join(dir, "out")
	service := translator.New(&translator.Config{Output: output})
	_, err := service.Translate(context.Background(), dir)
	if err == nil {
		t.Fatal("expected compilation gate error")
	}
	// zero output files on a failed gate
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Errorf("expected no output directory, got %v", statErr)
	}
}

func TestService_RewriteSkipsUnchanged(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "Unit.csproj", "<Project />")
	writeSource(t, dir, "One.cs", "public class One { }")

	output := filepath.Join(dir, "out")
	service := translator.New(&translator.Config{Output: output, Module: "Unit"})
	if _, err := service.Translate(context.Background(), dir); err != nil {
		t.Fatal(err)
	}
	first, err := os.Stat(filepath.Join(output, "One.swift"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := service.Translate(context.Background(), dir); err != nil {
		t.Fatal(err)
	}
	second, err := os.Stat(filepath.Join(output, "One.swift"))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, first.ModTime(), second.ModTime())
}
