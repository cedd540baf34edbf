package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Project describes a detected C# project
type Project struct {
	RootPath string // absolute path to the project root directory
	Name     string // project name, taken from the .csproj or .sln file name
}

// Detector identifies C# project root folders
type Detector struct {
	markers []string
}

// New creates a new project detector instance
func New() *Detector {
	return &Detector{
		markers: []string{
			".sln",                  // solution file
			".csproj",               // project file
			"Directory.Build.props", // MSBuild root marker
			".git",                  // generic VCS marker
		},
	}
}

// Detect identifies the project root for the given location. When no marker
// is found the location itself is the root and the directory name is the
// project name.
func (d *Detector) Detect(location string) (*Project, error) {
	absPath, err := filepath.Abs(location)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load project %s: %w", location, err)
	}
	startDir := absPath
	if !info.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	for dir := startDir; ; dir = filepath.Dir(dir) {
		if name, ok := d.match(dir); ok {
			return &Project{RootPath: dir, Name: name}, nil
		}
		if dir == filepath.Dir(dir) {
			break
		}
	}
	return &Project{RootPath: startDir, Name: filepath.Base(startDir)}, nil
}

// match scans one directory for project markers; the project name comes from
// the marker file when it carries one.
func (d *Detector) match(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	name := ""
	found := false
	for _, entry := range entries {
		for _, marker := range d.markers {
			if entry.Name() == marker {
				found = true
				continue
			}
			if strings.HasPrefix(marker, ".") && marker != ".git" && strings.HasSuffix(entry.Name(), marker) {
				found = true
				if candidate := strings.TrimSuffix(entry.Name(), marker); candidate != "" {
					name = candidate
				}
			}
		}
	}
	if !found {
		return "", false
	}
	if name == "" {
		name = filepath.Base(dir)
	}
	return name, true
}
