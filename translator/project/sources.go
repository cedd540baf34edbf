package project

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/swiftbridge/translator/csharp"
)

// skipDirs are build output folders whose sources never belong to the
// translation unit
var skipDirs = []string{"bin", "obj"}

// Sources lists every C# source under location, in deterministic path order
func Sources(ctx context.Context, fs afs.Service, location string) ([]csharp.Source, error) {
	var sources []csharp.Source
	err := fs.Walk(ctx, location, func(ctx context.Context, baseURL string, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return true, nil
		}
		if !strings.HasSuffix(info.Name(), ".cs") || skipped(parent) {
			return true, nil
		}
		data, err := io.ReadAll(reader)
		if err != nil {
			return false, fmt.Errorf("failed to read %s: %w", info.Name(), err)
		}
		sources = append(sources, csharp.Source{
			Path: url.Join(baseURL, path.Join(parent, info.Name())),
			Data: data,
		})
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sources at %s: %w", location, err)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i].Path < sources[j].Path })
	return sources, nil
}

func skipped(parent string) bool {
	for _, segment := range strings.Split(parent, "/") {
		for _, dir := range skipDirs {
			if segment == dir {
				return true
			}
		}
	}
	return false
}
