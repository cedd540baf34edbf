package translator

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"golang.org/x/sync/errgroup"

	"github.com/viant/swiftbridge/translator/csharp"
	"github.com/viant/swiftbridge/translator/diag"
	"github.com/viant/swiftbridge/translator/project"
	"github.com/viant/swiftbridge/translator/swift"
	"github.com/viant/swiftbridge/translator/symbol"
)

// Result summarizes one translation run
type Result struct {
	Module      string
	Files       []string       // emitted file URLs, in collection order
	Skipped     map[string]int // collected but unemitted declarations by kind
	Diagnostics []diag.Entry   // distinct shortfalls, descending count
}

// Service drives a whole run: project load, front end compilation,
// collection and per-declaration emission. Two gates are fatal and abort
// before any output: a project that fails to load and a compilation with
// syntax errors. Everything past the gates degrades gracefully and only
// surfaces through the diagnostic summary.
type Service struct {
	config   *Config
	fs       afs.Service
	detector *project.Detector
	log      io.Writer
}

// Option customizes a Service
type Option func(*Service)

// WithLogger routes informational log lines to the writer
func WithLogger(log io.Writer) Option {
	return func(s *Service) {
		s.log = log
	}
}

// WithFileSystem overrides the file system service
func WithFileSystem(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// New creates a translation service
func New(config *Config, options ...Option) *Service {
	if config == nil {
		config = &Config{}
	}
	config.Init()
	service := &Service{
		config:   config,
		fs:       afs.New(),
		detector: project.New(),
		log:      io.Discard,
	}
	for _, option := range options {
		option(service)
	}
	return service
}

// Translate runs the pipeline for the project at location and writes one
// Swift file per translated class or struct plus the package manifest.
func (s *Service) Translate(ctx context.Context, location string) (*Result, error) {
	module, root, err := s.loadProject(location)
	if err != nil {
		return nil, err
	}
	sources, err := project.Sources(ctx, s.fs, root)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no C# sources found at %s", root)
	}
	units, err := csharp.NewInspector().InspectSources(sources)
	if err != nil {
		return nil, err
	}

	bag := diag.NewBag()
	declarations := NewCollector(s.log).Collect(units)
	result := &Result{Module: module, Skipped: map[string]int{}}

	// declarations are independent emission units; rendering runs in
	// parallel while per-file naming keeps the output deterministic
	rendered := make([]string, len(declarations))
	names := make([]string, len(declarations))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.config.Concurrency)
	for idx, decl := range declarations {
		if decl.Kind != symbol.DeclClass && decl.Kind != symbol.DeclStruct {
			result.Skipped[decl.Kind.String()]++
			continue
		}
		idx, decl := idx, decl
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			document := swift.Translate(decl, bag)
			names[idx] = document.Name
			rendered[idx] = document.Render()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	output := s.config.Output
	if output == "" {
		output = url.Join(root, "Swift")
	}
	for idx := range declarations {
		if rendered[idx] == "" {
			continue
		}
		URL := url.Join(output, names[idx]+".swift")
		if err := s.upload(ctx, URL, []byte(rendered[idx])); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, URL)
	}
	manifestURL := url.Join(output, "Package.swift")
	if err := s.upload(ctx, manifestURL, []byte(swift.Manifest(module))); err != nil {
		return nil, err
	}

	result.Diagnostics = bag.Entries()
	return result, nil
}

// loadProject resolves the translation unit name and source root. Remote
// locations skip marker detection and use the location base name.
func (s *Service) loadProject(location string) (string, string, error) {
	module := s.config.Module
	root := location
	if url.Scheme(location, "file") == "file" {
		detected, err := s.detector.Detect(location)
		if err != nil {
			return "", "", err
		}
		root = detected.RootPath
		if module == "" {
			module = detected.Name
		}
	}
	if module == "" {
		_, module = url.Split(location, "file")
	}
	return module, root, nil
}

// upload writes content unless an identical file is already in place
func (s *Service) upload(ctx context.Context, URL string, data []byte) error {
	if ok, _ := s.fs.Exists(ctx, URL); ok {
		if previous, err := s.fs.DownloadWithURL(ctx, URL); err == nil {
			if prevDigest, err := digest(previous); err == nil {
				if nextDigest, err := digest(data); err == nil && prevDigest == nextDigest {
					return nil
				}
			}
		}
	}
	if err := s.fs.Upload(ctx, URL, 0644, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", URL, err)
	}
	return nil
}
