package gen

import (
	"fmt"
	"go/format"
	"path"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/dave/dst"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/afero"

	"function-frame/internal/diagnostic"
	"function-frame/internal/directive"
	"function-frame/internal/frame"
	"function-frame/internal/logger"
	"function-frame/internal/options"
	"function-frame/internal/rewrite"
	"function-frame/internal/source"
)

// Codes of the non-fatal diagnostics a run reports.
const (
	CodeStaleFrame    = "stale_frame"
	CodeIgnoredOption = "ignored_option"
)

// GeneratorConfig holds configuration for frame generation.
type GeneratorConfig struct {
	// Marker is the directive name, matched as //<Marker> in doc comments.
	Marker string
	// DebugDir receives unformatted output when formatting fails. Empty
	// means next to the source file.
	DebugDir string
	// Skip reports files that must not be processed.
	Skip func(path string) bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Marker: directive.DefaultMarker,
	}
}

// Generator expands frame directives in Go files.
type Generator struct {
	config GeneratorConfig
	logger *log.Logger
	fs     afero.Fs
}

// Option customizes a Generator.
type Option func(*Generator)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithFs sets the filesystem used for debug output.
func WithFs(fs afero.Fs) Option {
	return func(g *Generator) { g.fs = fs }
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig, opts ...Option) *Generator {
	if config.Marker == "" {
		config.Marker = directive.DefaultMarker
	}

	g := &Generator{
		config: config,
		logger: logger.Discard(),
		fs:     afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GeneratedFile represents a rewritten Go source file.
type GeneratedFile struct {
	// Filename is the path of the source file that was rewritten.
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Frame describes one expanded directive.
type Frame struct {
	// Position is "file:line:col" of the annotated declaration.
	Position string
	// Decl is the name of the annotated function.
	Decl string
	// Directive is the raw argument text.
	Directive string
	// Options are the resolved frame options.
	Options options.Resolved
}

// Result is the outcome of a generator run.
type Result struct {
	Files       []GeneratedFile
	Frames      []Frame
	Diagnostics diagnostic.Diagnostics
}

// Generate expands every directive in files. Only files that changed are
// returned. On any failure the error summarizes the diagnostics and the
// result carries them but no files.
func (g *Generator) Generate(files []*source.File) (*Result, error) {
	res := &Result{}

	var changed []*source.File

	for _, f := range files {
		if g.config.Skip != nil && g.config.Skip(f.Path) {
			g.logger.Debug("skipping excluded file", "file", f.Path)
			continue
		}

		g.logger.Debug("processing file", "pkg", path.Base(f.PkgPath), "file", f.Path)

		if g.processFile(f, res) {
			changed = append(changed, f)
		}
	}

	if res.Diagnostics.HasErrors() {
		return res, fmt.Errorf("frame expansion failed: %w", res.Diagnostics.Error())
	}

	for _, f := range changed {
		file, err := g.render(f)
		if err != nil {
			return res, fmt.Errorf("generating %s: %w", f.Path, err)
		}

		res.Files = append(res.Files, *file)
	}

	return res, nil
}

// processFile expands the directives of f and reports whether f changed.
// Its diagnostics are merged into res once the whole file is done.
func (g *Generator) processFile(f *source.File, res *Result) bool {
	var (
		diags   diagnostic.Diagnostics
		changed bool
	)

	for _, decl := range f.Syntax.Decls {
		found := Directives(decl, g.config.Marker)
		if len(found) == 0 {
			if fn, ok := decl.(*dst.FuncDecl); ok && fn.Body != nil {
				if n := rewrite.Strip(fn.Body); n > 0 {
					diags.AddInfo(CodeStaleFrame, fmt.Sprintf("removed %d generated statements left without a directive", n),
						f.Position(decl).String(), DeclName(decl))
					changed = true
				}
			}

			continue
		}

		frames, ok := g.expandDecl(f, decl, found, &diags)
		if !ok {
			continue
		}

		res.Frames = append(res.Frames, frames...)
		changed = true
	}

	if diags.HasErrors() {
		g.logger.Debug("file has failing directives", "file", f.Path, "errors", len(diags.Errors))
	}

	res.Diagnostics.Merge(diags)

	return changed
}

// expandDecl resolves every directive found on decl and applies them
// together. Nothing is applied when any of them fails.
func (g *Generator) expandDecl(f *source.File, decl dst.Decl, found []string, diags *diagnostic.Diagnostics) ([]Frame, bool) {
	pos := f.Position(decl).String()
	name := DeclName(decl)

	var (
		guards []rewrite.Guards
		frames []Frame
		failed bool
	)

	for _, args := range found {
		e, err := frame.Prepare(args)
		if err != nil {
			diags.AddFailure(err, pos, name)
			failed = true

			continue
		}

		for _, key := range e.Ignored {
			diags.AddWarning(CodeIgnoredOption, fmt.Sprintf("option '%s' is not a frame option and was ignored", key), pos, name)
		}

		if g.logger.GetLevel() <= log.DebugLevel {
			g.logger.Debug("resolved directive", "decl", name, "assignments", spew.Sdump(e.Assignments))
		}

		guards = append(guards, e.Guards())
		frames = append(frames, Frame{Position: pos, Decl: name, Directive: args, Options: e.Options})
	}

	if failed {
		return nil, false
	}

	if len(guards) > 1 {
		g.logger.Debug("nesting frames", "decl", name, "count", len(guards))
	}

	if _, err := rewrite.ApplyAll(decl, guards); err != nil {
		diags.AddFailure(err, pos, name)
		return nil, false
	}

	g.logger.Info("framed function", "func", name, "at", pos, "frames", len(frames))

	return frames, true
}

// render prints f and formats it. Output that fails to format is kept in a
// sidecar file for inspection.
func (g *Generator) render(f *source.File) (*GeneratedFile, error) {
	raw, err := f.Render()
	if err != nil {
		return nil, err
	}

	formatted, err := format.Source(raw)
	if err != nil {
		dir := g.config.DebugDir
		if dir == "" {
			dir = filepath.Dir(f.Path)
		}

		_ = writeDebugUnformatted(g.fs, dir, filepath.Base(f.Path), raw)

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: f.Path,
		Content:  formatted,
	}, nil
}
