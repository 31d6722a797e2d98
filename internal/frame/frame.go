// Package frame chains the directive pipeline: parse the arguments, build
// and resolve the options, synthesize the banner, and splice it into the
// annotated declaration. The first failing stage aborts the expansion with
// a *diagnostic.Error.
package frame

import (
	"github.com/dave/dst"

	"function-frame/internal/banner"
	"function-frame/internal/directive"
	"function-frame/internal/options"
	"function-frame/internal/rewrite"
)

// Expansion is a directive whose arguments have been resolved.
type Expansion struct {
	Assignments []directive.Assignment
	Options     options.Resolved
	Banner      banner.Banner
	// Ignored lists the argument keys that are not frame options.
	Ignored []string
}

// Prepare runs every stage up to the banner for the directive arguments.
func Prepare(args string) (*Expansion, error) {
	assignments, err := directive.Parse(args)
	if err != nil {
		return nil, err
	}

	cfg := options.Build(assignments)

	resolved, err := options.Resolve(cfg)
	if err != nil {
		return nil, err
	}

	return &Expansion{
		Assignments: assignments,
		Options:     resolved,
		Banner:      banner.Synthesize(resolved),
		Ignored:     cfg.Unknown(),
	}, nil
}

// Guards returns fresh statements for the expansion's banner.
func (e *Expansion) Guards() rewrite.Guards {
	header, footer := e.Banner.Statements()

	return rewrite.Guards{Header: header, Footer: footer}
}

// Expand applies one directive to decl.
func Expand(args string, decl dst.Decl) (*Expansion, error) {
	e, err := Prepare(args)
	if err != nil {
		return nil, err
	}

	g := e.Guards()
	if _, err := rewrite.Apply(decl, g.Header, g.Footer); err != nil {
		return nil, err
	}

	return e, nil
}
