package source

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/dave/dst/decorator/resolver/goast"
	"github.com/dave/dst/decorator/resolver/guess"
	"github.com/spf13/afero"
)

// File is a decorated Go source file.
type File struct {
	// Path is the file name as given or as reported by the package loader.
	Path string
	// PkgPath is the import path of the file's package; empty for files
	// parsed on their own.
	PkgPath string
	// Fset holds the positions of the original parse.
	Fset *token.FileSet
	// Syntax is the decorated tree; rewrites mutate it in place.
	Syntax *dst.File
	// Decorator maps decorated nodes back to the original AST.
	Decorator *decorator.Decorator
}

// ParseFile reads and parses a single Go file from fs.
func ParseFile(fs afero.Fs, path string) (*File, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Parse(path, data)
}

// Parse parses Go source held in memory.
func Parse(path string, src []byte) (*File, error) {
	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, path, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return decorate(fset, path, "", f)
}

func decorate(fset *token.FileSet, path, pkgPath string, f *ast.File) (*File, error) {
	d := decorator.NewDecoratorWithImports(fset, pkgPath, goast.New())

	df, err := d.DecorateFile(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decorate %s: %w", path, err)
	}

	return &File{
		Path:      path,
		PkgPath:   pkgPath,
		Fset:      fset,
		Syntax:    df,
		Decorator: d,
	}, nil
}

// Position returns the source position of a decorated node. Nodes created
// after parsing have no position and map to the file alone.
func (f *File) Position(n dst.Node) token.Position {
	if an, ok := f.Decorator.Ast.Nodes[n]; ok && an != nil {
		return f.Fset.Position(an.Pos())
	}

	return token.Position{Filename: f.Path}
}

// Render prints the decorated tree back to Go source, adding and removing
// imports to match the package references in the tree.
func (f *File) Render() ([]byte, error) {
	r := decorator.NewRestorerWithImports(f.PkgPath, guess.New())

	var buf bytes.Buffer
	if err := r.Fprint(&buf, f.Syntax); err != nil {
		return nil, fmt.Errorf("failed to print %s: %w", f.Path, err)
	}

	return buf.Bytes(), nil
}
