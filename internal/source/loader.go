package source

import (
	"fmt"
	"slices"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages. Directives
// are syntactic, so type information is not needed.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax

// LoadPackages loads the packages matching patterns, relative to dir, and
// returns their Go files. Patterns are standard Go package patterns
// (e.g., "./...", "function-frame/examples/simple").
func LoadPackages(dir string, patterns ...string) ([]*File, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	})
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	var files []*File

	for _, pkg := range pkgs {
		for _, f := range pkg.Syntax {
			path := pkg.Fset.Position(f.Package).Filename

			// Files produced by cgo are not the user's source.
			if !slices.Contains(pkg.GoFiles, path) {
				continue
			}

			file, err := decorate(pkg.Fset, path, pkg.PkgPath, f)
			if err != nil {
				return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
			}

			files = append(files, file)
		}
	}

	return files, nil
}
