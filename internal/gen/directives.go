package gen

import (
	"github.com/dave/dst"

	"function-frame/internal/directive"
)

// Directives returns the argument text of every directive attached to decl,
// in source order. For grouped const, var and type declarations the doc
// comments of the individual specs are searched too.
func Directives(decl dst.Decl, marker string) []string {
	found := match(decl.Decorations().Start.All(), marker)

	if gd, ok := decl.(*dst.GenDecl); ok {
		for _, spec := range gd.Specs {
			found = append(found, match(spec.Decorations().Start.All(), marker)...)
		}
	}

	return found
}

func match(comments []string, marker string) []string {
	var found []string

	for _, c := range comments {
		if args, ok := directive.Match(c, marker); ok {
			found = append(found, args)
		}
	}

	return found
}

// DeclName returns a readable name for decl: the function name (with its
// receiver type for methods) or the first name a const, var or type
// declaration introduces.
func DeclName(decl dst.Decl) string {
	switch d := decl.(type) {
	case *dst.FuncDecl:
		if d.Recv != nil && len(d.Recv.List) > 0 {
			return "(" + exprString(d.Recv.List[0].Type) + ")." + d.Name.Name
		}

		return d.Name.Name

	case *dst.GenDecl:
		for _, spec := range d.Specs {
			switch s := spec.(type) {
			case *dst.ValueSpec:
				if len(s.Names) > 0 {
					return s.Names[0].Name
				}
			case *dst.TypeSpec:
				return s.Name.Name
			case *dst.ImportSpec:
				return "import " + s.Path.Value
			}
		}
	}

	return ""
}

func exprString(e dst.Expr) string {
	switch e := e.(type) {
	case *dst.Ident:
		return e.Name
	case *dst.StarExpr:
		return "*" + exprString(e.X)
	case *dst.IndexExpr:
		return exprString(e.X) + "[" + exprString(e.Index) + "]"
	case *dst.IndexListExpr:
		s := exprString(e.X) + "["
		for i, idx := range e.Indices {
			if i > 0 {
				s += ", "
			}

			s += exprString(idx)
		}

		return s + "]"
	default:
		return "?"
	}
}
