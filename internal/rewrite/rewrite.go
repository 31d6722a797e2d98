package rewrite

import (
	"slices"

	"github.com/dave/dst"

	"function-frame/internal/banner"
	"function-frame/internal/diagnostic"
)

// Guards is the header and footer statement of one frame.
type Guards struct {
	Header dst.Stmt
	Footer dst.Stmt
}

// Apply frames decl with a single header and footer.
func Apply(decl dst.Decl, header, footer dst.Stmt) (*dst.FuncDecl, error) {
	return ApplyAll(decl, []Guards{{Header: header, Footer: footer}})
}

// ApplyAll frames decl once per entry of guards. The first entry is the
// outermost frame. Statements generated by a previous run are removed first.
func ApplyAll(decl dst.Decl, guards []Guards) (*dst.FuncDecl, error) {
	fn, ok := decl.(*dst.FuncDecl)
	if !ok || fn.Body == nil {
		return nil, diagnostic.Errorf(diagnostic.KindApplicability,
			"frame can only be applied to function declarations, found %s", describe(decl))
	}

	Strip(fn.Body)

	for _, g := range slices.Backward(guards) {
		insert(fn.Body, g.Header, g.Footer)
	}

	return fn, nil
}

// Strip removes generated statements from the top level of body and
// returns how many were removed.
func Strip(body *dst.BlockStmt) int {
	before := len(body.List)
	body.List = slices.DeleteFunc(body.List, banner.IsGenerated)

	return before - len(body.List)
}

func insert(body *dst.BlockStmt, header, footer dst.Stmt) {
	at := len(body.List)
	if at > 0 && terminating(body.List[at-1], "") {
		at--
	}

	list := make([]dst.Stmt, 0, len(body.List)+2)
	list = append(list, header)
	list = append(list, body.List[:at]...)
	list = append(list, footer)
	list = append(list, body.List[at:]...)

	body.List = list
}

func describe(decl dst.Decl) string {
	switch d := decl.(type) {
	case *dst.FuncDecl:
		return "function " + d.Name.Name + " without a body"
	case *dst.GenDecl:
		return d.Tok.String() + " declaration"
	case nil:
		return "nothing"
	default:
		return "invalid declaration"
	}
}
