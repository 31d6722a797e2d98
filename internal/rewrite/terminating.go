package rewrite

import (
	"go/token"

	"github.com/dave/dst"
)

// terminating reports whether s is a terminating statement as defined by
// the Go spec. label is the label attached to s, if any.
func terminating(s dst.Stmt, label string) bool {
	switch s := s.(type) {
	case *dst.ReturnStmt:
		return true

	case *dst.BranchStmt:
		return s.Tok == token.GOTO

	case *dst.ExprStmt:
		call, ok := s.X.(*dst.CallExpr)
		if !ok {
			return false
		}

		id, ok := call.Fun.(*dst.Ident)

		return ok && id.Name == "panic" && id.Path == ""

	case *dst.BlockStmt:
		return endsTerminating(s.List)

	case *dst.IfStmt:
		return s.Else != nil && terminating(s.Body, "") && terminating(s.Else, "")

	case *dst.ForStmt:
		return s.Cond == nil && !hasBreak(s.Body, label)

	case *dst.SwitchStmt:
		return clausesTerminate(s.Body, label)

	case *dst.TypeSwitchStmt:
		return clausesTerminate(s.Body, label)

	case *dst.SelectStmt:
		if hasBreak(s.Body, label) {
			return false
		}

		for _, c := range s.Body.List {
			if cc, ok := c.(*dst.CommClause); !ok || !endsTerminating(cc.Body) {
				return false
			}
		}

		return true

	case *dst.LabeledStmt:
		return terminating(s.Stmt, s.Label.Name)
	}

	return false
}

func endsTerminating(list []dst.Stmt) bool {
	return len(list) > 0 && terminating(list[len(list)-1], "")
}

func endsFallthrough(list []dst.Stmt) bool {
	if len(list) == 0 {
		return false
	}

	b, ok := list[len(list)-1].(*dst.BranchStmt)

	return ok && b.Tok == token.FALLTHROUGH
}

// clausesTerminate checks the switch rule: a default clause, no break, and
// every clause ending in a terminating statement or fallthrough.
func clausesTerminate(body *dst.BlockStmt, label string) bool {
	if hasBreak(body, label) {
		return false
	}

	hasDefault := false

	for _, c := range body.List {
		cc, ok := c.(*dst.CaseClause)
		if !ok {
			return false
		}

		if cc.List == nil {
			hasDefault = true
		}

		if !endsTerminating(cc.Body) && !endsFallthrough(cc.Body) {
			return false
		}
	}

	return hasDefault
}

// hasBreak reports whether root contains a break that targets the statement
// owning root: an unlabeled break outside nested breakable statements, or a
// break naming label.
func hasBreak(root dst.Node, label string) bool {
	found := false

	dst.Inspect(root, func(n dst.Node) bool {
		if found || n == nil {
			return false
		}

		switch n := n.(type) {
		case *dst.FuncLit:
			return false

		case *dst.BranchStmt:
			if n.Tok == token.BREAK && (n.Label == nil || n.Label.Name == label) {
				found = true
			}

		case *dst.ForStmt, *dst.RangeStmt, *dst.SwitchStmt, *dst.TypeSwitchStmt, *dst.SelectStmt:
			if n != root {
				found = label != "" && hasLabeledBreak(n, label)
				return false
			}
		}

		return true
	})

	return found
}

func hasLabeledBreak(root dst.Node, label string) bool {
	found := false

	dst.Inspect(root, func(n dst.Node) bool {
		if found || n == nil {
			return false
		}

		switch n := n.(type) {
		case *dst.FuncLit:
			return false
		case *dst.BranchStmt:
			found = n.Tok == token.BREAK && n.Label != nil && n.Label.Name == label
		}

		return true
	})

	return found
}
