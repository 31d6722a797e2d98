// Package banner computes the header and footer lines of a frame and
// turns them into statements that can be spliced into a function body.
//
// Title lengths are counted in runes, not bytes, so a non-ASCII title gets
// the same visual width as an ASCII title of as many characters. Byte-based
// counting would widen the separator lines by the extra encoding bytes.
package banner

import (
	"go/token"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dave/dst"

	"function-frame/internal/options"
)

// End-of-line comments carried by generated statements.
const (
	HeaderTag = "//frame:header"
	FooterTag = "//frame:footer"
)

// Banner is the text printed before and after a framed function body.
type Banner struct {
	// Header may span several lines.
	Header string
	Footer string
}

// Synthesize computes the banner for the resolved options. Lengths are
// counted in runes. o.Width must not exceed options.MaxWidth, which
// options.Resolve guarantees.
//
// With SepLine the title sits on its own line between two separator lines
// of Width+len(Title) repetitions, centered in that many columns. Without
// it the header is `<sep×Width> <title> <sep×Width>` and the footer repeats
// the separator 2*(Width+1)+len(Title) times.
func Synthesize(o options.Resolved) Banner {
	titleLen := utf8.RuneCountInString(o.Title)

	if o.SepLine {
		width := int(o.Width) + titleLen
		line := strings.Repeat(o.Sep, width)

		return Banner{
			Header: line + "\n" + center(o.Title, width) + "\n" + line,
			Footer: line,
		}
	}

	side := strings.Repeat(o.Sep, int(o.Width))

	return Banner{
		Header: side + " " + o.Title + " " + side,
		Footer: strings.Repeat(o.Sep, 2*(int(o.Width)+1)+titleLen),
	}
}

// center pads s with spaces on both sides to width characters. An odd
// remainder goes to the right.
func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}

	left := pad / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// Statements returns fresh header and footer statements printing the
// banner to standard output.
func (b Banner) Statements() (header, footer dst.Stmt) {
	return printStmt(b.Header, HeaderTag), printStmt(b.Footer, FooterTag)
}

// printStmt builds `fmt.Println("<text>") //<tag>`. The fmt reference is
// import-tracked so the restorer adds the import when the file lacks it.
func printStmt(text, tag string) *dst.ExprStmt {
	stmt := &dst.ExprStmt{
		X: &dst.CallExpr{
			Fun: &dst.Ident{Name: "Println", Path: "fmt"},
			Args: []dst.Expr{
				&dst.BasicLit{Kind: token.STRING, Value: strconv.Quote(text)},
			},
		},
	}
	stmt.Decs.Before = dst.NewLine
	stmt.Decs.After = dst.NewLine
	stmt.Decs.End.Append(tag)

	return stmt
}

// IsGenerated reports whether stmt was produced by Statements. After a
// reparse the marker may sit on the call rather than the statement.
func IsGenerated(stmt dst.Stmt) bool {
	if tagged(stmt) {
		return true
	}

	expr, ok := stmt.(*dst.ExprStmt)

	return ok && tagged(expr.X)
}

func tagged(n dst.Node) bool {
	end := n.Decorations().End.All()

	return slices.Contains(end, HeaderTag) || slices.Contains(end, FooterTag)
}
