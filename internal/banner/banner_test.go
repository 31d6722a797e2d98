package banner

import (
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/dave/dst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"function-frame/internal/options"
)

func TestSynthesize_SepLine(t *testing.T) {
	b := Synthesize(options.Resolved{Title: "Simple Example", Sep: "-", Width: 25, SepLine: true})

	lines := strings.Split(b.Header, "\n")
	require.Len(t, lines, 3)

	width := 25 + len("Simple Example")
	assert.Equal(t, strings.Repeat("-", width), lines[0])
	assert.Equal(t, strings.Repeat(" ", 12)+"Simple Example"+strings.Repeat(" ", 13), lines[1])
	assert.Equal(t, lines[0], lines[2])
	assert.Equal(t, lines[0], b.Footer)
}

func TestSynthesize_SepLineProperties(t *testing.T) {
	tests := []options.Resolved{
		{Title: "a", Sep: "*", Width: 0, SepLine: true},
		{Title: "even", Sep: "=", Width: 4, SepLine: true},
		{Title: "odd", Sep: "=", Width: 4, SepLine: true},
		{Title: "multi sep", Sep: "<>", Width: 3, SepLine: true},
		{Title: "héllo", Sep: "~", Width: 7, SepLine: true},
		{Title: "", Sep: "-", Width: 5, SepLine: true},
	}

	for _, o := range tests {
		t.Run(o.Title, func(t *testing.T) {
			b := Synthesize(o)
			width := int(o.Width) + utf8.RuneCountInString(o.Title)

			lines := strings.Split(b.Header, "\n")
			require.Len(t, lines, 3)

			assert.Equal(t, strings.Repeat(o.Sep, width), lines[0])
			assert.Equal(t, strings.Repeat(o.Sep, width), lines[2])
			assert.Equal(t, width, utf8.RuneCountInString(lines[1]))
			assert.Equal(t, o.Title, strings.TrimSpace(lines[1]))

			left := len(lines[1]) - len(strings.TrimLeft(lines[1], " "))
			right := len(lines[1]) - len(strings.TrimRight(lines[1], " "))
			if o.Title != "" {
				assert.Contains(t, []int{right, right - 1}, left, "left pad never exceeds right pad")
			}

			assert.Equal(t, strings.Repeat(o.Sep, width), b.Footer)
		})
	}
}

func TestSynthesize_Inline(t *testing.T) {
	b := Synthesize(options.Resolved{Title: "Inline", Sep: "-", Width: 3, SepLine: false})

	assert.Equal(t, "--- Inline ---", b.Header)
	assert.Equal(t, strings.Repeat("-", 2*(3+1)+6), b.Footer)
	assert.Len(t, b.Footer, len(b.Header))
}

func TestSynthesize_InlineFooterLength(t *testing.T) {
	for _, width := range []uint{0, 1, 5, 40} {
		for _, title := range []string{"", "x", "Title", "ünïcode"} {
			b := Synthesize(options.Resolved{Title: title, Sep: "#", Width: width, SepLine: false})

			want := 2*(int(width)+1) + utf8.RuneCountInString(title)
			assert.Equal(t, want, strings.Count(b.Footer, "#"), "width=%d title=%q", width, title)
			assert.NotContains(t, b.Header, "\n")
		}
	}
}

func TestBanner_Statements(t *testing.T) {
	b := Banner{Header: "--\nab\n--", Footer: "--"}

	header, footer := b.Statements()

	assertPrints(t, header, b.Header)
	assertPrints(t, footer, b.Footer)

	assert.Equal(t, []string{HeaderTag}, header.Decorations().End.All())
	assert.Equal(t, []string{FooterTag}, footer.Decorations().End.All())
	assert.True(t, IsGenerated(header))
	assert.True(t, IsGenerated(footer))

	again, _ := b.Statements()
	assert.NotSame(t, header, again, "every call builds new nodes")
}

func TestIsGenerated_UserStatement(t *testing.T) {
	stmt := &dst.ExprStmt{X: dst.NewIdent("x")}
	stmt.Decs.End.Append("// keep")

	assert.False(t, IsGenerated(stmt))
}

func assertPrints(t *testing.T, stmt dst.Stmt, text string) {
	t.Helper()

	expr, ok := stmt.(*dst.ExprStmt)
	require.True(t, ok)

	call, ok := expr.X.(*dst.CallExpr)
	require.True(t, ok)

	fun, ok := call.Fun.(*dst.Ident)
	require.True(t, ok)
	assert.Equal(t, "fmt", fun.Path)
	assert.Equal(t, "Println", fun.Name)

	require.Len(t, call.Args, 1)
	lit, ok := call.Args[0].(*dst.BasicLit)
	require.True(t, ok)

	got, err := strconv.Unquote(lit.Value)
	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestSynthesize_NonASCIITitleCountsRunes(t *testing.T) {
	// "Größe" is 5 runes and 7 bytes.
	b := Synthesize(options.Resolved{Title: "Größe", Sep: "-", Width: 2, SepLine: true})
	assert.Equal(t, strings.Repeat("-", 7), b.Footer)

	inline := Synthesize(options.Resolved{Title: "Größe", Sep: "-", Width: 2, SepLine: false})
	assert.Equal(t, "-- Größe --", inline.Header)
	assert.Equal(t, strings.Repeat("-", 11), inline.Footer)
}
