package rewrite

import (
	"errors"
	"strings"
	"testing"

	"github.com/dave/dst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"function-frame/internal/banner"
	"function-frame/internal/diagnostic"
	"function-frame/internal/source"
)

func parse(t *testing.T, src string) *source.File {
	t.Helper()

	f, err := source.Parse("test.go", []byte(src))
	require.NoError(t, err)

	return f
}

func findDecl(t *testing.T, f *source.File, name string) dst.Decl {
	t.Helper()

	for _, d := range f.Syntax.Decls {
		switch d := d.(type) {
		case *dst.FuncDecl:
			if d.Name.Name == name {
				return d
			}
		case *dst.GenDecl:
			for _, s := range d.Specs {
				switch s := s.(type) {
				case *dst.ValueSpec:
					if s.Names[0].Name == name {
						return d
					}
				case *dst.TypeSpec:
					if s.Name.Name == name {
						return d
					}
				}
			}
		}
	}

	t.Fatalf("declaration %s not found", name)

	return nil
}

func guards(header, footer string) (dst.Stmt, dst.Stmt) {
	return banner.Banner{Header: header, Footer: footer}.Statements()
}

// bodyLines renders f and returns the trimmed lines of function name's body.
func bodyLines(t *testing.T, f *source.File, name string) []string {
	t.Helper()

	out, err := f.Render()
	require.NoError(t, err)

	src := string(out)
	start := strings.Index(src, "func "+name+"(")
	require.GreaterOrEqual(t, start, 0)

	var lines []string
	for _, l := range strings.Split(src[start:], "\n")[1:] {
		if l == "}" {
			break
		}

		lines = append(lines, strings.TrimSpace(l))
	}

	return lines
}

func TestApply_VoidFunction(t *testing.T) {
	f := parse(t, `package p

import "fmt"

func voidFunc() {
	fmt.Println("I am simple.")
}
`)
	h, ft := guards("H", "F")

	fn, err := Apply(findDecl(t, f, "voidFunc"), h, ft)
	require.NoError(t, err)
	require.Len(t, fn.Body.List, 3)

	assert.Equal(t, []string{
		`fmt.Println("H") //frame:header`,
		`fmt.Println("I am simple.")`,
		`fmt.Println("F") //frame:footer`,
	}, bodyLines(t, f, "voidFunc"))
}

func TestApply_EmptyBody(t *testing.T) {
	f := parse(t, "package p\n\nfunc empty() {}\n")
	h, ft := guards("H", "F")

	fn, err := Apply(findDecl(t, f, "empty"), h, ft)
	require.NoError(t, err)
	assert.Equal(t, []dst.Stmt{h, ft}, fn.Body.List)

	out, err := f.Render()
	require.NoError(t, err)
	assert.Contains(t, string(out), `"fmt"`, "import added for the generated calls")
}

func TestApply_FooterBeforeTrailingReturn(t *testing.T) {
	f := parse(t, `package p

import "fmt"

func nonvoid(val bool) *int {
	fmt.Println("Returning!")
	if val {
		v := -1
		return &v
	}
	return nil
}
`)
	h, ft := guards("H", "F")

	_, err := Apply(findDecl(t, f, "nonvoid"), h, ft)
	require.NoError(t, err)

	lines := bodyLines(t, f, "nonvoid")
	assert.Equal(t, `fmt.Println("H") //frame:header`, lines[0])
	assert.Equal(t, `fmt.Println("F") //frame:footer`, lines[len(lines)-2])
	assert.Equal(t, "return nil", lines[len(lines)-1])
}

func TestApply_OriginalOrderKept(t *testing.T) {
	f := parse(t, `package p

func seq() {
	a := 1
	b := 2
	_ = a + b
}
`)
	h, ft := guards("H", "F")

	fn, err := Apply(findDecl(t, f, "seq"), h, ft)
	require.NoError(t, err)
	require.Len(t, fn.Body.List, 5)

	assert.Same(t, h, fn.Body.List[0])
	assert.Same(t, ft, fn.Body.List[4])
	assert.Equal(t, []string{"H", "a := 1", "b := 2", "_ = a + b", "F"}, stripPrints(bodyLines(t, f, "seq")))
}

func TestApply_Idempotent(t *testing.T) {
	f := parse(t, `package p

import "fmt"

func again() int {
	fmt.Println("body")
	return 1
}
`)
	for range 3 {
		h, ft := guards("H", "F")
		_, err := Apply(findDecl(t, f, "again"), h, ft)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{
		`fmt.Println("H") //frame:header`,
		`fmt.Println("body")`,
		`fmt.Println("F") //frame:footer`,
		"return 1",
	}, bodyLines(t, f, "again"))
}

func TestApplyAll_FirstIsOutermost(t *testing.T) {
	f := parse(t, "package p\n\nfunc nested() {\n\tprintln()\n}\n")

	oh, of := guards("outer", "/outer")
	ih, inf := guards("inner", "/inner")

	fn, err := ApplyAll(findDecl(t, f, "nested"), []Guards{{oh, of}, {ih, inf}})
	require.NoError(t, err)

	assert.Equal(t, []dst.Stmt{oh, ih, fn.Body.List[2], inf, of}, fn.Body.List)
}

func TestApply_NotAFunction(t *testing.T) {
	f := parse(t, `package p

const Answer = 42

type T struct{}

var v = 1

func external()
`)
	tests := []struct {
		name string
		want string
	}{
		{"Answer", "const declaration"},
		{"T", "type declaration"},
		{"v", "var declaration"},
		{"external", "function external without a body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ft := guards("H", "F")

			fn, err := Apply(findDecl(t, f, tt.name), h, ft)
			require.Error(t, err)
			assert.Nil(t, fn)

			var de *diagnostic.Error
			require.True(t, errors.As(err, &de))
			assert.Equal(t, diagnostic.KindApplicability, de.Kind)
			assert.Contains(t, err.Error(), "frame can only be applied to function declarations")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestStrip(t *testing.T) {
	h, ft := guards("H", "F")
	keep := &dst.ExprStmt{X: dst.NewIdent("x")}
	body := &dst.BlockStmt{List: []dst.Stmt{h, keep, ft}}

	assert.Equal(t, 2, Strip(body))
	assert.Equal(t, []dst.Stmt{keep}, body.List)
	assert.Zero(t, Strip(body))
}

// stripPrints reduces generated print lines to their text.
func stripPrints(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		l = strings.TrimSuffix(strings.TrimSuffix(l, " //frame:header"), " //frame:footer")
		if s, ok := strings.CutPrefix(l, `fmt.Println("`); ok {
			l = strings.TrimSuffix(s, `")`)
		}

		out[i] = l
	}

	return out
}
