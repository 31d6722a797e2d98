package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleSrc = `package main

import "fmt"

//frame:wrap title = "Simple Example", sep = "-", width = 25
func voidFunc() {
	fmt.Println("I am simple.")
}

func main() {
	voidFunc()
}
`

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	root := newRootCmd(newApp())
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func writeSource(t *testing.T, name, src string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	return path
}

func TestGen_Stdout(t *testing.T) {
	path := writeSource(t, "main.go", exampleSrc)

	out, _, err := run(t, "gen", path)
	require.NoError(t, err)

	assert.Contains(t, out, `//frame:header`)
	assert.Contains(t, out, `fmt.Println("`+strings.Repeat("-", 39)+`") //frame:footer`)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, exampleSrc, string(data), "source untouched without -w")
}

func TestGen_Write(t *testing.T) {
	path := writeSource(t, "main.go", exampleSrc)

	_, _, err := run(t, "gen", "-w", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "//frame:header")
}

func TestGen_OutputDir(t *testing.T) {
	path := writeSource(t, "main.go", exampleSrc)
	out := t.TempDir()

	_, _, err := run(t, "gen", "-o", out, path)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, "main.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "//frame:footer")
}

func TestGen_WriteAndOutputExclusive(t *testing.T) {
	path := writeSource(t, "main.go", exampleSrc)

	_, _, err := run(t, "gen", "-w", "-o", t.TempDir(), path)
	require.Error(t, err)
}

func TestCheck_ReportsDiagnostics(t *testing.T) {
	path := writeSource(t, "bad.go", "package p\n\n//frame:wrap title = \"x\", sep = \"-\"\nfunc f() {}\n")

	_, stderr, err := run(t, "check", path)
	require.Error(t, err)
	assert.Contains(t, stderr, "[arity] expected at least 3 arguments, received 2")
	assert.Contains(t, stderr, "(f)")
}

func TestCheck_OK(t *testing.T) {
	path := writeSource(t, "main.go", exampleSrc)

	out, _, err := run(t, "check", path)
	require.NoError(t, err)
	assert.Equal(t, "ok: 1 frames in 1 files\n", out)
}

func TestList(t *testing.T) {
	path := writeSource(t, "main.go", exampleSrc)

	out, _, err := run(t, "list", path)
	require.NoError(t, err)

	assert.Contains(t, out, "voidFunc")
	assert.Contains(t, out, `"Simple Example"`)
	assert.Contains(t, out, "Position")
}

func TestList_Empty(t *testing.T) {
	path := writeSource(t, "plain.go", "package p\n\nfunc f() {}\n")

	out, _, err := run(t, "list", path)
	require.NoError(t, err)
	assert.Equal(t, "no frame directives found\n", out)
}

func TestConfig_MarkerAndExclude(t *testing.T) {
	dir := t.TempDir()
	src := strings.ReplaceAll(exampleSrc, "//frame:wrap", "//banner:wrap")
	path := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg := filepath.Join(dir, "frame.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("marker: banner:wrap\n"), 0o644))

	out, _, err := run(t, "--config", cfg, "check", path)
	require.NoError(t, err)
	assert.Equal(t, "ok: 1 frames in 1 files\n", out)

	out, _, err = run(t, "check", path)
	require.NoError(t, err)
	assert.Equal(t, "ok: 0 frames in 0 files\n", out, "default marker ignores banner:wrap")
}

func TestConfig_MissingExplicitFile(t *testing.T) {
	_, _, err := run(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "check")
	require.Error(t, err)
}

func TestGen_ReportsWarnings(t *testing.T) {
	src := strings.Replace(exampleSrc, `title = "Simple Example"`, `color = "red", title = "Simple Example"`, 1)
	path := writeSource(t, "main.go", src)

	out, stderr, err := run(t, "gen", path)
	require.NoError(t, err)
	assert.Contains(t, out, "//frame:header")
	assert.Contains(t, stderr, "warning: ")
	assert.Contains(t, stderr, "[ignored_option] option 'color'")
}

func TestCheck_ReportsField(t *testing.T) {
	path := writeSource(t, "bad.go", "package p\n\n//frame:wrap title = \"x\", width = 1, other = 2\nfunc f() {}\n")

	_, stderr, err := run(t, "check", path)
	require.Error(t, err)
	assert.Contains(t, stderr, "[missing_option:sep]")
}

func TestCheck_WidthOutOfRange(t *testing.T) {
	path := writeSource(t, "wide.go", "package p\n\n//frame:wrap title = \"x\", sep = \"-\", width = 9223372036854775807, sep_line = false\nfunc f() {}\n")

	_, stderr, err := run(t, "check", path)
	require.Error(t, err)
	assert.Contains(t, stderr, "[literal_type:width]")
}

func TestConfig_JSONLogFormat(t *testing.T) {
	path := writeSource(t, "main.go", exampleSrc)

	cfg := filepath.Join(t.TempDir(), "frame.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log_format: json\n"), 0o644))

	_, stderr, err := run(t, "--config", cfg, "gen", "-w", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"generation complete"`)
}
