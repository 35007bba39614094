package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeusData/ts-highlight/internal/highlight"
)

// execute runs the root command in a directory with no config file.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	return executeHere(t, args...)
}

// executeHere runs the root command in the current directory.
func executeHere(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestGraphvizSimple(t *testing.T) {
	out, _, err := execute(t, "--graphviz-only", "--code", `test = "1"`, "--language", "python")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph name {\n"))
	assert.True(t, strings.HasSuffix(out, "\n}"))
	assert.Len(t, strings.Split(out, "\n"), 28)
}

func TestGraphvizStableIDs(t *testing.T) {
	args := []string{"--graphviz-only", "--code", "let x = 1;", "--language", "rust"}
	first, _, err := execute(t, args...)
	require.NoError(t, err)
	second, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	want := 1
	for _, line := range strings.Split(first, "\n") {
		if !strings.HasPrefix(line, "node_") || strings.Contains(line, "->") {
			continue
		}
		head, _, _ := strings.Cut(strings.TrimPrefix(line, "node_"), "[")
		id, err := strconv.Atoi(head)
		require.NoError(t, err, line)
		assert.Equal(t, want, id)
		want++
	}
	assert.Greater(t, want, 1)
}

func TestGraphvizValidate(t *testing.T) {
	code := `fn main() {
            let test = "\"1\""; // comment
        }`
	out, _, err := execute(t, "--graphviz-only", "--validate", "--code", code, "--language", "rust")
	require.NoError(t, err)
	assert.Contains(t, out, `let test = \"\\\"1\\\"\"; // comment`)
}

func TestGraphvizSVGToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.svg")
	out, _, err := execute(t, "--graphviz-only", "--format", "svg", "-o", path, "--code", "[package]", "--language", "toml")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestFormatRequiresGraphviz(t *testing.T) {
	_, _, err := execute(t, "--format", "png", "--code", "x", "--language", "python", "--highlights", "(identifier) @v")
	assert.ErrorContains(t, err, "--graphviz-only")
}

func TestHighlights(t *testing.T) {
	out, _, err := execute(t,
		"--code", "test = 1",
		"--language", "python",
		"--highlights", `(identifier) @variable "=" @operator (integer) @number`,
	)
	require.NoError(t, err)
	assert.Equal(t, "variable 0 4\noperator 5 6\nnumber 7 8\n", out)
}

func TestHighlightsRequired(t *testing.T) {
	_, _, err := execute(t, "--code", "test = 1", "--language", "python")
	require.ErrorIs(t, err, errHighlightsRequired)
	assert.EqualError(t, err, "--highlights is required when not using --graphviz-only")
}

func TestHighlightsFile(t *testing.T) {
	query := filepath.Join(t.TempDir(), "highlights.scm")
	require.NoError(t, os.WriteFile(query, []byte("(integer) @number\n"), 0o644))

	out, _, err := execute(t, "--code", "test = 1", "--language", "python", "--highlights-file", query)
	require.NoError(t, err)
	assert.Equal(t, "number 7 8\n", out)
}

func TestHighlightsFromConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "queries"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "queries", "python.scm"), []byte("(identifier) @variable\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".ts-highlight.yaml"), []byte("queries:\n  python: queries/python.scm\n"), 0o644))

	out, _, err := executeHere(t, "--code", "test = 1", "--language", "python")
	require.NoError(t, err)
	assert.Equal(t, "variable 0 4\n", out)
}

func TestEmptyHighlightsQuery(t *testing.T) {
	out, _, err := execute(t, "--code", "test = 1", "--language", "python", "--highlights", "")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFileNotUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.py")
	require.NoError(t, os.WriteFile(path, []byte("s = \"caf\xe9\""), 0o644))

	_, _, err := execute(t, "--graphviz-only", "--file", path)
	require.Error(t, err)
	assert.EqualError(t, err, "read code: "+path+" is not valid UTF-8")

	_, _, err = execute(t, "--file", path, "--highlights", "(string) @string")
	assert.ErrorContains(t, err, "not valid UTF-8")
}

func TestFailedRunKeepsOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("PREVIOUS CONTENT"), 0o644))

	_, _, err := execute(t, "--code", "x = 1", "--language", "python", "--highlights", "(not_a_node) @x", "-o", path)
	require.ErrorIs(t, err, highlight.ErrInvalidQuery)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "PREVIOUS CONTENT", string(data))
}

func TestHighlightsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("PREVIOUS CONTENT"), 0o644))

	out, _, err := execute(t, "--code", "x = 1", "--language", "python", "--highlights", "(integer) @number", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "number 4 5\n", string(data))
}

func TestGraphvizOtherGrammars(t *testing.T) {
	for _, l := range []string{"swift", "haskell", "sql"} {
		t.Run(l, func(t *testing.T) {
			out, _, err := execute(t, "--graphviz-only", "--code", "x", "--language", l)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(out, "digraph name {\nnode_1[label="))
		})
	}
}

func TestInvalidQuery(t *testing.T) {
	_, _, err := execute(t, "--code", "x", "--language", "python", "--highlights", "(not_a_node) @x")
	require.ErrorIs(t, err, highlight.ErrInvalidQuery)
}

func TestFileInfersLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.js")
	require.NoError(t, os.WriteFile(path, []byte("const test = 1;"), 0o644))

	out, _, err := execute(t, "--file", path, "--highlights", `(number) @number`)
	require.NoError(t, err)
	assert.Equal(t, "number 13 14\n", out)
}

func TestFileUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	_, _, err := execute(t, "--file", path, "--graphviz-only")
	assert.ErrorContains(t, err, "--language")
}

func TestUnsupportedLanguage(t *testing.T) {
	_, _, err := execute(t, "--graphviz-only", "--code", "x", "--language", "cobol")
	assert.ErrorContains(t, err, "unsupported language")
}

func TestCodeAndFileExclusive(t *testing.T) {
	_, _, err := execute(t, "--graphviz-only", "--code", "x", "--file", "x.py", "--language", "python")
	assert.Error(t, err)
}

func TestCodeOrFileRequired(t *testing.T) {
	_, _, err := execute(t, "--graphviz-only", "--language", "python")
	assert.Error(t, err)
}

func TestLanguagesCommand(t *testing.T) {
	out, _, err := execute(t, "languages")
	require.NoError(t, err)
	names := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, names, "kotlin")
	assert.Contains(t, names, "dockerfile")
	assert.Contains(t, names, "javascript")
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, stderr, err := execute(t, "-v", "--graphviz-only", "--code", "x = 1", "--language", "python")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph name {"))
	assert.Contains(t, stderr, "dot.render")
}

func TestVersion(t *testing.T) {
	SetVersion("v1.2.3")
	t.Cleanup(func() { SetVersion("dev") })
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "v1.2.3")
}
