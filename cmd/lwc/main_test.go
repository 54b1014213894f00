package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// isolate points config lookup at an empty directory.
func isolate(t *testing.T) string {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestCLICountsFiles(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "one.txt"), "hello world\n")
	writeFile(t, filepath.Join(dir, "two.txt"), "foo\nbar baz")

	out, _, err := execute(t, "", "one.txt", "two.txt", "--workers", "2")
	require.NoError(t, err)

	assert.Equal(t,
		"1 line 2 words 12 chars 12 bytes ==> one.txt\n"+
			"2 lines 3 words 11 chars 11 bytes ==> two.txt\n"+
			"\n3 lines 5 words 23 chars 23 bytes\n",
		out)
}

func TestCLIReadsStdin(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "a b\nc")
	require.NoError(t, err)

	assert.Equal(t, "2 lines 3 words 5 chars 5 bytes\n", out)
}

func TestCLIRecursiveTotalsOnly(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "tree", "a.txt"), "a\n")
	writeFile(t, filepath.Join(dir, "tree", "sub", "b.txt"), "b\n")

	out, _, err := execute(t, "", "-r", "-t", "tree")
	require.NoError(t, err)

	assert.Equal(t, "2 lines 2 words 4 chars 4 bytes\n", out)
}

func TestCLIDirectoryElements(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "tree", "a.txt"), "a")
	writeFile(t, filepath.Join(dir, "tree", "sub", "b.txt"), "b")

	out, _, err := execute(t, "", "-d", "-r", "tree")
	require.NoError(t, err)

	assert.Equal(t,
		"1 subdir 1 file ==> tree\n"+
			"1 file ==> "+filepath.Join("tree", "sub")+"\n"+
			"\n1 subdir 2 files\n",
		out)
}

func TestCLIReportsFailures(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "ok.txt"), "ok\n")

	out, errOut, err := execute(t, "", "ok.txt", "missing.txt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 items")
	assert.Equal(t, "1 line 1 word 3 chars 3 bytes ==> ok.txt\n", out)
	assert.Contains(t, errOut, "==> missing.txt: path is not accessible")
}

func TestCLIRejectsDirsOnStdin(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "x", "-d")

	assert.Error(t, err)
}
