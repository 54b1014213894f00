package main

import (
	"bytes"
	"testing"

	"github.com/ZanzyTHEbar/line-word-count/lwc/aggregate"
	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/common"
	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u64(v uint64) *uint64 { return &v }

func TestFormatStats(t *testing.T) {
	tests := []struct {
		name  string
		stats []stat
		want  string
	}{
		{"plural and singular", []stat{{1, "line"}, {2, "word"}}, "1 line 2 words"},
		{"zeros dropped", []stat{{0, "line"}, {0, "word"}, {5, "byte"}}, "5 bytes"},
		{"all zero", []stat{{0, "file"}}, "empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatStats(tt.stats))
		})
	}
}

func TestTextReporterItems(t *testing.T) {
	var out, errOut bytes.Buffer
	rep := NewTextReporter(&out, &errOut, false)

	require.NoError(t, rep.Item(types.Result{
		Path:    "a.txt",
		Content: &types.ContentCount{Lines: 1, Words: 2, Chars: u64(12), Bytes: 12, ValidUTF8: true},
	}))
	require.NoError(t, rep.Item(types.Result{
		Path:    "bin",
		Content: &types.ContentCount{Lines: 0, Words: 3, Bytes: 9},
	}))
	require.NoError(t, rep.Item(types.Result{
		Path: "dir",
		Kind: types.ResultDirectory,
		Dir:  &types.DirCount{Subdirs: 1, Files: 2, Symlinks: 1},
	}))
	require.NoError(t, rep.Item(types.Result{
		Content: &types.ContentCount{Lines: 2, Words: 2, Chars: u64(4), Bytes: 4, ValidUTF8: true},
	}))
	require.NoError(t, rep.Item(types.Result{
		Path: "locked",
		Err:  common.NewNotRegularError("locked"),
	}))

	assert.Equal(t,
		"1 line 2 words 12 chars 12 bytes ==> a.txt\n"+
			"3 words 9 bytes ==> bin\n"+
			"1 subdir 2 files 1 symlink ==> dir\n"+
			"2 lines 2 words 4 chars 4 bytes\n",
		out.String())
	assert.Equal(t, "==> locked: not a regular file\n", errOut.String())
}

func TestTextReporterTotal(t *testing.T) {
	var out bytes.Buffer
	rep := NewTextReporter(&out, &bytes.Buffer{}, false)

	require.NoError(t, rep.Total(aggregate.GrandTotal{
		Kind:    types.ResultContent,
		Content: aggregate.ContentTotals{Lines: 3, Words: 5, Chars: 20, Bytes: 23, NonUTF8: 1},
		Items:   2,
	}))

	assert.Equal(t, "\n3 lines 5 words 23 bytes\n", out.String())
}

func TestTextReporterTotalsOnly(t *testing.T) {
	var out bytes.Buffer
	rep := NewTextReporter(&out, &bytes.Buffer{}, true)

	require.NoError(t, rep.Total(aggregate.GrandTotal{
		Kind:     types.ResultDirectory,
		Dir:      aggregate.DirTotals{Subdirs: 2, Fifos: 1},
		Items:    3,
		Failures: 1,
	}))

	assert.Equal(t, "2 subdirs 1 fifo (1 failed)\n", out.String())
}
