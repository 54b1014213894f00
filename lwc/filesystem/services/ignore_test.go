package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadIgnoreMissingFile(t *testing.T) {
	checker, err := LoadIgnore(t.TempDir(), ".lwcignore")

	require.NoError(t, err)
	assert.Nil(t, checker)
}

func TestLoadIgnoreEmptyName(t *testing.T) {
	checker, err := LoadIgnore(t.TempDir(), "")

	require.NoError(t, err)
	assert.Nil(t, checker)
}

func TestRootIgnoreMatchesPatterns(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".lwcignore"), []byte("*.log\nbuild/\n# comment\n!keep.log\n"), 0o644))

	checker, err := LoadIgnore(root, ".lwcignore")
	require.NoError(t, err)
	require.NotNil(t, checker)

	ri := NewRootIgnore(root, checker)

	tests := []struct {
		name  string
		path  string
		isDir bool
		want  bool
	}{
		{"log at top", "app.log", false, true},
		{"nested log", "sub/deep/app.log", false, true},
		{"negated", "keep.log", false, false},
		{"dir pattern on dir", "build", true, true},
		{"dir pattern on file", "build", false, false},
		{"inside ignored dir", "build/out.txt", false, true},
		{"plain file", "main.go", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ri.Ignored(filepath.Join(root, tt.path), tt.isDir))
		})
	}

	assert.False(t, ri.Ignored(root, true), "root itself is never ignored")
}

func TestNilRootIgnore(t *testing.T) {
	var ri *RootIgnore
	assert.False(t, ri.Ignored("/any", false))
	assert.False(t, NewRootIgnore("/r", nil).Ignored("/r/x", false))
}
