package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/options"
	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/types"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// writeTree creates files under root. A key ending in "/" creates an empty
// directory.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		full := filepath.Join(root, filepath.FromSlash(name))
		if name[len(name)-1] == '/' {
			require.NoError(t, os.MkdirAll(full, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
}

func walkAll(t *testing.T, roots []string, mode types.RunMode, opts options.TraversalOptions) []types.Entry {
	t.Helper()
	w := NewWalker(roots, mode, opts, zerolog.Nop())
	seq, err := w.Entries(context.Background())
	require.NoError(t, err)
	return slices.Collect(seq)
}

// relPaths maps entry paths to slash-separated paths relative to root.
func relPaths(t *testing.T, root string, entries []types.Entry) []string {
	t.Helper()
	out := make([]string, len(entries))
	for i, e := range entries {
		rel, err := filepath.Rel(root, e.Path)
		require.NoError(t, err)
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func skipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
}

func testRunOptions(workers int) options.RunOptions {
	opts := options.DefaultRunOptions()
	opts.Workers = workers
	opts.QueueSize = 2
	opts.BufferSize = 7
	return opts
}
