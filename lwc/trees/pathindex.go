package trees

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/types"

	"github.com/armon/go-radix"
)

// PathIndex maps result paths to their results in a patricia tree so all
// results under a directory prefix can be visited in O(k) to find the subtree.
type PathIndex struct {
	tree *radix.Tree // path -> []*types.Result (the same path may be counted twice)
	mu   sync.RWMutex
	size int
}

func NewPathIndex() *PathIndex {
	return &PathIndex{tree: radix.New()}
}

// Insert adds a result under its normalized path.
func (idx *PathIndex) Insert(r *types.Result) {
	if r == nil || r.Path == "" {
		return
	}
	key := normalizePath(r.Path)

	idx.mu.Lock()
	defer idx.mu.Unlock()

	var bucket []*types.Result
	if v, ok := idx.tree.Get(key); ok {
		bucket = v.([]*types.Result)
	}
	idx.tree.Insert(key, append(bucket, r))
	idx.size++
}

// Lookup returns the results recorded for exactly path.
func (idx *PathIndex) Lookup(path string) []*types.Result {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if v, ok := idx.tree.Get(normalizePath(path)); ok {
		return v.([]*types.Result)
	}
	return nil
}

// Under calls fn for every result whose path is prefix or lies beneath it.
// Matching is per path component: "a/b" does not match "a/bc".
// Iteration is in lexical path order; fn returning false stops the walk.
func (idx *PathIndex) Under(prefix string, fn func(*types.Result) bool) {
	p := normalizePath(prefix)

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	visit := func(key string, v interface{}) bool {
		if !isWithin(key, p) {
			return false
		}
		for _, r := range v.([]*types.Result) {
			if !fn(r) {
				return true
			}
		}
		return false
	}

	// Relative paths are stored without a leading "./"
	if p == "." {
		idx.tree.Walk(visit)
		return
	}
	idx.tree.WalkPrefix(p, visit)
}

func (idx *PathIndex) Size() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.size
}

func isWithin(key, prefix string) bool {
	if key == prefix {
		return true
	}
	if prefix == "." {
		return !filepath.IsAbs(key) && key != ".." && !strings.HasPrefix(key, "../")
	}
	if strings.HasSuffix(prefix, "/") {
		return strings.HasPrefix(key, prefix)
	}
	return strings.HasPrefix(key, prefix) && key[len(prefix)] == '/'
}

// normalizePath ensures consistent path formatting for the index
func normalizePath(path string) string {
	normalized := strings.ReplaceAll(path, "\\", "/")
	return filepath.ToSlash(filepath.Clean(normalized))
}
