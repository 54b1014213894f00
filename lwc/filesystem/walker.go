package filesystem

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/common"
	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/options"
	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/services"
	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/types"

	"github.com/rs/zerolog"
)

// Walker enumerates roots depth-first in pre-order. Siblings are visited in
// lexical order, so numbering is stable for a given tree. Symlinks below a
// root are reported but never followed.
type Walker struct {
	roots    []string
	mode     types.RunMode
	opts     options.TraversalOptions
	logger   zerolog.Logger
	consumed atomic.Bool
}

// NewWalker creates a walker over roots, which are visited in the given order.
func NewWalker(roots []string, mode types.RunMode, opts options.TraversalOptions, logger zerolog.Logger) *Walker {
	return &Walker{
		roots:  roots,
		mode:   mode,
		opts:   opts,
		logger: logger,
	}
}

// Entries returns the lazy entry sequence. It can be obtained once; later
// calls fail with ErrWalkerConsumed. Iteration stops early when ctx is done.
func (w *Walker) Entries(ctx context.Context) (iter.Seq[types.Entry], error) {
	if !w.consumed.CompareAndSwap(false, true) {
		return nil, common.ErrWalkerConsumed
	}

	return func(yield func(types.Entry) bool) {
		var next uint64
		emit := func(e types.Entry) bool {
			if ctx.Err() != nil {
				return false
			}
			e.OriginIndex = next
			next++
			return yield(e)
		}

		for _, root := range w.roots {
			if !w.walkRoot(root, emit) {
				return
			}
		}
	}, nil
}

func (w *Walker) walkRoot(root string, emit func(types.Entry) bool) bool {
	classify := Classify
	if w.opts.FollowRootSymlinks {
		classify = ClassifyFollow
	}

	kind, err := classify(root)
	if err != nil {
		return emit(types.Entry{Path: root, Kind: types.KindUnknown, Err: err})
	}
	if kind != types.KindDirectory {
		return emit(types.Entry{Path: root, Kind: kind})
	}

	return w.walkDir(root, 0, w.loadIgnore(root), emit)
}

func (w *Walker) walkDir(path string, depth int, ri *services.RootIgnore, emit func(types.Entry) bool) bool {
	entry := types.Entry{Path: path, Kind: types.KindDirectory, Depth: depth}

	listing, err := readListing(path, ri)
	if err != nil {
		entry.Err = common.NewAccessError(path, err)
		w.logger.Debug().Err(err).Str("path", path).Msg("Directory not readable")
		return emit(entry)
	}
	if w.mode.DirectoryElements {
		entry.Listing = listing
	}
	if !emit(entry) {
		return false
	}

	// Only the immediate children of a root are visited without recursion.
	if depth > 0 && !w.mode.Recursive {
		return true
	}

	for _, d := range listing {
		child := filepath.Join(path, d.Name())
		kind := types.KindFromMode(d.Type())

		if kind == types.KindDirectory && w.mode.Recursive {
			if !w.walkDir(child, depth+1, ri, emit) {
				return false
			}
			continue
		}
		if !emit(types.Entry{Path: child, Kind: kind, Depth: depth + 1}) {
			return false
		}
	}
	return true
}

func (w *Walker) loadIgnore(root string) *services.RootIgnore {
	checker, err := services.LoadIgnore(root, w.opts.IgnoreFile)
	if err != nil {
		w.logger.Warn().Err(err).Str("root", root).Msg("Failed to get ignore patterns")
		return nil
	}
	if checker == nil {
		return nil
	}
	return services.NewRootIgnore(root, checker)
}

// readListing lists path in lexical order, dropping ignored children. A
// listing error is returned as is and nothing below path is visited.
func readListing(path string, ri *services.RootIgnore) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	if ri == nil {
		return entries, nil
	}

	kept := entries[:0]
	for _, d := range entries {
		if ri.Ignored(filepath.Join(path, d.Name()), d.IsDir()) {
			continue
		}
		kept = append(kept, d)
	}
	return kept, nil
}
