package filesystem

import (
	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/common"
	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/types"
)

// Classify returns the kind of path without following a trailing symlink.
// A failed stat is reported as an access error for that path.
func Classify(path string) (types.NodeKind, error) {
	kind, err := lstatKind(path)
	if err != nil {
		return types.KindUnknown, common.NewAccessError(path, err)
	}
	return kind, nil
}

// ClassifyFollow resolves symlinks before classifying. Used for root
// arguments, which are resolved the way `find -H` resolves them.
func ClassifyFollow(path string) (types.NodeKind, error) {
	kind, err := statKind(path)
	if err != nil {
		return types.KindUnknown, common.NewAccessError(path, err)
	}
	return kind, nil
}
