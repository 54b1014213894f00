//go:build !unix

package filesystem

import (
	"os"

	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/types"
)

func lstatKind(path string) (types.NodeKind, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return types.KindUnknown, err
	}
	return types.KindFromMode(info.Mode()), nil
}

func statKind(path string) (types.NodeKind, error) {
	info, err := os.Stat(path)
	if err != nil {
		return types.KindUnknown, err
	}
	return types.KindFromMode(info.Mode()), nil
}
