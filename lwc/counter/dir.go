package counter

import (
	"io/fs"

	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/types"
)

// CountDir tallies a one-level listing by node kind. Kinds come from the
// directory entry type bits, so symlinks are counted as symlinks.
func CountDir(path string, listing []fs.DirEntry, mode types.DepthMode) types.DirCount {
	kinds := make([]types.NodeKind, len(listing))
	for i, e := range listing {
		kinds[i] = types.KindFromMode(e.Type())
	}
	return CountKinds(path, kinds, mode)
}

// CountKinds tallies already classified children.
func CountKinds(path string, kinds []types.NodeKind, mode types.DepthMode) types.DirCount {
	dc := types.DirCount{Path: path, DepthMode: mode}

	for _, k := range kinds {
		switch k {
		case types.KindDirectory:
			dc.Subdirs++
		case types.KindRegularFile:
			dc.Files++
		case types.KindSymlink:
			dc.Symlinks++
		case types.KindBlockDevice:
			dc.Blocks++
		case types.KindCharDevice:
			dc.Chars++
		case types.KindFifo:
			dc.Fifos++
		case types.KindSocket:
			dc.Sockets++
		default:
			dc.Unknown++
		}
	}

	dc.Others = dc.Blocks + dc.Chars + dc.Fifos + dc.Sockets + dc.Unknown
	return dc
}
