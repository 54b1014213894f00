//go:build unix

package filesystem

import (
	"io/fs"
	"syscall"

	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/types"

	"golang.org/x/sys/unix"
)

func lstatKind(path string) (types.NodeKind, error) {
	var st unix.Stat_t
	for {
		err := unix.Lstat(path, &st)
		if err == syscall.EINTR {
			continue
		}
		if err != nil {
			return types.KindUnknown, &fs.PathError{Op: "lstat", Path: path, Err: err}
		}
		break
	}
	return kindFromStatMode(uint32(st.Mode)), nil
}

func statKind(path string) (types.NodeKind, error) {
	var st unix.Stat_t
	for {
		err := unix.Stat(path, &st)
		if err == syscall.EINTR {
			continue
		}
		if err != nil {
			return types.KindUnknown, &fs.PathError{Op: "stat", Path: path, Err: err}
		}
		break
	}
	return kindFromStatMode(uint32(st.Mode)), nil
}

func kindFromStatMode(mode uint32) types.NodeKind {
	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		return types.KindRegularFile
	case unix.S_IFDIR:
		return types.KindDirectory
	case unix.S_IFLNK:
		return types.KindSymlink
	case unix.S_IFIFO:
		return types.KindFifo
	case unix.S_IFSOCK:
		return types.KindSocket
	case unix.S_IFBLK:
		return types.KindBlockDevice
	case unix.S_IFCHR:
		return types.KindCharDevice
	default:
		return types.KindUnknown
	}
}
