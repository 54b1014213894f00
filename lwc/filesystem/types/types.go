package types

import (
	"io/fs"
)

// NodeKind is the classified type of a filesystem node. Symlinks are never
// resolved when classifying, so a link is always KindSymlink.
type NodeKind uint8

const (
	KindUnknown NodeKind = iota
	KindRegularFile
	KindDirectory
	KindSymlink
	KindFifo
	KindSocket
	KindBlockDevice
	KindCharDevice
)

func (k NodeKind) String() string {
	switch k {
	case KindRegularFile:
		return "file"
	case KindDirectory:
		return "dir"
	case KindSymlink:
		return "symlink"
	case KindFifo:
		return "fifo"
	case KindSocket:
		return "socket"
	case KindBlockDevice:
		return "block"
	case KindCharDevice:
		return "char"
	default:
		return "unknown"
	}
}

// KindFromMode derives the NodeKind from the type bits of an fs.FileMode.
func KindFromMode(mode fs.FileMode) NodeKind {
	switch {
	case mode.IsRegular():
		return KindRegularFile
	case mode.IsDir():
		return KindDirectory
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	case mode&fs.ModeNamedPipe != 0:
		return KindFifo
	case mode&fs.ModeSocket != 0:
		return KindSocket
	case mode&fs.ModeDevice != 0 && mode&fs.ModeCharDevice != 0:
		return KindCharDevice
	case mode&fs.ModeDevice != 0:
		return KindBlockDevice
	default:
		return KindUnknown
	}
}

// Entry is a single node discovered by the Walker.
type Entry struct {
	Path string
	Kind NodeKind
	// OriginIndex is strictly increasing over the flattened traversal and
	// restores presentation order after concurrent processing.
	OriginIndex uint64
	// Depth is 0 for a root argument.
	Depth int
	// Listing holds the one-level children of a directory in
	// directory-element mode; nil otherwise.
	Listing []fs.DirEntry
	// Err is set when the node could not be classified or listed.
	Err error
}

// IsRoot reports whether the entry is one of the user supplied roots.
func (e Entry) IsRoot() bool {
	return e.Depth == 0
}

// DepthMode records whether a DirCount came from a recursive run.
type DepthMode uint8

const (
	SingleDirectory DepthMode = iota
	Recursive
)

func (d DepthMode) String() string {
	if d == Recursive {
		return "recursive"
	}
	return "single"
}

// RunMode is fixed for the lifetime of a run.
type RunMode struct {
	Recursive         bool `json:"recursive"`
	DirectoryElements bool `json:"directory_elements"`
	TotalsOnly        bool `json:"totals_only"`
}

// DepthMode returns the DirCount depth mode matching this run.
func (m RunMode) DepthMode() DepthMode {
	if m.Recursive {
		return Recursive
	}
	return SingleDirectory
}

// ResultKind tags which shape a Result or GrandTotal carries.
type ResultKind uint8

const (
	ResultContent ResultKind = iota
	ResultDirectory
)

func (k ResultKind) String() string {
	if k == ResultDirectory {
		return "directory"
	}
	return "content"
}

// ResultKind returns the result shape produced by this run mode.
func (m RunMode) ResultKind() ResultKind {
	if m.DirectoryElements {
		return ResultDirectory
	}
	return ResultContent
}

// ContentCount holds the single-pass statistics of one byte stream.
type ContentCount struct {
	Path  string `json:"path"`
	Lines uint64 `json:"lines"`
	Words uint64 `json:"words"`
	// Chars is nil iff ValidUTF8 is false.
	Chars     *uint64 `json:"chars,omitempty"`
	Bytes     uint64  `json:"bytes"`
	ValidUTF8 bool    `json:"valid_utf8"`
}

// CharCount returns the character count, or 0 when it is unavailable.
func (c ContentCount) CharCount() uint64 {
	if c.Chars == nil {
		return 0
	}
	return *c.Chars
}

// DirCount tallies the immediate children of one directory.
type DirCount struct {
	Path     string `json:"path"`
	Subdirs  uint64 `json:"subdirs"`
	Files    uint64 `json:"files"`
	Symlinks uint64 `json:"symlinks"`
	// Others is the sum of the breakdown below.
	Others uint64 `json:"others"`

	Blocks  uint64 `json:"blocks"`
	Chars   uint64 `json:"chars"`
	Fifos   uint64 `json:"fifos"`
	Sockets uint64 `json:"sockets"`
	Unknown uint64 `json:"unknown"`

	DepthMode DepthMode `json:"depth_mode"`
}

// Result is the outcome of one job: exactly one of Content, Dir or Err is set.
type Result struct {
	OriginIndex uint64
	Path        string
	Kind        ResultKind
	Content     *ContentCount
	Dir         *DirCount
	Err         error
}

// Failed reports whether the job produced an error instead of a count.
func (r Result) Failed() bool {
	return r.Err != nil
}
