package common

import (
	"errors"
	"fmt"
	"io/fs"
)

// Common error types used across filesystem packages
var (
	ErrAccess         = errors.New("path is not accessible")
	ErrIO             = errors.New("read failed")
	ErrNotRegular     = errors.New("not a regular file")
	ErrNotDirectory   = errors.New("not a directory")
	ErrNoRoots        = errors.New("no paths to count")
	ErrMixedResults   = errors.New("content and directory results cannot be merged into one total")
	ErrWalkerConsumed = errors.New("walker has already been consumed")
	ErrInvalidWorkers = errors.New("worker count must not be negative")
)

// ErrorKind classifies a per-item failure.
type ErrorKind uint8

const (
	KindAccess ErrorKind = iota
	KindIO
	KindNotRegular
	KindNotDirectory
)

func (k ErrorKind) String() string {
	switch k {
	case KindAccess:
		return "access"
	case KindIO:
		return "io"
	case KindNotRegular:
		return "not-regular"
	case KindNotDirectory:
		return "not-directory"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindAccess:
		return ErrAccess
	case KindIO:
		return ErrIO
	case KindNotRegular:
		return ErrNotRegular
	case KindNotDirectory:
		return ErrNotDirectory
	default:
		return nil
	}
}

// ItemError is a failure local to one path. It never aborts a run.
type ItemError struct {
	Kind ErrorKind
	Path string
	Err  error
}

// Error names an anonymous stream "-", as wc does for standard input.
func (e *ItemError) Error() string {
	name := e.Path
	if name == "" {
		name = "-"
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", name, e.Kind.sentinel())
	}
	return fmt.Sprintf("%s: %s: %v", name, e.Kind.sentinel(), e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error kind, so errors.Is(err, ErrAccess) works.
func (e *ItemError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// NewAccessError wraps a stat or open failure.
func NewAccessError(path string, err error) *ItemError {
	return &ItemError{Kind: KindAccess, Path: path, Err: stripPath(err)}
}

// NewIOError wraps a failure while streaming a file.
func NewIOError(path string, err error) *ItemError {
	return &ItemError{Kind: KindIO, Path: path, Err: stripPath(err)}
}

// NewNotRegularError marks a content-mode root that is not a regular file or directory.
func NewNotRegularError(path string) *ItemError {
	return &ItemError{Kind: KindNotRegular, Path: path}
}

// NewNotDirectoryError marks a directory-mode root that is not a directory.
func NewNotDirectoryError(path string) *ItemError {
	return &ItemError{Kind: KindNotDirectory, Path: path}
}

// IsItemError reports whether err is a per-item failure.
func IsItemError(err error) bool {
	var ie *ItemError
	return errors.As(err, &ie)
}

// stripPath drops the *fs.PathError wrapper; the ItemError already carries the path.
func stripPath(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
