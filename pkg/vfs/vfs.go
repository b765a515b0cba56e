package vfs

import (
	"strings"
)

// VFS is the filesystem capability required by the duplicator.
type VFS interface {
	// Exists reports whether a file is currently known at path.
	Exists(path string) bool

	// Copy creates dst as a duplicate of src. It never overwrites an
	// existing dst. Any failure is returned as an error and leaves no dst.
	Copy(src, dst string) error

	// Filename returns the last component of path.
	Filename(path string) string

	// Parent returns everything before the last component of path.
	Parent(path string) string
}

// slashFilename splits on the last '/' and returns what follows it.
func slashFilename(path string) string {
	if pos := strings.LastIndexByte(path, '/'); pos >= 0 {
		return path[pos+1:]
	}
	return path
}

// slashParent splits on the last '/' and returns what precedes it.
func slashParent(path string) string {
	if pos := strings.LastIndexByte(path, '/'); pos >= 0 {
		return path[:pos]
	}
	return ""
}
