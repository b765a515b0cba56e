// Package vfs provides the filesystem boundary used by the duplicator.
//
// The duplicator only needs to know whether a name is taken and how to copy
// one file to another. VFS captures exactly that, plus the two path helpers
// (Filename and Parent) used by rules that operate on the last path component.
//
// Implementations:
//   - NewOS: the real filesystem
//   - NewMemory: a set of known paths, for deterministic tests
//   - NewAfero / NewBilly: any afero.Fs or billy.Filesystem
//   - NewDryRun: wraps another VFS and only records planned copies
package vfs
