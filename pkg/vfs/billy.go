package vfs

import (
	"io"
	"os"

	"github.com/arthur-debert/dp/pkg/errors"
	"github.com/go-git/go-billy/v5"
)

// billyFS implements VFS on top of a go-billy filesystem
type billyFS struct {
	bfs billy.Filesystem
}

// NewBilly creates a VFS over any billy filesystem (memfs, osfs, chroot).
func NewBilly(bfs billy.Filesystem) VFS {
	return &billyFS{bfs: bfs}
}

func (b *billyFS) Exists(path string) bool {
	_, err := b.bfs.Lstat(path)
	return err == nil
}

func (b *billyFS) Copy(src, dst string) error {
	info, err := b.bfs.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCopyFailed, "cannot stat %s", src)
	}
	if !info.Mode().IsRegular() {
		return errors.Newf(errors.ErrNotRegular, "%s is not a regular file", src)
	}
	if b.Exists(dst) {
		return errors.Newf(errors.ErrFileExists, "%s already exists", dst)
	}

	in, err := b.bfs.Open(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCopyFailed, "cannot open %s", src)
	}
	defer func() { _ = in.Close() }()

	out, err := b.bfs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Wrapf(err, errors.ErrCopyFailed, "cannot create %s", dst)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = b.bfs.Remove(dst)
		return errors.Wrapf(err, errors.ErrCopyFailed, "cannot copy %s to %s", src, dst)
	}
	if err := out.Close(); err != nil {
		_ = b.bfs.Remove(dst)
		return errors.Wrapf(err, errors.ErrCopyFailed, "cannot finish writing %s", dst)
	}
	return nil
}

func (b *billyFS) Filename(path string) string { return slashFilename(path) }
func (b *billyFS) Parent(path string) string   { return slashParent(path) }
