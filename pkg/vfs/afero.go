package vfs

import (
	"io"
	"os"

	"github.com/arthur-debert/dp/pkg/errors"
	"github.com/spf13/afero"
)

// aferoFS implements VFS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAfero creates a VFS over any afero filesystem
func NewAfero(fs afero.Fs) VFS {
	return &aferoFS{fs: fs}
}

func (a *aferoFS) Exists(path string) bool {
	// Lstat is only available on some backends (OsFs, CopyOnWriteFs).
	if l, ok := a.fs.(afero.Lstater); ok {
		_, _, err := l.LstatIfPossible(path)
		return err == nil
	}
	_, err := a.fs.Stat(path)
	return err == nil
}

func (a *aferoFS) Copy(src, dst string) error {
	in, err := a.fs.Open(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCopyFailed, "cannot open %s", src)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return errors.Wrapf(err, errors.ErrCopyFailed, "cannot stat %s", src)
	}
	if !info.Mode().IsRegular() {
		return errors.Newf(errors.ErrNotRegular, "%s is not a regular file", src)
	}

	// Not every afero backend honours O_EXCL, so check first.
	if a.Exists(dst) {
		return errors.Newf(errors.ErrFileExists, "%s already exists", dst)
	}

	out, err := a.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Wrapf(err, errors.ErrCopyFailed, "cannot create %s", dst)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = a.fs.Remove(dst)
		return errors.Wrapf(err, errors.ErrCopyFailed, "cannot copy %s to %s", src, dst)
	}
	if err := out.Close(); err != nil {
		_ = a.fs.Remove(dst)
		return errors.Wrapf(err, errors.ErrCopyFailed, "cannot finish writing %s", dst)
	}
	return nil
}

func (a *aferoFS) Filename(path string) string { return slashFilename(path) }
func (a *aferoFS) Parent(path string) string   { return slashParent(path) }
