package vfs

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dp/pkg/errors"
)

// osFS implements VFS using the OS filesystem
type osFS struct{}

// NewOS creates a new OS filesystem implementation
func NewOS() VFS {
	return &osFS{}
}

// Exists uses Lstat so a dangling symlink still counts as taken.
func (o *osFS) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func (o *osFS) Copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCopyFailed, "cannot open %s", src)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return errors.Wrapf(err, errors.ErrCopyFailed, "cannot stat %s", src)
	}
	if !info.Mode().IsRegular() {
		return errors.Newf(errors.ErrNotRegular, "%s is not a regular file", src).
			WithDetail("mode", info.Mode().String())
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		if os.IsExist(err) {
			return errors.Wrapf(err, errors.ErrFileExists, "%s already exists", dst)
		}
		return errors.Wrapf(err, errors.ErrCopyFailed, "cannot create %s", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return errors.Wrapf(err, errors.ErrCopyFailed, "cannot copy %s to %s", src, dst)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return errors.Wrapf(err, errors.ErrCopyFailed, "cannot finish writing %s", dst)
	}
	return nil
}

func (o *osFS) Filename(path string) string {
	_, file := filepath.Split(path)
	return file
}

// Parent keeps a lone root separator ("/x" → "/") and returns "" for bare names.
func (o *osFS) Parent(path string) string {
	dir, _ := filepath.Split(path)
	if dir == "" || dir == string(filepath.Separator) {
		return dir
	}
	return strings.TrimRight(dir, string(filepath.Separator))
}
