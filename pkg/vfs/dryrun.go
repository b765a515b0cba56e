package vfs

import (
	"os"

	"github.com/arthur-debert/dp/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// DryRun wraps a VFS so copies are only planned, never performed.
// Planned names are kept in an in-memory afero layer and count as existing,
// so later inputs in the same batch collide with them just as they would
// with real copies.
type DryRun struct {
	base    VFS
	planned afero.Fs
	order   []CopyRecord
	logger  zerolog.Logger
}

// NewDryRun creates a DryRun over base.
func NewDryRun(base VFS, logger zerolog.Logger) *DryRun {
	return &DryRun{
		base:    base,
		planned: afero.NewMemMapFs(),
		logger:  logger,
	}
}

func (d *DryRun) Exists(path string) bool {
	if d.base.Exists(path) {
		return true
	}
	ok, err := afero.Exists(d.planned, path)
	return err == nil && ok
}

func (d *DryRun) Copy(src, dst string) error {
	if !d.Exists(src) {
		return errors.Newf(errors.ErrNotFound, "%s does not exist", src)
	}
	if d.Exists(dst) {
		return errors.Newf(errors.ErrFileExists, "%s already exists", dst)
	}
	if err := afero.WriteFile(d.planned, dst, nil, os.FileMode(0o644)); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "cannot record planned copy %s", dst)
	}
	d.order = append(d.order, CopyRecord{Src: src, Dst: dst})
	d.logger.Info().Str("src", src).Str("dst", dst).Msg("Would copy")
	return nil
}

func (d *DryRun) Filename(path string) string { return d.base.Filename(path) }
func (d *DryRun) Parent(path string) string   { return d.base.Parent(path) }

// Planned returns the copies that would have been performed, in order.
func (d *DryRun) Planned() []CopyRecord {
	return append([]CopyRecord(nil), d.order...)
}

