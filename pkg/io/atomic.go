package io

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/matzehuels/gitdiagram/pkg/errors"
)

// WriteFileAtomic creates or replaces path with the bytes produced by fill.
//
// fill writes into a temporary file in the same directory, which is renamed
// over path only when fill and the close succeed. On any failure the
// temporary file is removed and path is left untouched. Errors returned by
// fill keep their code; file system failures are reported as IO errors.
func WriteFileAtomic(path string, fill func(w io.Writer) error) (err error) {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp := filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err := fill(f); err != nil {
		if errors.GetCode(err) == "" {
			return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
		}
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "rename into %s", path)
	}
	return nil
}

// WriteFile writes data to path atomically.
func WriteFile(path string, data []byte) error {
	return WriteFileAtomic(path, func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(data))
		return err
	})
}
