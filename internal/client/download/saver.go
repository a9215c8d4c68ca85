// Package download saves export payloads into a local directory, the
// terminal counterpart of a browser download.
package download

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/leo/internal/filex"
)

var ErrInvalidName = errors.New("invalid file name")

// DirSaver writes files into Dir. The payload is written to a temporary
// file in Dir first and renamed into place, so a partially written export
// never appears under its final name. Existing files are kept; the new file
// gets a "name (n).ext" variant instead.
type DirSaver struct {
	Dir string
}

// NewDirSaver returns a DirSaver for dir.
func NewDirSaver(dir string) *DirSaver {
	return &DirSaver{Dir: dir}
}

// Save implements api.Saver and returns the absolute path of the saved file.
func (s *DirSaver) Save(ctx context.Context, name string, data []byte) (path string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	base := filex.SafeName(name)
	if base == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	dir, err := filex.EnsureDir(s.Dir)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, ".leo-download-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	// The temporary file is released on every path; after a successful
	// rename the removal is a no-op.
	defer func() {
		if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = fmt.Errorf("remove temp file: %w", rmErr)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return "", fmt.Errorf("chmod %s: %w", tmpName, err)
	}

	target, err := filex.UniquePath(dir, base)
	if err != nil {
		return "", err
	}
	if err := os.Rename(tmpName, target); err != nil {
		return "", fmt.Errorf("rename to %s: %w", target, err)
	}

	return filepath.Clean(target), nil
}
