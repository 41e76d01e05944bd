package assets

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var ErrNoSuchRaster = fmt.Errorf("no raster asset at path")
var ErrInvalidRasterPath = fmt.Errorf("invalid raster path")

// RasterProvider resolves the raster path stored with a quadrant to the tile
// image data. The storage layer only ever holds the path.
type RasterProvider interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

type filesystemProvider struct {
	basedir string
}

// NewFilesystemProvider serves raster tiles from files under basedir. Paths
// are interpreted relative to basedir and must not escape it.
func NewFilesystemProvider(basedir string) RasterProvider {
	return &filesystemProvider{basedir: basedir}
}

func (f *filesystemProvider) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if path == "" || filepath.IsAbs(path) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRasterPath, path)
	}

	cleaned := filepath.Clean(filepath.FromSlash(path))
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRasterPath, path)
	}

	file, err := os.Open(filepath.Join(f.basedir, cleaned))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrNoSuchRaster, path)
		}
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	if !info.Mode().IsRegular() {
		file.Close()
		return nil, fmt.Errorf("%w: %q", ErrNoSuchRaster, path)
	}

	return file, nil
}

// NewFSProvider serves raster tiles from any fs.FS, used by tests and for
// bundled tile sets.
func NewFSProvider(fsys fs.FS) RasterProvider {
	return &fsProvider{fsys: fsys}
}

type fsProvider struct {
	fsys fs.FS
}

func (f *fsProvider) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if !fs.ValidPath(path) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRasterPath, path)
	}

	file, err := f.fsys.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrNoSuchRaster, path)
		}
		return nil, err
	}

	return file, nil
}
