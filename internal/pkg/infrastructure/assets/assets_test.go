package assets

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/matryer/is"
)

func TestOpenReadsTileData(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	dir := t.TempDir()
	is.NoErr(os.MkdirAll(filepath.Join(dir, "tiles"), 0o755))
	is.NoErr(os.WriteFile(filepath.Join(dir, "tiles", "44_191.png"), []byte("png-bytes"), 0o644))

	provider := NewFilesystemProvider(dir)

	r, err := provider.Open(ctx, "tiles/44_191.png")
	is.NoErr(err)
	defer r.Close()

	data, err := io.ReadAll(r)
	is.NoErr(err)
	is.Equal("png-bytes", string(data))
}

func TestOpenMissingTile(t *testing.T) {
	is := is.New(t)

	provider := NewFilesystemProvider(t.TempDir())

	_, err := provider.Open(context.Background(), "tiles/nope.png")
	is.True(errors.Is(err, ErrNoSuchRaster))
}

func TestOpenRejectsEscapingPaths(t *testing.T) {
	is := is.New(t)

	provider := NewFilesystemProvider(t.TempDir())

	for _, path := range []string{"", "/etc/passwd", "../secret", "tiles/../../secret"} {
		_, err := provider.Open(context.Background(), path)
		is.True(errors.Is(err, ErrInvalidRasterPath))
	}
}

func TestFSProvider(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	provider := NewFSProvider(fstest.MapFS{
		"tiles/0_0.png": &fstest.MapFile{Data: []byte("tile")},
	})

	r, err := provider.Open(ctx, "tiles/0_0.png")
	is.NoErr(err)
	defer r.Close()

	data, err := io.ReadAll(r)
	is.NoErr(err)
	is.Equal("tile", string(data))

	_, err = provider.Open(ctx, "tiles/1_1.png")
	is.True(errors.Is(err, ErrNoSuchRaster))

	_, err = provider.Open(ctx, "../tiles/0_0.png")
	is.True(errors.Is(err, ErrInvalidRasterPath))
}
