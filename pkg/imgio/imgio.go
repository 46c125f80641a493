// Package imgio decodes image files into raster buffers and encodes them
// back. It is a collaborator of the filter engine, not part of it; the engine
// never touches the filesystem.
package imgio

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/parimg/parimg/pkg/raster"
)

// Open decodes the image at path into a buffer. Registered formats: png,
// jpeg, gif, bmp, tiff, webp. The reported format name comes from the
// decoder.
func Open(path string) (*raster.Buffer, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return raster.FromImage(img), format, nil
}

// Save encodes the buffer to path, choosing the encoder from the file
// extension. png, jpg/jpeg, bmp and tiff can be written; webp and gif have
// no encoder here.
func Save(img *raster.Buffer, path string) error {
	if img == nil {
		return fmt.Errorf("cannot save a nil image")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	out := img.Image()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, out)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, out, &jpeg.Options{Quality: 95})
	case ".bmp":
		err = bmp.Encode(f, out)
	case ".tif", ".tiff":
		err = tiff.Encode(f, out, nil)
	default:
		return fmt.Errorf("unsupported output format: %s", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
