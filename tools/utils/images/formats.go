// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package images

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var _ = fmt.Print

var EncodableImageTypes = map[string]bool{
	"image/jpeg": true, "image/png": true, "image/bmp": true, "image/tiff": true, "image/gif": true,
}

// MimeTypeForPath guesses the image MIME type from the file extension of
// path, returning the empty string for unknown extensions.
func MimeTypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".bmp":
		return "image/bmp"
	case ".tif", ".tiff":
		return "image/tiff"
	case ".webp":
		return "image/webp"
	}
	return ""
}

func Encode(output io.Writer, img image.Image, format_mime string) (err error) {
	switch format_mime {
	case "image/png":
		return png.Encode(output, img)
	case "image/jpeg":
		return jpeg.Encode(output, img, nil)
	case "image/bmp":
		return bmp.Encode(output, img)
	case "image/gif":
		return gif.Encode(output, img, nil)
	case "image/tiff":
		return tiff.Encode(output, img, nil)
	}
	err = fmt.Errorf("Unsupported output image MIME type %s", format_mime)
	return
}
