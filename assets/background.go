// This file is part of mk2panel.
//
// mk2panel is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mk2panel is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mk2panel.  If not, see <https://www.gnu.org/licenses/>.

package assets

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/mk2panel/curated"
	"github.com/jetsetilly/mk2panel/logger"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// dimensions of the panel background.
const (
	Width  = 741
	Height = 268
)

// size of a raw background file in bytes.
const RawSize = Width * Height * 4

// Error patterns.
const (
	WrongDimensions = "assets: wrong dimensions for background (%dx%d)"
	UnknownFormat   = "assets: unrecognised image format (%s)"
)

// extensions of files that are decoded with the image package. files with
// any other extension are treated as raw pixel data
var decodedExtensions = []string{".png", ".gif", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff"}

func isDecoded(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range decodedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// LoadBackground reads the background image from the named file.
func LoadBackground(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf("assets: %v", err)
	}
	defer f.Close()

	if isDecoded(path) {
		return decodeBackground(f, path)
	}

	return ReadRaw(f)
}

// ReadRaw reads raw pixel data from the io.Reader. Missing data is not an
// error and the missing pixels are left black. Data beyond the end of the
// image is ignored.
func ReadRaw(r io.Reader) (*image.RGBA, error) {
	data := make([]byte, RawSize)
	n, err := io.ReadFull(r, data)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, curated.Errorf("assets: %v", err)
	}
	if n < RawSize {
		logger.Logf(logger.Allow, "assets", "raw background is short (%d of %d bytes)", n, RawSize)
	}

	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = data[i]
		img.Pix[i+1] = data[i+1]
		img.Pix[i+2] = data[i+2]
		img.Pix[i+3] = 0xff
	}

	return img, nil
}

func decodeBackground(r io.Reader, path string) (*image.RGBA, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf("assets: %v", err)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if err == image.ErrFormat {
			return nil, curated.Errorf(UnknownFormat, filepath.Base(path))
		}
		return nil, curated.Errorf("assets: %v", err)
	}

	b := src.Bounds()
	if b.Dx() != Width || b.Dy() != Height {
		return nil, curated.Errorf(WrongDimensions, b.Dx(), b.Dy())
	}

	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)

	// the background is always opaque
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}

	return img, nil
}
