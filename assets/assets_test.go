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

package assets_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/mk2panel/assets"
	"github.com/jetsetilly/mk2panel/curated"
	"github.com/jetsetilly/mk2panel/test"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestRawBackground(t *testing.T) {
	data := make([]byte, assets.RawSize)
	for i := 0; i < len(data); i += 4 {
		data[i] = 0x11
		data[i+1] = 0x22
		data[i+2] = 0x33
		data[i+3] = 0x99
	}

	fn := filepath.Join(t.TempDir(), "back.data")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))

	img, err := assets.LoadBackground(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, 741, 268))

	// padding byte is ignored and the image is opaque
	test.ExpectEquality(t, img.RGBAAt(0, 0), color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff})
	test.ExpectEquality(t, img.RGBAAt(740, 267), color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff})
}

func TestShortRawBackground(t *testing.T) {
	// one full row and a single pixel of the second row
	data := bytes.Repeat([]byte{0xff, 0x80, 0x40, 0x00}, assets.Width+1)

	img, err := assets.ReadRaw(bytes.NewReader(data))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.RGBAAt(740, 0), color.RGBA{R: 0xff, G: 0x80, B: 0x40, A: 0xff})
	test.ExpectEquality(t, img.RGBAAt(0, 1), color.RGBA{R: 0xff, G: 0x80, B: 0x40, A: 0xff})
	test.ExpectEquality(t, img.RGBAAt(1, 1), color.RGBA{A: 0xff})

	// an empty file is also accepted
	img, err = assets.ReadRaw(bytes.NewReader(nil))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.RGBAAt(370, 134), color.RGBA{A: 0xff})
}

func TestMissingBackground(t *testing.T) {
	_, err := assets.LoadBackground(filepath.Join(t.TempDir(), "missing.data"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.IsAny(err))
}

func writeImage(t *testing.T, fn string, w, h int, encode func(f *os.File, img image.Image) error) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.SetRGBA(5, 5, color.RGBA{R: 0xc0, G: 0xb0, B: 0xa0, A: 0xff})

	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	defer f.Close()
	test.DemandSuccess(t, encode(f, img))
}

func TestDecodedBackground(t *testing.T) {
	dir := t.TempDir()

	encoders := map[string]func(f *os.File, img image.Image) error{
		"back.png":  func(f *os.File, img image.Image) error { return png.Encode(f, img) },
		"back.bmp":  func(f *os.File, img image.Image) error { return bmp.Encode(f, img) },
		"back.tiff": func(f *os.File, img image.Image) error { return tiff.Encode(f, img, nil) },
	}

	for name, enc := range encoders {
		fn := filepath.Join(dir, name)
		writeImage(t, fn, assets.Width, assets.Height, enc)

		img, err := assets.LoadBackground(fn)
		if !test.ExpectSuccess(t, err, name) {
			continue
		}
		test.ExpectEquality(t, img.RGBAAt(5, 5), color.RGBA{R: 0xc0, G: 0xb0, B: 0xa0, A: 0xff}, name)

		// transparent pixels in the source are made opaque
		test.ExpectEquality(t, img.RGBAAt(0, 0).A, 0xff, name)
	}
}

func TestWrongDimensions(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "back.png")
	writeImage(t, fn, 100, 100, func(f *os.File, img image.Image) error { return png.Encode(f, img) })

	_, err := assets.LoadBackground(fn)
	test.ExpectSuccess(t, curated.Is(err, assets.WrongDimensions))
}

func TestUnknownFormat(t *testing.T) {
	// a file with an image extension that does not contain an image
	fn := filepath.Join(t.TempDir(), "back.png")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not an image"), 0o600))

	_, err := assets.LoadBackground(fn)
	test.ExpectSuccess(t, curated.Is(err, assets.UnknownFormat))
}
