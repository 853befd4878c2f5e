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

package compositor_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/jetsetilly/mk2panel/compositor"
	"github.com/jetsetilly/mk2panel/curated"
	"github.com/jetsetilly/mk2panel/hardware/lcd"
	"github.com/jetsetilly/mk2panel/test"
)

var (
	black    = color.RGBA{A: 0xff}
	backdrop = color.RGBA{R: 10, G: 20, B: 30, A: 0xff}
	ink      = color.RGBA{A: 0xff}
	backInk  = color.RGBA{R: 0x00, G: 0x50, B: 0xc8, A: 0xff}
)

func newCompositor(t *testing.T) *compositor.Compositor {
	t.Helper()
	cmp := compositor.NewCompositor()
	bg := image.NewRGBA(image.Rect(0, 0, compositor.Width, compositor.Height))
	for y := range compositor.Height {
		for x := range compositor.Width {
			bg.SetRGBA(x, y, backdrop)
		}
	}
	cmp.SetBackground(bg)
	return cmp
}

// checks that every pixel in the rectangle is of the colour
func expectRect(t *testing.T, img *image.RGBA, r image.Rectangle, col color.RGBA) {
	t.Helper()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if !test.ExpectEquality(t, img.RGBAAt(x, y), col, x, y) {
				return
			}
		}
	}
}

func TestDisplayOff(t *testing.T) {
	cmp := newCompositor(t)
	lit := color.RGBA{R: 0xff, G: 0x80, A: 0xff}
	test.DemandSuccess(t, cmp.Prefs.Ink.Set("#ff8000"))

	// every cell holds a lit glyph so a blank frame can only be the result of
	// the display being off
	var snap lcd.Snapshot
	for i := range snap.DisplayData {
		snap.DisplayData[i] = uint8(i & 0x07)
	}
	for i := range snap.CharGen {
		snap.CharGen[i] = 0x1f
	}
	snap.DisplayData[0] = 0xff

	cmp.Composite(snap, true)
	test.ExpectEquality(t, cmp.Frame().Bounds(), image.Rect(0, 0, 741, 268))
	expectRect(t, cmp.Frame(), cmp.Frame().Bounds(), black)

	// the same snapshot with the display on is not blank
	snap.Flags.DisplayOn = true
	cmp.Composite(snap, true)
	expectRect(t, cmp.Frame(), image.Rect(0, 0, 10, 10), backdrop)
	test.ExpectEquality(t, cmp.Frame().RGBAAt(34, 11), lit)
	test.ExpectEquality(t, cmp.Frame().RGBAAt(69, 11), lit)

	// panel disabled blanks the frame even when the display is on
	cmp.Composite(snap, false)
	expectRect(t, cmp.Frame(), cmp.Frame().Bounds(), black)
}

func TestBackground(t *testing.T) {
	cmp := newCompositor(t)

	var snap lcd.Snapshot
	snap.Flags.DisplayOn = true
	cmp.Composite(snap, true)

	// areas of the panel not covered by any cell
	expectRect(t, cmp.Frame(), image.Rect(0, 0, 34, 11), backdrop)
	expectRect(t, cmp.Frame(), image.Rect(0, 250, 741, 268), backdrop)

	// the gaps between the dots of a cell
	expectRect(t, cmp.Frame(), image.Rect(39, 11, 40, 16), backdrop)
	expectRect(t, cmp.Frame(), image.Rect(34, 16, 39, 17), backdrop)
}

func TestBackgroundSize(t *testing.T) {
	cmp := compositor.NewCompositor()

	// smaller images are padded with black
	small := image.NewRGBA(image.Rect(0, 0, 2, 2))
	small.SetRGBA(1, 1, backdrop)
	cmp.SetBackground(small)

	var snap lcd.Snapshot
	snap.Flags.DisplayOn = true
	cmp.Composite(snap, true)
	test.ExpectEquality(t, cmp.Frame().RGBAAt(1, 1), backdrop)
	test.ExpectEquality(t, cmp.Frame().RGBAAt(740, 267), black)

	// a nil background is black
	cmp.SetBackground(nil)
	cmp.Composite(snap, true)
	test.ExpectEquality(t, cmp.Frame().RGBAAt(1, 1), black)
}

func TestCharGenGlyph(t *testing.T) {
	cmp := newCompositor(t)

	var snap lcd.Snapshot
	snap.Flags.DisplayOn = true

	// a checkerboard in CGRAM slot 2. the glyph is selected by codes 2 and
	// 10 because only the low three bits of the code select the slot
	for r := range 8 {
		if r%2 == 0 {
			snap.CharGen[16+r] = 0b10101
		} else {
			snap.CharGen[16+r] = 0b01010
		}
	}
	snap.DisplayData[0] = 2
	snap.DisplayData[3] = 10
	cmp.Composite(snap, true)

	for _, anchor := range []image.Point{{34, 11}, {153, 11}} {
		for r := range 7 {
			for d := range 5 {
				col := backInk
				if (r+d)%2 == 0 {
					col = ink
				}
				x := anchor.X + d*6
				y := anchor.Y + r*6
				expectRect(t, cmp.Frame(), image.Rect(x, y, x+5, y+5), col)
			}
		}
	}
}

func TestFontGlyph(t *testing.T) {
	cmp := newCompositor(t)

	var snap lcd.Snapshot
	snap.Flags.DisplayOn = true

	// the second standard cell of the bottom-right group. a space is drawn
	// entirely in the back-ink colour and a full block entirely in ink
	snap.DisplayData[56] = ' '
	snap.DisplayData[57] = 0xff
	cmp.Composite(snap, true)

	expectRect(t, cmp.Frame(), image.Rect(188, 203, 193, 208), backInk)
	expectRect(t, cmp.Frame(), image.Rect(188+24, 203+36, 193+24, 208+36), backInk)
	expectRect(t, cmp.Frame(), image.Rect(223, 203, 228, 208), ink)
	expectRect(t, cmp.Frame(), image.Rect(223+24, 203+36, 228+24, 208+36), ink)

	// the eighth row of the glyph is not drawn in a standard cell
	expectRect(t, cmp.Frame(), image.Rect(223, 203+42, 228, 208+42), backdrop)
}

func TestLevelGeometry(t *testing.T) {
	cmp := newCompositor(t)

	var snap lcd.Snapshot
	snap.Flags.DisplayOn = true

	// CGRAM slot 1 is fully lit
	for r := range 8 {
		snap.CharGen[8+r] = 0x1f
	}
	snap.DisplayData[20] = 1
	snap.DisplayData[23] = 1
	snap.DisplayData[60] = 1
	cmp.Composite(snap, true)

	// eight rows of five blocks, each block 24x9
	for r := range 8 {
		for d := range 5 {
			x := 293 + d*26
			y := 71 + r*11
			expectRect(t, cmp.Frame(), image.Rect(x, y, x+24, y+9), ink)
			expectRect(t, cmp.Frame(), image.Rect(x, y+88, x+24, y+88+9), ink)

			// gaps between blocks
			expectRect(t, cmp.Frame(), image.Rect(x+24, y, x+26, y+9), backdrop)
			expectRect(t, cmp.Frame(), image.Rect(x, y+9, x+24, y+11), backdrop)
		}
	}

	// the fourth cell of a group has only a single column of blocks
	expectRect(t, cmp.Frame(), image.Rect(683, 71, 707, 80), ink)
	expectRect(t, cmp.Frame(), image.Rect(709, 71, 733, 80), backdrop)

	// an unlit level cell
	expectRect(t, cmp.Frame(), image.Rect(423, 71, 447, 80), backInk)
}

func TestColourPreferences(t *testing.T) {
	cmp := newCompositor(t)
	test.ExpectEquality(t, cmp.Prefs.Ink.String(), "#000000")
	test.ExpectEquality(t, cmp.Prefs.BackInk.String(), "#0050c8")

	test.ExpectSuccess(t, cmp.Prefs.Ink.Set("#ff8000"))
	test.ExpectFailure(t, cmp.Prefs.BackInk.Set("blue"))
	test.ExpectFailure(t, cmp.Prefs.BackInk.Set("#12345g"))
	test.ExpectEquality(t, cmp.Prefs.BackInk.String(), "#0050c8")

	var snap lcd.Snapshot
	snap.Flags.DisplayOn = true
	snap.DisplayData[0] = 0xff
	cmp.Composite(snap, true)
	test.ExpectEquality(t, cmp.Frame().RGBAAt(34, 11), color.RGBA{R: 0xff, G: 0x80, A: 0xff})
	test.ExpectEquality(t, cmp.Frame().RGBAAt(69, 11), backInk)

	cmp.Prefs.SetDefaults()
	cmp.Composite(snap, true)
	test.ExpectEquality(t, cmp.Frame().RGBAAt(34, 11), ink)
}

func TestParseColour(t *testing.T) {
	col, err := compositor.ParseColour("#0050c8")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, col, backInk)

	_, err = compositor.ParseColour("0050c8")
	test.ExpectFailure(t, err)
	_, err = compositor.ParseColour("#0050c")
	test.ExpectFailure(t, err)

	// every character after the hash must be a hex digit
	for _, s := range []string{"#12345g", "#00ff0x", "#+0ff00", "#0x00ff", "#00_0ff"} {
		_, err = compositor.ParseColour(s)
		test.ExpectSuccess(t, curated.Is(err, compositor.InvalidColour), s)
	}

	col, err = compositor.ParseColour("#FFa010")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, col, color.RGBA{R: 0xff, G: 0xa0, B: 0x10, A: 0xff})
}

func TestScreenshot(t *testing.T) {
	cmp := newCompositor(t)

	var snap lcd.Snapshot
	snap.Flags.DisplayOn = true
	snap.DisplayData[0] = 0xff
	cmp.Composite(snap, true)

	for _, sc := range []struct {
		scale float64
		w, h  int
	}{
		{1, 741, 268},
		{2, 1482, 536},
		{0.5, 370, 134},
	} {
		var b bytes.Buffer
		test.DemandSuccess(t, compositor.Screenshot(cmp.Frame(), sc.scale, &b))
		img, err := png.Decode(&b)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, sc.w, sc.h))
	}

	// nearest neighbour scaling keeps the dots sharp
	var b bytes.Buffer
	test.DemandSuccess(t, compositor.Screenshot(cmp.Frame(), 2, &b))
	img, err := png.Decode(&b)
	test.DemandSuccess(t, err)
	r, g, bl, _ := img.At(68, 22).RGBA()
	test.ExpectEquality(t, [3]uint32{r, g, bl}, [3]uint32{0, 0, 0})

	err = compositor.Screenshot(cmp.Frame(), 0, &b)
	test.ExpectSuccess(t, curated.Is(err, compositor.InvalidScale))
}
