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

package compositor

import (
	"image"
	"image/color"
	"sync/atomic"

	"github.com/jetsetilly/mk2panel/hardware/lcd"
	"github.com/jetsetilly/mk2panel/hardware/lcd/font"
)

// Compositor produces images of the front panel from snapshots of the LCD
// controller.
type Compositor struct {
	frame      *image.RGBA
	background *image.RGBA

	// packed RGB values. updated by the preference hooks
	ink     atomic.Uint32
	backInk atomic.Uint32

	// Prefs are the preferences that affect the appearance of the panel
	Prefs *Preferences
}

// NewCompositor is the preferred method of initialisation for the Compositor
// type. The background is opaque black until SetBackground() is called.
func NewCompositor() *Compositor {
	cmp := &Compositor{
		frame:      image.NewRGBA(image.Rect(0, 0, Width, Height)),
		background: image.NewRGBA(image.Rect(0, 0, Width, Height)),
	}
	fill(cmp.background, color.RGBA{A: 0xff})
	cmp.Prefs = newPreferences(cmp)
	return cmp
}

// SetBackground copies the image to the compositor's background. Images with
// different dimensions are cropped or padded with black. A nil image gives a
// black background.
func (cmp *Compositor) SetBackground(img *image.RGBA) {
	fill(cmp.background, color.RGBA{A: 0xff})
	if img == nil {
		return
	}

	b := img.Bounds()
	if b == cmp.background.Bounds() {
		copy(cmp.background.Pix, img.Pix)
		return
	}

	for y := 0; y < min(b.Dy(), Height); y++ {
		for x := 0; x < min(b.Dx(), Width); x++ {
			cmp.background.SetRGBA(x, y, img.RGBAAt(b.Min.X+x, b.Min.Y+y))
		}
	}
}

// Frame returns the most recently composited frame. The image is reused by
// the next call to Composite() and must not be retained.
func (cmp *Compositor) Frame() *image.RGBA {
	return cmp.frame
}

// Composite builds a new frame from the snapshot. If enabled is false or if
// the display is switched off, the frame is black.
func (cmp *Compositor) Composite(snap lcd.Snapshot, enabled bool) {
	if !enabled || !snap.Flags.DisplayOn {
		fill(cmp.frame, color.RGBA{A: 0xff})
		return
	}

	copy(cmp.frame.Pix, cmp.background.Pix)

	ink := unpack(cmp.ink.Load())
	backInk := unpack(cmp.backInk.Load())

	for _, c := range standardCells {
		cmp.drawGlyph(glyph(&snap, snap.DisplayData[c.index]), c, standardGeometry, ink, backInk)
	}
	for _, c := range levelCells {
		cmp.drawGlyph(glyph(&snap, snap.DisplayData[c.index]), c, levelGeometry, ink, backInk)
	}
}

// glyph returns the dot rows for the character code
func glyph(snap *lcd.Snapshot, code uint8) [font.Rows]uint8 {
	if code >= font.First {
		return font.Glyph(code)
	}

	var g [font.Rows]uint8
	slot := int(code&0x07) * font.Rows
	copy(g[:], snap.CharGen[slot:slot+font.Rows])
	return g
}

// dots are numbered from the left. the leftmost dot is bit 4
func (cmp *Compositor) drawGlyph(g [font.Rows]uint8, c cell, geom geometry, ink, backInk color.RGBA) {
	for r := range geom.rows {
		for d := range c.width {
			col := backInk
			if g[r]&(1<<(4-d)) != 0 {
				col = ink
			}
			cmp.block(c.col+d*geom.colStride, c.row+r*geom.rowStride, geom.blockWidth, geom.blockHeight, col)
		}
	}
}

func (cmp *Compositor) block(x, y, w, h int, col color.RGBA) {
	for yy := y; yy < y+h; yy++ {
		i := cmp.frame.PixOffset(x, yy)
		for range w {
			cmp.frame.Pix[i] = col.R
			cmp.frame.Pix[i+1] = col.G
			cmp.frame.Pix[i+2] = col.B
			cmp.frame.Pix[i+3] = col.A
			i += 4
		}
	}
}

func fill(img *image.RGBA, col color.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = col.R
		img.Pix[i+1] = col.G
		img.Pix[i+2] = col.B
		img.Pix[i+3] = col.A
	}
}

func pack(col color.RGBA) uint32 {
	return uint32(col.R)<<16 | uint32(col.G)<<8 | uint32(col.B)
}

func unpack(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
