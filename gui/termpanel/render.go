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

package termpanel

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"golang.org/x/image/draw"
)

const upperHalfBlock = "▀"

// ANSI control sequences.
const (
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	normalPen   = "\x1b[0m"
)

// dimensions returns the number of character rows needed to show an image of
// the given size in the given number of columns. Each character row shows two
// pixel rows.
func dimensions(bounds image.Rectangle, cols int) int {
	rows := cols * bounds.Dy() / bounds.Dx() / 2
	return max(rows, 1)
}

// scale the frame to be cols pixels wide and rows*2 pixels tall. the frame is
// returned unchanged if it is already the correct size.
func scale(frame *image.RGBA, cols int, rows int) *image.RGBA {
	r := image.Rect(0, 0, cols, rows*2)
	if frame.Bounds().Size() == r.Size() {
		return frame
	}
	img := image.NewRGBA(r)
	draw.ApproxBiLinear.Scale(img, r, frame, frame.Bounds(), draw.Src, nil)
	return img
}

func pen(target int, c color.RGBA) string {
	return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", target, c.R, c.G, c.B)
}

// render writes the frame to the io.Writer as rows of half block characters.
// The colour sequences are only written when the colour changes.
func render(w io.Writer, frame *image.RGBA, cols int) error {
	rows := dimensions(frame.Bounds(), cols)
	img := scale(frame, cols, rows)
	b := img.Bounds()

	s := strings.Builder{}
	s.WriteString(cursorHome)

	for y := range rows {
		var fg, bg color.RGBA
		var started bool

		for x := range cols {
			top := img.RGBAAt(b.Min.X+x, b.Min.Y+y*2)
			bottom := img.RGBAAt(b.Min.X+x, b.Min.Y+y*2+1)
			if !started || top != fg {
				s.WriteString(pen(38, top))
				fg = top
			}
			if !started || bottom != bg {
				s.WriteString(pen(48, bottom))
				bg = bottom
			}
			started = true
			s.WriteString(upperHalfBlock)
		}

		s.WriteString(normalPen)
		s.WriteString("\n")
	}

	_, err := io.WriteString(w, s.String())
	return err
}
