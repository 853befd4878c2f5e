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

package font_test

import (
	"testing"

	"github.com/jetsetilly/mk2panel/hardware/lcd/font"
	"github.com/jetsetilly/mk2panel/test"
)

func TestGlyph(t *testing.T) {
	test.ExpectEquality(t, font.Glyph(0x00), [font.Rows]uint8{})
	test.ExpectEquality(t, font.Glyph(0x0f), [font.Rows]uint8{})
	test.ExpectEquality(t, font.Glyph(' '), [font.Rows]uint8{})
	test.ExpectEquality(t, font.Glyph('A'), font.ROM['A'-font.First])
	test.ExpectEquality(t, font.Glyph(0xff)[7], 0x1f)
}

// only the low five bits of a row are significant
func TestRowWidth(t *testing.T) {
	for c, g := range font.ROM {
		for r, row := range g {
			test.ExpectEquality(t, row&0xe0, 0, c+font.First, r)
		}
	}
}

// the cursor row is empty for every printable ASCII glyph
func TestCursorRow(t *testing.T) {
	for c := ' '; c < 0x7f; c++ {
		test.ExpectEquality(t, font.Glyph(uint8(c))[7], 0, c)
	}
}
