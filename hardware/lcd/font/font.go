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

// Package font contains the character generator ROM of the panel's
// controller. Glyph codes 0 to 15 are taken from the controller's CGRAM and
// so the ROM starts at code 16.
//
// Each glyph is eight rows of five dots. The most significant of the five
// bits is the leftmost dot. The eighth row is the cursor row and is blank for
// all glyphs except the full block.
//
// Codes without an entry are blank.
package font

// First is the glyph code of the first entry in the ROM.
const First = 0x10

// Rows is the number of rows in each glyph.
const Rows = 8

// Glyph returns the ROM rows for the glyph code. Codes less than First do not
// have a ROM entry and the function returns a blank glyph.
func Glyph(code uint8) [Rows]uint8 {
	if code < First {
		return [Rows]uint8{}
	}
	return ROM[code-First]
}

// ROM is indexed by the glyph code minus First.
var ROM = [256 - First][Rows]uint8{
	' ' - First:  {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	'!' - First:  {0x04, 0x04, 0x04, 0x04, 0x00, 0x00, 0x04, 0x00},
	'"' - First:  {0x0a, 0x0a, 0x0a, 0x00, 0x00, 0x00, 0x00, 0x00},
	'#' - First:  {0x0a, 0x0a, 0x1f, 0x0a, 0x1f, 0x0a, 0x0a, 0x00},
	'$' - First:  {0x04, 0x0f, 0x14, 0x0e, 0x05, 0x1e, 0x04, 0x00},
	'%' - First:  {0x18, 0x19, 0x02, 0x04, 0x08, 0x13, 0x03, 0x00},
	'&' - First:  {0x0c, 0x12, 0x14, 0x08, 0x15, 0x12, 0x0d, 0x00},
	'\'' - First: {0x0c, 0x04, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00},
	'(' - First:  {0x02, 0x04, 0x08, 0x08, 0x08, 0x04, 0x02, 0x00},
	')' - First:  {0x08, 0x04, 0x02, 0x02, 0x02, 0x04, 0x08, 0x00},
	'*' - First:  {0x00, 0x04, 0x15, 0x0e, 0x15, 0x04, 0x00, 0x00},
	'+' - First:  {0x00, 0x04, 0x04, 0x1f, 0x04, 0x04, 0x00, 0x00},
	',' - First:  {0x00, 0x00, 0x00, 0x00, 0x0c, 0x04, 0x08, 0x00},
	'-' - First:  {0x00, 0x00, 0x00, 0x1f, 0x00, 0x00, 0x00, 0x00},
	'.' - First:  {0x00, 0x00, 0x00, 0x00, 0x00, 0x0c, 0x0c, 0x00},
	'/' - First:  {0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x00, 0x00},
	'0' - First:  {0x0e, 0x11, 0x13, 0x15, 0x19, 0x11, 0x0e, 0x00},
	'1' - First:  {0x04, 0x0c, 0x04, 0x04, 0x04, 0x04, 0x0e, 0x00},
	'2' - First:  {0x0e, 0x11, 0x01, 0x02, 0x04, 0x08, 0x1f, 0x00},
	'3' - First:  {0x1f, 0x02, 0x04, 0x02, 0x01, 0x11, 0x0e, 0x00},
	'4' - First:  {0x02, 0x06, 0x0a, 0x12, 0x1f, 0x02, 0x02, 0x00},
	'5' - First:  {0x1f, 0x10, 0x1e, 0x01, 0x01, 0x11, 0x0e, 0x00},
	'6' - First:  {0x06, 0x08, 0x10, 0x1e, 0x11, 0x11, 0x0e, 0x00},
	'7' - First:  {0x1f, 0x01, 0x02, 0x04, 0x08, 0x08, 0x08, 0x00},
	'8' - First:  {0x0e, 0x11, 0x11, 0x0e, 0x11, 0x11, 0x0e, 0x00},
	'9' - First:  {0x0e, 0x11, 0x11, 0x0f, 0x01, 0x02, 0x0c, 0x00},
	':' - First:  {0x00, 0x0c, 0x0c, 0x00, 0x0c, 0x0c, 0x00, 0x00},
	';' - First:  {0x00, 0x0c, 0x0c, 0x00, 0x0c, 0x04, 0x08, 0x00},
	'<' - First:  {0x02, 0x04, 0x08, 0x10, 0x08, 0x04, 0x02, 0x00},
	'=' - First:  {0x00, 0x00, 0x1f, 0x00, 0x1f, 0x00, 0x00, 0x00},
	'>' - First:  {0x08, 0x04, 0x02, 0x01, 0x02, 0x04, 0x08, 0x00},
	'?' - First:  {0x0e, 0x11, 0x01, 0x02, 0x04, 0x00, 0x04, 0x00},
	'@' - First:  {0x0e, 0x11, 0x01, 0x0d, 0x15, 0x15, 0x0e, 0x00},
	'A' - First:  {0x0e, 0x11, 0x11, 0x11, 0x1f, 0x11, 0x11, 0x00},
	'B' - First:  {0x1e, 0x11, 0x11, 0x1e, 0x11, 0x11, 0x1e, 0x00},
	'C' - First:  {0x0e, 0x11, 0x10, 0x10, 0x10, 0x11, 0x0e, 0x00},
	'D' - First:  {0x1c, 0x12, 0x11, 0x11, 0x11, 0x12, 0x1c, 0x00},
	'E' - First:  {0x1f, 0x10, 0x10, 0x1e, 0x10, 0x10, 0x1f, 0x00},
	'F' - First:  {0x1f, 0x10, 0x10, 0x1e, 0x10, 0x10, 0x10, 0x00},
	'G' - First:  {0x0e, 0x11, 0x10, 0x17, 0x11, 0x11, 0x0f, 0x00},
	'H' - First:  {0x11, 0x11, 0x11, 0x1f, 0x11, 0x11, 0x11, 0x00},
	'I' - First:  {0x0e, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0e, 0x00},
	'J' - First:  {0x07, 0x02, 0x02, 0x02, 0x02, 0x12, 0x0c, 0x00},
	'K' - First:  {0x11, 0x12, 0x14, 0x18, 0x14, 0x12, 0x11, 0x00},
	'L' - First:  {0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x1f, 0x00},
	'M' - First:  {0x11, 0x1b, 0x15, 0x15, 0x11, 0x11, 0x11, 0x00},
	'N' - First:  {0x11, 0x11, 0x19, 0x15, 0x13, 0x11, 0x11, 0x00},
	'O' - First:  {0x0e, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0e, 0x00},
	'P' - First:  {0x1e, 0x11, 0x11, 0x1e, 0x10, 0x10, 0x10, 0x00},
	'Q' - First:  {0x0e, 0x11, 0x11, 0x11, 0x15, 0x12, 0x0d, 0x00},
	'R' - First:  {0x1e, 0x11, 0x11, 0x1e, 0x14, 0x12, 0x11, 0x00},
	'S' - First:  {0x0f, 0x10, 0x10, 0x0e, 0x01, 0x01, 0x1e, 0x00},
	'T' - First:  {0x1f, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x00},
	'U' - First:  {0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0e, 0x00},
	'V' - First:  {0x11, 0x11, 0x11, 0x11, 0x11, 0x0a, 0x04, 0x00},
	'W' - First:  {0x11, 0x11, 0x11, 0x15, 0x15, 0x15, 0x0a, 0x00},
	'X' - First:  {0x11, 0x11, 0x0a, 0x04, 0x0a, 0x11, 0x11, 0x00},
	'Y' - First:  {0x11, 0x11, 0x11, 0x0a, 0x04, 0x04, 0x04, 0x00},
	'Z' - First:  {0x1f, 0x01, 0x02, 0x04, 0x08, 0x10, 0x1f, 0x00},
	'[' - First:  {0x0e, 0x08, 0x08, 0x08, 0x08, 0x08, 0x0e, 0x00},

	// yen sign in place of the backslash
	0x5c - First: {0x11, 0x0a, 0x1f, 0x04, 0x1f, 0x04, 0x04, 0x00},

	']' - First: {0x0e, 0x02, 0x02, 0x02, 0x02, 0x02, 0x0e, 0x00},
	'^' - First: {0x04, 0x0a, 0x11, 0x00, 0x00, 0x00, 0x00, 0x00},
	'_' - First: {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x1f, 0x00},
	'`' - First: {0x08, 0x04, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00},
	'a' - First: {0x00, 0x00, 0x0e, 0x01, 0x0f, 0x11, 0x0f, 0x00},
	'b' - First: {0x10, 0x10, 0x16, 0x19, 0x11, 0x11, 0x1e, 0x00},
	'c' - First: {0x00, 0x00, 0x0e, 0x10, 0x10, 0x11, 0x0e, 0x00},
	'd' - First: {0x01, 0x01, 0x0d, 0x13, 0x11, 0x11, 0x0f, 0x00},
	'e' - First: {0x00, 0x00, 0x0e, 0x11, 0x1f, 0x10, 0x0e, 0x00},
	'f' - First: {0x06, 0x09, 0x08, 0x1c, 0x08, 0x08, 0x08, 0x00},
	'g' - First: {0x00, 0x0f, 0x11, 0x11, 0x0f, 0x01, 0x0e, 0x00},
	'h' - First: {0x10, 0x10, 0x16, 0x19, 0x11, 0x11, 0x11, 0x00},
	'i' - First: {0x04, 0x00, 0x0c, 0x04, 0x04, 0x04, 0x0e, 0x00},
	'j' - First: {0x02, 0x00, 0x06, 0x02, 0x02, 0x12, 0x0c, 0x00},
	'k' - First: {0x10, 0x10, 0x12, 0x14, 0x18, 0x14, 0x12, 0x00},
	'l' - First: {0x0c, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0e, 0x00},
	'm' - First: {0x00, 0x00, 0x1a, 0x15, 0x15, 0x11, 0x11, 0x00},
	'n' - First: {0x00, 0x00, 0x16, 0x19, 0x11, 0x11, 0x11, 0x00},
	'o' - First: {0x00, 0x00, 0x0e, 0x11, 0x11, 0x11, 0x0e, 0x00},
	'p' - First: {0x00, 0x00, 0x1e, 0x11, 0x1e, 0x10, 0x10, 0x00},
	'q' - First: {0x00, 0x00, 0x0d, 0x13, 0x0f, 0x01, 0x01, 0x00},
	'r' - First: {0x00, 0x00, 0x16, 0x19, 0x10, 0x10, 0x10, 0x00},
	's' - First: {0x00, 0x00, 0x0e, 0x10, 0x0e, 0x01, 0x1e, 0x00},
	't' - First: {0x08, 0x08, 0x1c, 0x08, 0x08, 0x09, 0x06, 0x00},
	'u' - First: {0x00, 0x00, 0x11, 0x11, 0x11, 0x13, 0x0d, 0x00},
	'v' - First: {0x00, 0x00, 0x11, 0x11, 0x11, 0x0a, 0x04, 0x00},
	'w' - First: {0x00, 0x00, 0x11, 0x11, 0x15, 0x15, 0x0a, 0x00},
	'x' - First: {0x00, 0x00, 0x11, 0x0a, 0x04, 0x0a, 0x11, 0x00},
	'y' - First: {0x00, 0x00, 0x11, 0x11, 0x0f, 0x01, 0x0e, 0x00},
	'z' - First: {0x00, 0x00, 0x1f, 0x02, 0x04, 0x08, 0x1f, 0x00},
	'{' - First: {0x02, 0x04, 0x04, 0x08, 0x04, 0x04, 0x02, 0x00},
	'|' - First: {0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x00},
	'}' - First: {0x08, 0x04, 0x04, 0x02, 0x04, 0x04, 0x08, 0x00},

	// arrows in place of the tilde and delete
	0x7e - First: {0x00, 0x04, 0x02, 0x1f, 0x02, 0x04, 0x00, 0x00},
	0x7f - First: {0x00, 0x04, 0x08, 0x1f, 0x08, 0x04, 0x00, 0x00},

	// middle dot
	0xa5 - First: {0x00, 0x00, 0x00, 0x0c, 0x0c, 0x00, 0x00, 0x00},

	// degree sign
	0xdf - First: {0x1c, 0x14, 0x1c, 0x00, 0x00, 0x00, 0x00, 0x00},

	// micro sign
	0xe4 - First: {0x00, 0x00, 0x11, 0x11, 0x13, 0x1d, 0x10, 0x00},

	// ohm sign
	0xf4 - First: {0x00, 0x0e, 0x11, 0x11, 0x11, 0x0a, 0x1b, 0x00},

	// full block. the only glyph using the cursor row
	0xff - First: {0x1f, 0x1f, 0x1f, 0x1f, 0x1f, 0x1f, 0x1f, 0x1f},
}
