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

// Package transcript records and plays back writes to the LCD controller.
//
// A transcript is a text file. The first two lines identify the file and the
// version of the format. Every following line is a single write:
//
//	mk2panel transcript
//	v1
//	0, 0, 38
//	0, 1, 41
//	12, 0, 01
//
// The fields are the tick on which the write occurs, the register select
// value and the data in hexadecimal. A tick is a single display refresh.
// Ticks must not decrease from one line to the next.
//
// The Demo() function returns a built-in transcript that exercises the
// panel without a running synthesizer emulation.
package transcript
