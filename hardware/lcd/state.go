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

package lcd

import (
	"fmt"
	"strings"
)

// Sizes of the two memory banks.
const (
	DisplayDataSize = 80
	CharGenSize     = 64

	// the number of cells in each logical line when the controller is in
	// two-line mode
	LineLength = 40
)

// Address masks. Address counters wrap by these masks after every data
// access.
const (
	DDRAMMask = 0x7f
	CGRAMMask = 0x3f
)

// Blank is the glyph code written to every cell of DDRAM by the clear display
// instruction.
const Blank = 0x20

// RAMMode selects which memory bank the next data register access targets.
type RAMMode int

// List of valid RAMMode values.
const (
	RAMModeCGRAM RAMMode = iota
	RAMModeDDRAM
)

func (m RAMMode) String() string {
	switch m {
	case RAMModeCGRAM:
		return "CGRAM"
	case RAMModeDDRAM:
		return "DDRAM"
	}
	panic("unknown RAM mode")
}

// Flags are the configuration flags of the controller. They are set by the
// function set, display control and entry mode set instructions.
type Flags struct {
	// function set
	DataLength8 bool // DL
	TwoLine     bool // N
	ExtendedFnt bool // F

	// display control
	DisplayOn bool // D
	CursorOn  bool // C
	BlinkOn   bool // B

	// entry mode set
	Increment bool // I/D
	ShiftOn   bool // S
}

func (f Flags) String() string {
	s := strings.Builder{}
	flg := func(label string, v bool) {
		if v {
			s.WriteString(strings.ToUpper(label))
		} else {
			s.WriteString(strings.ToLower(label))
		}
		s.WriteString(" ")
	}
	flg("DL", f.DataLength8)
	flg("N", f.TwoLine)
	flg("F", f.ExtendedFnt)
	flg("D", f.DisplayOn)
	flg("C", f.CursorOn)
	flg("B", f.BlinkOn)
	flg("ID", f.Increment)
	flg("S", f.ShiftOn)
	return strings.TrimSpace(s.String())
}

// Snapshot is a copy of the controller state. Taking a copy allows the state
// to be inspected without preventing the controller from being written to.
type Snapshot struct {
	Flags   Flags
	RAMMode RAMMode

	DDRAMAddress uint8
	CGRAMAddress uint8

	DisplayData [DisplayDataSize]uint8
	CharGen     [CharGenSize]uint8
}

func (s Snapshot) String() string {
	return fmt.Sprintf("%s dd=%#02x cg=%#02x mode=%s", s.Flags, s.DDRAMAddress, s.CGRAMAddress, s.RAMMode)
}

// Line returns the contents of one logical line of DDRAM as a string. Glyph
// codes outside of the printable ASCII range are replaced with a dot. Line 0
// is the first 40 cells and line 1 is the second 40 cells.
func (s Snapshot) Line(line int) string {
	if line < 0 || line > 1 {
		return ""
	}
	b := strings.Builder{}
	for _, c := range s.DisplayData[line*LineLength : (line+1)*LineLength] {
		if c >= 0x20 && c < 0x7e {
			b.WriteByte(c)
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}
