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

// instruction is a single entry in the instruction decode table. an
// instruction byte matches the entry if data&mask == expected.
type instruction struct {
	name     string
	mask     uint8
	expected uint8
	exec     func(ctrl *Controller, data uint8)
}

// the bit patterns overlap so the order of the table is important. the first
// matching entry is the only one executed.
var instructions = [...]instruction{
	{name: "function set", mask: 0xe0, expected: 0x20, exec: (*Controller).functionSet},
	{name: "display control", mask: 0xf8, expected: 0x08, exec: (*Controller).displayControl},
	{name: "clear display", mask: 0xff, expected: 0x01, exec: (*Controller).clearDisplay},
	{name: "return home", mask: 0xff, expected: 0x02, exec: (*Controller).returnHome},
	{name: "entry mode set", mask: 0xfc, expected: 0x04, exec: (*Controller).entryModeSet},
	{name: "set CGRAM address", mask: 0xc0, expected: 0x40, exec: (*Controller).setCGRAMAddress},
	{name: "set DDRAM address", mask: 0x80, expected: 0x80, exec: (*Controller).setDDRAMAddress},
}

// Decode returns the name of the instruction that the data byte would execute
// if written to the instruction register. Returns the empty string if the byte
// is not recognised.
func Decode(data uint8) string {
	for _, in := range instructions {
		if data&in.mask == in.expected {
			return in.name
		}
	}
	return ""
}

// unrecognised bit patterns are ignored
func (ctrl *Controller) writeInstruction(data uint8) {
	for _, in := range instructions {
		if data&in.mask == in.expected {
			in.exec(ctrl, data)
			return
		}
	}
}

func (ctrl *Controller) functionSet(data uint8) {
	ctrl.flags.DataLength8 = data&0x10 == 0x10
	ctrl.flags.TwoLine = data&0x08 == 0x08
	ctrl.flags.ExtendedFnt = data&0x04 == 0x04
}

func (ctrl *Controller) displayControl(data uint8) {
	ctrl.flags.DisplayOn = data&0x04 == 0x04
	ctrl.flags.CursorOn = data&0x02 == 0x02
	ctrl.flags.BlinkOn = data&0x01 == 0x01
}

func (ctrl *Controller) clearDisplay(_ uint8) {
	ctrl.ddAddr = 0
	ctrl.flags.Increment = true
	for i := range ctrl.ddram {
		ctrl.ddram[i] = Blank
	}
}

func (ctrl *Controller) returnHome(_ uint8) {
	ctrl.ddAddr = 0
}

// I/D and S are both taken from bit 1. S would normally be bit 0
func (ctrl *Controller) entryModeSet(data uint8) {
	ctrl.flags.Increment = data&0x02 == 0x02
	ctrl.flags.ShiftOn = data&0x02 == 0x02
}

func (ctrl *Controller) setCGRAMAddress(data uint8) {
	ctrl.cgAddr = data & CGRAMMask
	ctrl.ramMode = RAMModeCGRAM
}

func (ctrl *Controller) setDDRAMAddress(data uint8) {
	ctrl.ddAddr = data & DDRAMMask
	ctrl.ramMode = RAMModeDDRAM
}
