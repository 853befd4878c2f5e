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

package lcd_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/mk2panel/hardware/lcd"
	"github.com/jetsetilly/mk2panel/test"
)

const (
	instructionRegister = 0
	dataRegister        = 1
)

func TestPowerOn(t *testing.T) {
	ctrl := lcd.NewController()
	s := ctrl.Snapshot()
	test.ExpectEquality(t, s.Flags, lcd.Flags{Increment: true})
	test.ExpectEquality(t, s.RAMMode, lcd.RAMModeCGRAM)
	test.ExpectEquality(t, s.DDRAMAddress, 0)
	test.ExpectEquality(t, s.CGRAMAddress, 0)
	test.ExpectEquality(t, s.DisplayData, [lcd.DisplayDataSize]uint8{})
	test.ExpectEquality(t, s.CharGen, [lcd.CharGenSize]uint8{})
}

func TestDecodePriority(t *testing.T) {
	test.ExpectEquality(t, lcd.Decode(0x00), "")
	test.ExpectEquality(t, lcd.Decode(0x01), "clear display")
	test.ExpectEquality(t, lcd.Decode(0x02), "return home")
	test.ExpectEquality(t, lcd.Decode(0x03), "")
	test.ExpectEquality(t, lcd.Decode(0x06), "entry mode set")
	test.ExpectEquality(t, lcd.Decode(0x0c), "display control")
	test.ExpectEquality(t, lcd.Decode(0x14), "")
	test.ExpectEquality(t, lcd.Decode(0x38), "function set")
	test.ExpectEquality(t, lcd.Decode(0x3f), "function set")
	test.ExpectEquality(t, lcd.Decode(0x40), "set CGRAM address")
	test.ExpectEquality(t, lcd.Decode(0x7f), "set CGRAM address")
	test.ExpectEquality(t, lcd.Decode(0x80), "set DDRAM address")
	test.ExpectEquality(t, lcd.Decode(0xff), "set DDRAM address")
}

// every value of each flag group is applied on top of every combination of the
// three groups. the other two groups must be unchanged
func TestFlagCrosstalk(t *testing.T) {
	for fs := uint8(0x20); fs < 0x40; fs++ {
		for dc := uint8(0x08); dc < 0x10; dc++ {
			for em := uint8(0x04); em < 0x08; em++ {
				ctrl := lcd.NewController()
				ctrl.Write(instructionRegister, fs)
				ctrl.Write(instructionRegister, dc)
				ctrl.Write(instructionRegister, em)

				f := ctrl.Snapshot().Flags
				test.ExpectEquality(t, f.DataLength8, fs&0x10 == 0x10)
				test.ExpectEquality(t, f.TwoLine, fs&0x08 == 0x08)
				test.ExpectEquality(t, f.ExtendedFnt, fs&0x04 == 0x04)
				test.ExpectEquality(t, f.DisplayOn, dc&0x04 == 0x04)
				test.ExpectEquality(t, f.CursorOn, dc&0x02 == 0x02)
				test.ExpectEquality(t, f.BlinkOn, dc&0x01 == 0x01)
				test.ExpectEquality(t, f.Increment, em&0x02 == 0x02)
				test.ExpectEquality(t, f.ShiftOn, em&0x02 == 0x02)

				for v := uint8(0x20); v < 0x40; v++ {
					ctrl.Write(instructionRegister, v)
					g := ctrl.Snapshot().Flags
					g.DataLength8, g.TwoLine, g.ExtendedFnt = f.DataLength8, f.TwoLine, f.ExtendedFnt
					test.ExpectEquality(t, g, f, "function set", v)
				}
				ctrl.Write(instructionRegister, fs)

				for v := uint8(0x08); v < 0x10; v++ {
					ctrl.Write(instructionRegister, v)
					g := ctrl.Snapshot().Flags
					g.DisplayOn, g.CursorOn, g.BlinkOn = f.DisplayOn, f.CursorOn, f.BlinkOn
					test.ExpectEquality(t, g, f, "display control", v)
				}
				ctrl.Write(instructionRegister, dc)

				for v := uint8(0x04); v < 0x08; v++ {
					ctrl.Write(instructionRegister, v)
					g := ctrl.Snapshot().Flags
					g.Increment, g.ShiftOn = f.Increment, f.ShiftOn
					test.ExpectEquality(t, g, f, "entry mode", v)
				}
			}
		}
	}
}

func TestUnrecognisedInstructions(t *testing.T) {
	ctrl := lcd.NewController()
	ctrl.Write(instructionRegister, 0x38)
	ctrl.Write(instructionRegister, 0x0f)
	ctrl.Write(instructionRegister, 0x85)
	before := ctrl.Snapshot()

	// no instruction matches 0x00, 0x03 or the cursor/display shift
	// instructions
	ctrl.Write(instructionRegister, 0x00)
	ctrl.Write(instructionRegister, 0x03)
	for d := uint8(0x10); d < 0x20; d++ {
		ctrl.Write(instructionRegister, d)
	}
	test.ExpectEquality(t, ctrl.Snapshot(), before)
}

func TestClearDisplay(t *testing.T) {
	ctrl := lcd.NewController()

	// put the controller into decrement mode with a non-zero DDRAM address
	// and then select CGRAM
	ctrl.Write(instructionRegister, 0x04)
	ctrl.Write(instructionRegister, 0x80|0x23)
	ctrl.Write(dataRegister, 'A')
	ctrl.Write(instructionRegister, 0x40|0x10)

	ctrl.Write(instructionRegister, 0x01)
	s := ctrl.Snapshot()
	test.ExpectEquality(t, s.DDRAMAddress, 0)
	test.ExpectEquality(t, s.Flags.Increment, true)
	test.ExpectEquality(t, s.RAMMode, lcd.RAMModeCGRAM)
	test.ExpectEquality(t, s.CGRAMAddress, 0x10)
	for i, c := range s.DisplayData {
		test.ExpectEquality(t, c, lcd.Blank, i)
	}
}

func TestReturnHome(t *testing.T) {
	ctrl := lcd.NewController()
	ctrl.Write(instructionRegister, 0x80|0x45)
	ctrl.Write(dataRegister, 'A')
	ctrl.Write(instructionRegister, 0x02)
	s := ctrl.Snapshot()
	test.ExpectEquality(t, s.DDRAMAddress, 0)
	test.ExpectEquality(t, s.DisplayData[0x45], 'A')
	test.ExpectEquality(t, s.RAMMode, lcd.RAMModeDDRAM)
}

func TestSimpleSequence(t *testing.T) {
	ctrl := lcd.NewController()
	ctrl.Write(instructionRegister, 0x38)
	ctrl.Write(instructionRegister, 0x0c)
	ctrl.Write(instructionRegister, 0x80)
	ctrl.Write(dataRegister, 'A')

	s := ctrl.Snapshot()
	test.ExpectEquality(t, s.DisplayData[0], 'A')
	test.ExpectEquality(t, s.DDRAMAddress, 1)
	test.ExpectEquality(t, s.Flags.TwoLine, true)
	test.ExpectEquality(t, s.Flags.DisplayOn, true)
	test.ExpectEquality(t, s.Flags.CursorOn, false)
	test.ExpectEquality(t, s.Flags.BlinkOn, false)
}

func TestDDRAMWrap(t *testing.T) {
	ctrl := lcd.NewController()
	ctrl.Write(instructionRegister, 0x30)
	ctrl.Write(instructionRegister, 0x06)
	ctrl.Write(instructionRegister, 0x80|126)

	for i := 0; i < 130; i++ {
		// the address targeted by write number i+1
		test.ExpectEquality(t, int(ctrl.Snapshot().DDRAMAddress), (126+i)%128, i+1)
		ctrl.Write(dataRegister, uint8(i))
	}

	// the third write was to address zero
	test.ExpectEquality(t, ctrl.Snapshot().DisplayData[0], 2)
	test.ExpectEquality(t, ctrl.Snapshot().DDRAMAddress, 0)

	// decrement from zero wraps to the top of the address range
	ctrl.Write(instructionRegister, 0x04)
	ctrl.Write(instructionRegister, 0x80)
	ctrl.Write(dataRegister, 'Z')
	test.ExpectEquality(t, ctrl.Snapshot().DDRAMAddress, 127)
}

func TestCGRAMWrap(t *testing.T) {
	ctrl := lcd.NewController()
	ctrl.Write(instructionRegister, 0x06)
	ctrl.Write(instructionRegister, 0x40|62)
	ctrl.Write(dataRegister, 0xff)
	ctrl.Write(dataRegister, 0xff)
	test.ExpectEquality(t, ctrl.Snapshot().CGRAMAddress, 0)
	test.ExpectEquality(t, ctrl.Snapshot().CharGen[62], 0x1f)
	test.ExpectEquality(t, ctrl.Snapshot().CharGen[63], 0x1f)

	ctrl.Write(instructionRegister, 0x04)
	ctrl.Write(dataRegister, 0x0a)
	test.ExpectEquality(t, ctrl.Snapshot().CGRAMAddress, 63)
	test.ExpectEquality(t, ctrl.Snapshot().CharGen[0], 0x0a)
}

func TestCGRAMMasking(t *testing.T) {
	ctrl := lcd.NewController()

	// power-on RAM mode is CGRAM
	ctrl.Write(dataRegister, 0xe5)
	test.ExpectEquality(t, ctrl.Snapshot().CharGen[0], 0x05)
	test.ExpectEquality(t, ctrl.Snapshot().DisplayData[0], 0)
}

func TestTwoLineMapping(t *testing.T) {
	ctrl := lcd.NewController()
	ctrl.Write(instructionRegister, 0x38)
	ctrl.Write(instructionRegister, 0x06)

	ctrl.Write(instructionRegister, 0x80|0x40)
	ctrl.Write(dataRegister, 'X')
	s := ctrl.Snapshot()
	test.ExpectEquality(t, s.DisplayData[40], 'X')
	test.ExpectEquality(t, s.DDRAMAddress, 0x41)

	ctrl.Write(instructionRegister, 0x80|0x67)
	ctrl.Write(dataRegister, 'Y')
	test.ExpectEquality(t, ctrl.Snapshot().DisplayData[79], 'Y')

	// columns 40 to 63 of each line have no physical cell
	before := ctrl.Snapshot().DisplayData
	for _, addr := range []uint8{0x28, 0x3f, 0x68, 0x7f} {
		ctrl.Write(instructionRegister, 0x80|addr)
		ctrl.Write(dataRegister, 'Z')
		test.ExpectEquality(t, ctrl.Snapshot().DisplayData, before, addr)
		test.ExpectEquality(t, ctrl.Snapshot().DDRAMAddress, (addr+1)&lcd.DDRAMMask, addr)
	}
}

func TestSingleLineMapping(t *testing.T) {
	ctrl := lcd.NewController()
	ctrl.Write(instructionRegister, 0x30)
	ctrl.Write(instructionRegister, 0x06)

	ctrl.Write(instructionRegister, 0x80|0x4f)
	ctrl.Write(dataRegister, 'X')
	test.ExpectEquality(t, ctrl.Snapshot().DisplayData[79], 'X')

	before := ctrl.Snapshot().DisplayData
	ctrl.Write(dataRegister, 'Y')
	test.ExpectEquality(t, ctrl.Snapshot().DisplayData, before)
	test.ExpectEquality(t, ctrl.Snapshot().DDRAMAddress, 0x51)
}

func TestEntryModeQuirk(t *testing.T) {
	ctrl := lcd.NewController()

	ctrl.Write(instructionRegister, 0x05)
	test.ExpectEquality(t, ctrl.Snapshot().Flags.Increment, false)
	test.ExpectEquality(t, ctrl.Snapshot().Flags.ShiftOn, false)

	ctrl.Write(instructionRegister, 0x06)
	test.ExpectEquality(t, ctrl.Snapshot().Flags.Increment, true)
	test.ExpectEquality(t, ctrl.Snapshot().Flags.ShiftOn, true)
}

func TestAddressSetSelectsRAM(t *testing.T) {
	ctrl := lcd.NewController()
	ctrl.Write(instructionRegister, 0x80|0x05)
	test.ExpectEquality(t, ctrl.Snapshot().RAMMode, lcd.RAMModeDDRAM)
	test.ExpectEquality(t, ctrl.Snapshot().DDRAMAddress, 0x05)

	ctrl.Write(instructionRegister, 0x40|0x3f)
	test.ExpectEquality(t, ctrl.Snapshot().RAMMode, lcd.RAMModeCGRAM)
	test.ExpectEquality(t, ctrl.Snapshot().CGRAMAddress, 0x3f)

	// the DDRAM address is preserved while in CGRAM mode
	test.ExpectEquality(t, ctrl.Snapshot().DDRAMAddress, 0x05)
}

func TestSnapshotLine(t *testing.T) {
	ctrl := lcd.NewController()
	ctrl.Write(instructionRegister, 0x38)
	ctrl.Write(instructionRegister, 0x01)
	ctrl.Write(instructionRegister, 0x80)
	for _, c := range []byte("SC-55") {
		ctrl.Write(dataRegister, c)
	}
	ctrl.Write(instructionRegister, 0xc0)
	ctrl.Write(dataRegister, 0x00)

	s := ctrl.Snapshot()
	test.ExpectEquality(t, s.Line(0), "SC-55"+strings.Repeat(" ", 35))
	test.ExpectEquality(t, s.Line(1)[:2], ". ")
	test.ExpectEquality(t, s.Line(2), "")
}

func TestReset(t *testing.T) {
	ctrl := lcd.NewController()
	ctrl.Write(instructionRegister, 0x3c)
	ctrl.Write(instructionRegister, 0x0f)
	ctrl.Write(instructionRegister, 0x01)
	ctrl.Reset()
	test.ExpectEquality(t, ctrl.Snapshot(), lcd.NewController().Snapshot())
}
