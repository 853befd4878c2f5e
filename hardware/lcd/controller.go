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

// Bus is implemented by anything that accepts writes to the controller's
// registers.
type Bus interface {
	// a registerSelect value of zero addresses the instruction register. any
	// other value addresses the data register
	Write(registerSelect int, data uint8)
}

// Controller is the emulated HD44780-class controller.
type Controller struct {
	flags   Flags
	ramMode RAMMode

	ddAddr uint8
	cgAddr uint8

	ddram [DisplayDataSize]uint8
	cgram [CharGenSize]uint8
}

// NewController is the preferred method of initialisation for the Controller
// type. The controller is in the power-on state.
func NewController() *Controller {
	ctrl := &Controller{}
	ctrl.Reset()
	return ctrl
}

// Reset the controller to the power-on state. Both memory banks are cleared,
// the address counters are zero and the address counters will increment after
// every data access. The data register targets CGRAM until one of the
// address-set instructions is received.
func (ctrl *Controller) Reset() {
	ctrl.flags = Flags{Increment: true}
	ctrl.ramMode = RAMModeCGRAM
	ctrl.ddAddr = 0
	ctrl.cgAddr = 0
	clear(ctrl.ddram[:])
	clear(ctrl.cgram[:])
}

func (ctrl *Controller) String() string {
	return ctrl.Snapshot().String()
}

// Snapshot returns a copy of the controller state.
func (ctrl *Controller) Snapshot() Snapshot {
	return Snapshot{
		Flags:        ctrl.flags,
		RAMMode:      ctrl.ramMode,
		DDRAMAddress: ctrl.ddAddr,
		CGRAMAddress: ctrl.cgAddr,
		DisplayData:  ctrl.ddram,
		CharGen:      ctrl.cgram,
	}
}

// Write implements the Bus interface.
func (ctrl *Controller) Write(registerSelect int, data uint8) {
	if registerSelect == 0 {
		ctrl.writeInstruction(data)
	} else {
		ctrl.writeData(data)
	}
}

// step the address counter in the direction indicated by the Increment flag.
// the result is masked and the caller should store the result
func (ctrl *Controller) step(addr uint8, mask uint8) uint8 {
	if ctrl.flags.Increment {
		addr++
	} else {
		addr--
	}
	return addr & mask
}

func (ctrl *Controller) writeData(data uint8) {
	if ctrl.ramMode == RAMModeCGRAM {
		ctrl.cgram[ctrl.cgAddr] = data & 0x1f
		ctrl.cgAddr = ctrl.step(ctrl.cgAddr, CGRAMMask)
		return
	}

	// writes to addresses that have no physical cell are dropped but the
	// address counter still advances
	if ctrl.flags.TwoLine {
		col := ctrl.ddAddr & 0x3f
		if col < LineLength {
			if ctrl.ddAddr&0x40 == 0x40 {
				ctrl.ddram[col+LineLength] = data
			} else {
				ctrl.ddram[col] = data
			}
		}
	} else if ctrl.ddAddr < DisplayDataSize {
		ctrl.ddram[ctrl.ddAddr] = data
	}

	ctrl.ddAddr = ctrl.step(ctrl.ddAddr, DDRAMMask)
}
