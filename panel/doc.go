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

// Package panel ties together the LCD controller, the compositor and the
// input bridge to emulate the front panel of the SC-55mkII.
//
// Two goroutines use the panel. The emulation goroutine writes to the LCD
// controller with the Write() function. The writes must be bracketed by
// Lock() and Unlock():
//
//	pnl.Lock()
//	pnl.Write(0, 0x38)
//	pnl.Write(1, 'A')
//	pnl.Unlock()
//
// The UI goroutine calls Render() once per display refresh. Render() takes
// the lock only long enough to copy the state of the LCD controller. The
// frame is composited and presented to the Surface outside of the lock.
// Input events from the Surface are applied to the buttons bitmask, which
// the emulation reads with Buttons().
//
// Nothing happens until Initialise() has been called successfully.
package panel
