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

// Package lcd emulates the HD44780-class character controller of the
// SC-55mkII front panel.
//
// The controller has two registers. Writes to the instruction register
// change the controller's configuration flags and address counters. Writes to
// the data register store a byte in either the display data RAM (DDRAM) or
// the character generator RAM (CGRAM), depending on which of the two
// address-set instructions was most recently received.
//
// Only writes are emulated. The panel firmware never reads the busy flag or
// the RAM contents back so there is no read path.
//
// The Controller type has no internal locking. It expects all writes to come
// from a single goroutine. Another goroutine that wants to look at the state
// of the controller should take a Snapshot() while holding whatever lock the
// owner of the Controller uses to serialise writes.
package lcd
