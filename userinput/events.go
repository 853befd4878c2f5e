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

package userinput

// Event represents all the different types of input event. A surface returns
// a list of Events every time it is drained.
type Event interface{}

// EventKeyboard is a change in state of a physical key.
type EventKeyboard struct {
	// the name of the physical key. for example, "Q" or "Left"
	Key string

	// true for a key down event, false for a key up event
	Down bool

	// the event has been generated by the key repeat function of the host
	// system
	Repeat bool
}

// EventQuit is sent when the user has asked for the application to close. For
// example, by closing the window.
type EventQuit struct{}
