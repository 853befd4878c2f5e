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

import "github.com/jetsetilly/mk2panel/hardware/buttons"

// Bridge applies input events to the buttons.Pressed bitmask.
type Bridge struct {
	pressed *buttons.Pressed
}

// NewBridge is the preferred method of initialisation for the Bridge type.
func NewBridge(pressed *buttons.Pressed) *Bridge {
	return &Bridge{pressed: pressed}
}

// Handle applies a single event. Returns true if the event is a request to
// quit.
//
// Key repeat events are ignored. Key down and key up events for unbound keys
// have no effect.
func (br *Bridge) Handle(ev Event) bool {
	switch ev := ev.(type) {
	case EventQuit:
		return true

	case EventKeyboard:
		if ev.Repeat {
			return false
		}

		mask := Mask(ev.Key)
		if mask == 0 {
			return false
		}

		if ev.Down {
			br.pressed.Press(mask)
		} else {
			br.pressed.Release(mask)
		}
	}

	return false
}

// HandleAll applies every event in the list. Returns true if any of the events
// was a request to quit. Events after a quit request are still applied.
func (br *Bridge) HandleAll(events []Event) bool {
	var quit bool
	for _, ev := range events {
		if br.Handle(ev) {
			quit = true
		}
	}
	return quit
}
