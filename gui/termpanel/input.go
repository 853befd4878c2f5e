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

package termpanel

import (
	"strings"

	"github.com/jetsetilly/mk2panel/userinput"
)

// parseInput converts the bytes read from the terminal into key down events.
// A lone escape or the interrupt character is a request to quit.
func parseInput(b []byte) []userinput.Event {
	var events []userinput.Event

	for i := 0; i < len(b); i++ {
		switch b[i] {
		case keyInterrupt:
			events = append(events, userinput.EventQuit{})

		case keyEsc:
			if i+2 >= len(b) || b[i+1] != escCursor {
				events = append(events, userinput.EventQuit{})
				continue
			}

			i += 2
			switch b[i] {
			case cursorForward:
				events = append(events, userinput.EventKeyboard{Key: "Right", Down: true})
			case cursorBackward:
				events = append(events, userinput.EventKeyboard{Key: "Left", Down: true})
			case cursorUp, cursorDown:
			}

		default:
			if b[i] < 0x20 || b[i] > 0x7e {
				continue
			}
			key := strings.ToUpper(string(b[i]))
			events = append(events, userinput.EventKeyboard{Key: key, Down: true})
		}
	}

	return events
}

// releases returns a key up event for every key down event in the list.
func releases(events []userinput.Event) []userinput.Event {
	var up []userinput.Event
	for _, ev := range events {
		if kb, ok := ev.(userinput.EventKeyboard); ok && kb.Down {
			kb.Down = false
			up = append(up, kb)
		}
	}
	return up
}
