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
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/jetsetilly/mk2panel/test"
	"github.com/jetsetilly/mk2panel/userinput"
)

func TestParseInput(t *testing.T) {
	events := parseInput([]byte("q["))
	test.DemandEquality(t, len(events), 2)
	test.ExpectEquality[userinput.Event](t, events[0], userinput.EventKeyboard{Key: "Q", Down: true})
	test.ExpectEquality[userinput.Event](t, events[1], userinput.EventKeyboard{Key: "[", Down: true})

	events = parseInput([]byte{keyEsc, escCursor, cursorBackward, keyEsc, escCursor, cursorForward})
	test.DemandEquality(t, len(events), 2)
	test.ExpectEquality[userinput.Event](t, events[0], userinput.EventKeyboard{Key: "Left", Down: true})
	test.ExpectEquality[userinput.Event](t, events[1], userinput.EventKeyboard{Key: "Right", Down: true})

	// cursor up and down are not used
	events = parseInput([]byte{keyEsc, escCursor, cursorUp, keyEsc, escCursor, cursorDown})
	test.ExpectEquality(t, len(events), 0)

	// control characters other than the interrupt are ignored
	events = parseInput([]byte{'\t', '\n', 'a'})
	test.DemandEquality(t, len(events), 1)
	test.ExpectEquality[userinput.Event](t, events[0], userinput.EventKeyboard{Key: "A", Down: true})
}

func TestParseQuit(t *testing.T) {
	events := parseInput([]byte{keyInterrupt})
	test.DemandEquality(t, len(events), 1)
	test.ExpectEquality[userinput.Event](t, events[0], userinput.EventQuit{})

	events = parseInput([]byte{keyEsc})
	test.DemandEquality(t, len(events), 1)
	test.ExpectEquality[userinput.Event](t, events[0], userinput.EventQuit{})
}

func TestReleases(t *testing.T) {
	down := parseInput([]byte{'w', keyInterrupt, 'e'})
	up := releases(down)
	test.DemandEquality(t, len(up), 2)
	test.ExpectEquality[userinput.Event](t, up[0], userinput.EventKeyboard{Key: "W"})
	test.ExpectEquality[userinput.Event](t, up[1], userinput.EventKeyboard{Key: "E"})
}

func TestDimensions(t *testing.T) {
	test.ExpectEquality(t, dimensions(image.Rect(0, 0, 741, 268), 80), 14)
	test.ExpectEquality(t, dimensions(image.Rect(0, 0, 741, 268), 1), 1)
}

func TestRender(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}

	// two pixels wide and four pixels tall is two rows of two characters
	// with no scaling required
	frame := image.NewRGBA(image.Rect(0, 0, 2, 4))
	for x := range 2 {
		frame.SetRGBA(x, 0, red)
		frame.SetRGBA(x, 1, blue)
		frame.SetRGBA(x, 2, blue)
		frame.SetRGBA(x, 3, blue)
	}

	w := &strings.Builder{}
	err := render(w, frame, 2)
	test.DemandSuccess(t, err)

	expected := cursorHome +
		"\x1b[38;2;255;0;0m\x1b[48;2;0;0;255m▀▀" + normalPen + "\n" +
		"\x1b[38;2;0;0;255m\x1b[48;2;0;0;255m▀▀" + normalPen + "\n"
	test.ExpectEquality(t, w.String(), expected)
}

func TestRenderScaled(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 741, 268))
	for i := range frame.Pix {
		frame.Pix[i] = 0xff
	}

	w := &strings.Builder{}
	err := render(w, frame, 80)
	test.DemandSuccess(t, err)

	// a single colour image has one pair of pen sequences per row
	s := w.String()
	test.ExpectEquality(t, strings.Count(s, upperHalfBlock), 80*14)
	test.ExpectEquality(t, strings.Count(s, "\x1b[38;2;255;255;255m"), 14)
	test.ExpectEquality(t, strings.Count(s, "\n"), 14)
}

func TestTerminalWidth(t *testing.T) {
	// anything that is not a file uses the default width
	test.ExpectEquality(t, terminalWidth(&strings.Builder{}), DefaultColumns)
}
