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
	"errors"
	"image"
	"io"
	"os"

	"github.com/jetsetilly/mk2panel/curated"
	"github.com/jetsetilly/mk2panel/userinput"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// DefaultColumns is the width of the panel in characters if no other value
// is given and the width of the output terminal cannot be found.
const DefaultColumns = 120

// TermPanel is an implementation of the panel.Surface interface.
type TermPanel struct {
	input  *os.File
	output io.Writer
	cols   int

	// terminal attributes at the time of creation and the attributes used
	// while the panel is active
	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// key up events to be returned by the next call to Events()
	pending []userinput.Event

	buf []byte
}

// NewTermPanel is the preferred method of initialisation for the TermPanel
// type. The input file must be a terminal. If cols is less than one then the
// panel is the width of the output terminal.
func NewTermPanel(input *os.File, output io.Writer, cols int) (*TermPanel, error) {
	if input == nil {
		return nil, curated.Errorf("termpanel: %v", "an input file is required")
	}
	if output == nil {
		return nil, curated.Errorf("termpanel: %v", "an output file is required")
	}
	if !term.IsTerminal(int(input.Fd())) {
		return nil, curated.Errorf("termpanel: %v", "input is not a terminal")
	}
	if cols < 1 {
		cols = terminalWidth(output)
	}

	scr := &TermPanel{
		input:  input,
		output: output,
		cols:   cols,
		buf:    make([]byte, 64),
	}

	err := termios.Tcgetattr(scr.input.Fd(), &scr.canAttr)
	if err != nil {
		return nil, curated.Errorf("termpanel: %v", err)
	}

	// reads return immediately even if there is no input
	scr.cbreakAttr = scr.canAttr
	termios.Cfmakecbreak(&scr.cbreakAttr)
	scr.cbreakAttr.Cc[unix.VMIN] = 0
	scr.cbreakAttr.Cc[unix.VTIME] = 0

	err = termios.Tcsetattr(scr.input.Fd(), termios.TCIFLUSH, &scr.cbreakAttr)
	if err != nil {
		return nil, curated.Errorf("termpanel: %v", err)
	}

	_, _ = io.WriteString(scr.output, clearScreen+hideCursor)

	return scr, nil
}

// Present implements the panel.Surface interface.
func (scr *TermPanel) Present(frame *image.RGBA) error {
	err := render(scr.output, frame, scr.cols)
	if err != nil {
		return curated.Errorf("termpanel: %v", err)
	}
	return nil
}

// Events implements the panel.Surface interface.
func (scr *TermPanel) Events() []userinput.Event {
	events := scr.pending
	scr.pending = nil

	for {
		n, err := unix.Read(int(scr.input.Fd()), scr.buf)
		if err != nil && !errors.Is(err, unix.EAGAIN) && !errors.Is(err, unix.EINTR) {
			events = append(events, userinput.EventQuit{})
			break
		}
		if n <= 0 {
			break
		}

		down := parseInput(scr.buf[:n])
		events = append(events, down...)
		scr.pending = append(scr.pending, releases(down)...)
	}

	return events
}

// Destroy implements the panel.Surface interface.
func (scr *TermPanel) Destroy() {
	_, _ = io.WriteString(scr.output, normalPen+showCursor+"\n")
	_ = termios.Tcsetattr(scr.input.Fd(), termios.TCIFLUSH, &scr.canAttr)
}

// the width of the output in characters if it is a terminal. otherwise the
// DefaultColumns value.
func terminalWidth(output io.Writer) int {
	if f, ok := output.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return DefaultColumns
}
